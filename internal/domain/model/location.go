package model

import "fmt"

// Location 経度・緯度の座標（度単位）
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate 座標が有効範囲内かどうかを確認する
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("緯度が範囲外です: %f", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("経度が範囲外です: %f", l.Longitude)
	}
	return nil
}

// GridCell 気象庁の予報格子における整数座標
type GridCell struct {
	X int `json:"x"` // 格子X座標 (1〜149)
	Y int `json:"y"` // 格子Y座標 (1〜253)
}
