package model

// ObservationStation 気象観測所（ASOS地上観測地点）
type ObservationStation struct {
	ID         int64   `json:"id" db:"id"`
	StationID  string  `json:"os_id" db:"os_id"` // 気象庁の観測所番号
	Latitude   float64 `json:"latitude" db:"latitude"`
	Longitude  float64 `json:"longitude" db:"longitude"`
	IsUsable   bool    `json:"is_usable" db:"is_usable"`
	DistanceKm float64 `json:"distance_km,omitempty" db:"-"` // 検索中心からの距離
}
