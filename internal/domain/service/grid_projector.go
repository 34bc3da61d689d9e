package service

import (
	"math"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// 気象庁DFS格子（ランベルト正角円錐図法）の固定パラメータ
const (
	GridNX = 149 // 格子のX方向サイズ
	GridNY = 253 // 格子のY方向サイズ

	earthRadiusKm = 6371.00877 // 地球半径 (km)
	gridSpacingKm = 5.0        // 格子間隔 (km)
	stdParallel1  = 30.0       // 標準緯線1 (deg)
	stdParallel2  = 60.0       // 標準緯線2 (deg)
	originLon     = 126.0      // 基準点経度 (deg)
	originLat     = 38.0       // 基準点緯度 (deg)
	gridOriginX   = 210.0 / gridSpacingKm // 基準点X格子座標
	gridOriginY   = 675.0 / gridSpacingKm // 基準点Y格子座標
)

// GridProjector 緯度経度と気象庁格子座標の双方向変換
// 投影定数はコンストラクタで一度だけ計算され、以後は不変
type GridProjector struct {
	re      float64 // 格子間隔で正規化した地球半径
	olonRad float64 // 基準点経度 (rad)
	sn      float64 // 円錐定数
	sf      float64 // 縮尺係数
	ro      float64 // 基準点までの投影半径
}

// NewGridProjector 投影定数を計算済みのプロジェクタを生成する
func NewGridProjector() *GridProjector {
	degrad := math.Pi / 180.0

	re := earthRadiusKm / gridSpacingKm
	slat1 := stdParallel1 * degrad
	slat2 := stdParallel2 * degrad
	olon := originLon * degrad
	olat := originLat * degrad

	sn := math.Tan(math.Pi*0.25+slat2*0.5) / math.Tan(math.Pi*0.25+slat1*0.5)
	sn = math.Log(math.Cos(slat1)/math.Cos(slat2)) / math.Log(sn)
	sf := math.Tan(math.Pi*0.25 + slat1*0.5)
	sf = math.Pow(sf, sn) * math.Cos(slat1) / sn
	ro := math.Tan(math.Pi*0.25 + olat*0.5)
	ro = re * sf / math.Pow(ro, sn)

	return &GridProjector{
		re:      re,
		olonRad: olon,
		sn:      sn,
		sf:      sf,
		ro:      ro,
	}
}

// ToGrid 緯度経度を格子座標に変換する
// +1.5して切り捨てる丸め規則は気象庁の格子番号付けとの互換性のため厳守
// 範囲外の座標もクランプせずそのまま外挿した格子番号を返す
func (g *GridProjector) ToGrid(lat, lon float64) model.GridCell {
	degrad := math.Pi / 180.0

	ra := math.Tan(math.Pi*0.25 + lat*degrad*0.5)
	ra = g.re * g.sf / math.Pow(ra, g.sn)

	theta := lon*degrad - g.olonRad
	if theta > math.Pi {
		theta -= 2.0 * math.Pi
	}
	if theta < -math.Pi {
		theta += 2.0 * math.Pi
	}
	theta *= g.sn

	x := ra*math.Sin(theta) + gridOriginX
	y := g.ro - ra*math.Cos(theta) + gridOriginY

	return model.GridCell{
		X: int(x + 1.5),
		Y: int(y + 1.5),
	}
}

// ToCoordinate 格子座標を緯度経度に変換する（ToGridの逆変換）
// 順方向の丸め規則を補償するため各格子番号から1を引いてから計算する
func (g *GridProjector) ToCoordinate(x, y int) model.Location {
	raddeg := 180.0 / math.Pi

	xn := float64(x-1) - gridOriginX
	yn := g.ro - float64(y-1) + gridOriginY

	ra := math.Sqrt(xn*xn + yn*yn)
	// 円錐定数が負になるパラメータ構成では半径の符号を反転する
	if g.sn < 0.0 {
		ra = -ra
	}

	alat := math.Pow(g.re*g.sf/ra, 1.0/g.sn)
	alat = 2.0*math.Atan(alat) - math.Pi*0.5

	var theta float64
	switch {
	case math.Abs(xn) <= 0.0:
		theta = 0.0
	case math.Abs(yn) <= 0.0:
		theta = math.Pi * 0.5
		if xn < 0.0 {
			theta = -theta
		}
	default:
		theta = math.Atan2(xn, yn)
	}
	alon := theta/g.sn + g.olonRad

	return model.Location{
		Latitude:  alat * raddeg,
		Longitude: alon * raddeg,
	}
}
