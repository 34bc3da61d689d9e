package repository

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// 半正矢距離に使用する球面地球半径 (km)
// SQL側の `6371 * acos(...)` と同じ値でなければ結果がずれる
const haversineEarthRadiusKm = 6371.0

// LocationToPoint model.Location を orb.Point に変換
func LocationToPoint(loc model.Location) orb.Point {
	return orb.Point{loc.Longitude, loc.Latitude}
}

// PointToLocation orb.Point を model.Location に変換
func PointToLocation(p orb.Point) model.Location {
	return model.Location{Latitude: p.Lat(), Longitude: p.Lon()}
}

// HaversineKm 2点間の大円距離 (km)
// SQLの literal haversine と同じ式・同じ半径で計算する
func HaversineKm(a, b model.Location) float64 {
	degrad := math.Pi / 180.0
	cosArg := math.Cos(a.Latitude*degrad)*math.Cos(b.Latitude*degrad)*
		math.Cos(b.Longitude*degrad-a.Longitude*degrad) +
		math.Sin(a.Latitude*degrad)*math.Sin(b.Latitude*degrad)
	// 丸め誤差で acos の定義域を超えることがある
	cosArg = math.Min(1.0, math.Max(-1.0, cosArg))
	return haversineEarthRadiusKm * math.Acos(cosArg)
}

// BoundingBoxAround 中心座標から radiusKm を完全に含む緯度経度の境界ボックスを作成
// 半径検索SQLのプリフィルタに使用する（circleの上位集合なので結果は変わらない）
func BoundingBoxAround(center model.Location, radiusKm float64) orb.Bound {
	latDelta := radiusKm / haversineEarthRadiusKm * 180.0 / math.Pi

	// 高緯度ほど経度1度あたりの距離が縮む
	cosLat := math.Cos(center.Latitude * math.Pi / 180.0)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lonDelta := latDelta / cosLat

	bound := orb.Bound{
		Min: orb.Point{center.Longitude - lonDelta, center.Latitude - latDelta},
		Max: orb.Point{center.Longitude + lonDelta, center.Latitude + latDelta},
	}

	// 少し余裕を持たせる（約100m程度）
	return bound.Pad(0.001)
}
