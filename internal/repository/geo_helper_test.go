package repository

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

var (
	seoul = model.Location{Latitude: 37.5663, Longitude: 126.9779}
	busan = model.Location{Latitude: 35.1796, Longitude: 129.0756}
)

func TestHaversineKm(t *testing.T) {
	t.Run("ソウル-釜山間の距離", func(t *testing.T) {
		d := HaversineKm(seoul, busan)
		assert.InDelta(t, 325.0, d, 10.0)
	})

	t.Run("同一点は0", func(t *testing.T) {
		assert.InDelta(t, 0.0, HaversineKm(seoul, seoul), 1e-9)
	})

	t.Run("対称性", func(t *testing.T) {
		assert.InDelta(t, HaversineKm(seoul, busan), HaversineKm(busan, seoul), 1e-9)
	})

	t.Run("近接点でもNaNにならない", func(t *testing.T) {
		near := model.Location{Latitude: seoul.Latitude + 1e-12, Longitude: seoul.Longitude}
		d := HaversineKm(seoul, near)
		assert.False(t, d != d, "NaNが返されました")
		assert.GreaterOrEqual(t, d, 0.0)
	})
}

func TestBoundingBoxAround(t *testing.T) {
	const radiusKm = 2.0
	bound := BoundingBoxAround(seoul, radiusKm)

	// 半径圏内の点は必ずボックスに含まれる（上位集合であること）
	offsets := []model.Location{
		{Latitude: seoul.Latitude + 0.017, Longitude: seoul.Longitude},  // 北へ約1.9km
		{Latitude: seoul.Latitude - 0.017, Longitude: seoul.Longitude},  // 南へ約1.9km
		{Latitude: seoul.Latitude, Longitude: seoul.Longitude + 0.021},  // 東へ約1.9km
		{Latitude: seoul.Latitude, Longitude: seoul.Longitude - 0.021},  // 西へ約1.9km
	}
	for _, loc := range offsets {
		if d := HaversineKm(seoul, loc); d >= radiusKm {
			t.Fatalf("テスト点が半径外です: %.3fkm", d)
		}
		assert.True(t, bound.Contains(orb.Point{loc.Longitude, loc.Latitude}),
			"半径内の点 (%f, %f) がボックス外です", loc.Latitude, loc.Longitude)
	}

	// 中心も当然含まれる
	assert.True(t, bound.Contains(LocationToPoint(seoul)))
}

func TestLocationPointConversion(t *testing.T) {
	p := LocationToPoint(seoul)
	assert.Equal(t, seoul.Longitude, p.Lon())
	assert.Equal(t, seoul.Latitude, p.Lat())

	back := PointToLocation(p)
	assert.Equal(t, seoul, back)
}

func TestBuildOrderClause(t *testing.T) {
	assert.Equal(t, "ORDER BY name ASC", buildOrderClause(model.OrderByName, model.SortAsc))
	assert.Equal(t, "ORDER BY created_at DESC", buildOrderClause(model.OrderByCreatedAt, model.SortDesc))

	// 未知の値はデフォルトに落ちる（許可リスト外はSQLに入らない）
	assert.Equal(t, "ORDER BY updated_at DESC",
		buildOrderClause(model.RestaurantOrderBy("phone; DROP TABLE"), model.SortDirection("upward")))
}
