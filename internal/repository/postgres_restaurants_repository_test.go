package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScanner sql.Row互換のScanに固定値を流し込む
type stubScanner struct {
	vals []any
}

func (s stubScanner) Scan(dest ...any) error {
	if len(dest) != len(s.vals) {
		return fmt.Errorf("スキャン先の数が一致しません: %d != %d", len(dest), len(s.vals))
	}
	for i, d := range dest {
		switch dst := d.(type) {
		case *int64:
			*dst = s.vals[i].(int64)
		case *string:
			*dst = s.vals[i].(string)
		case *sql.NullString:
			*dst = s.vals[i].(sql.NullString)
		case *sql.NullFloat64:
			*dst = s.vals[i].(sql.NullFloat64)
		case *sql.NullTime:
			*dst = s.vals[i].(sql.NullTime)
		case *time.Time:
			*dst = s.vals[i].(time.Time)
		default:
			return fmt.Errorf("未対応のスキャン先: %T", d)
		}
	}
	return nil
}

func TestScanRestaurant_AllColumns(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	row := stubScanner{vals: []any{
		int64(1),
		"korean bbq",
		sql.NullString{String: "강남", Valid: true},
		"서울 강남대로 123",
		"02-111",
		sql.NullString{String: "https://example.com/1.jpg", Valid: true},
		sql.NullFloat64{Float64: 37.501, Valid: true},
		sql.NullFloat64{Float64: 127.005, Valid: true},
		sql.NullString{String: "11:00", Valid: true},
		sql.NullString{String: "22:00", Valid: true},
		sql.NullString{String: "21:30", Valid: true},
		created,
		sql.NullTime{Time: updated, Valid: true},
	}}

	// SELECT句のカラム数とScanの引数の数は常に一致していなければならない
	assert.Len(t, strings.Split(restaurantColumns, ","), len(row.vals))

	r, err := scanRestaurant(row)
	require.NoError(t, err)

	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, "korean bbq", r.Name)
	require.NotNil(t, r.AreaName)
	assert.Equal(t, "강남", *r.AreaName)
	assert.Equal(t, "서울 강남대로 123", r.Address)
	assert.Equal(t, "02-111", r.Phone)
	require.NotNil(t, r.ImageURL)
	assert.Equal(t, "https://example.com/1.jpg", *r.ImageURL)
	require.NotNil(t, r.Latitude)
	assert.InDelta(t, 37.501, *r.Latitude, 1e-9)
	require.NotNil(t, r.Longitude)
	assert.InDelta(t, 127.005, *r.Longitude, 1e-9)
	require.NotNil(t, r.StartTime)
	assert.Equal(t, "11:00", *r.StartTime)
	require.NotNil(t, r.EndTime)
	assert.Equal(t, "22:00", *r.EndTime)
	require.NotNil(t, r.LastOrderTime)
	assert.Equal(t, "21:30", *r.LastOrderTime)
	assert.Equal(t, created, r.CreatedAt)
	require.NotNil(t, r.UpdatedAt)
	assert.Equal(t, updated, *r.UpdatedAt)
}

func TestScanRestaurant_NullColumns(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	row := stubScanner{vals: []any{
		int64(2),
		"quiet cafe",
		sql.NullString{},
		"대전 중구 77",
		"042-555",
		sql.NullString{},
		sql.NullFloat64{},
		sql.NullFloat64{},
		sql.NullString{},
		sql.NullString{},
		sql.NullString{},
		created,
		sql.NullTime{},
	}}

	r, err := scanRestaurant(row)
	require.NoError(t, err)

	assert.Nil(t, r.AreaName)
	assert.Nil(t, r.ImageURL)
	assert.Nil(t, r.Latitude)
	assert.Nil(t, r.Longitude)
	assert.Nil(t, r.StartTime)
	assert.Nil(t, r.EndTime)
	assert.Nil(t, r.LastOrderTime)
	assert.Nil(t, r.UpdatedAt)
}
