package model

import "time"

// Restaurant レストランのメタデータと位置情報
type Restaurant struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	AreaName      *string    `json:"area_name,omitempty" db:"area_name"`
	Address       string     `json:"address" db:"address"`
	Phone         string     `json:"phone" db:"phone"`
	ImageURL      *string    `json:"image_url,omitempty" db:"image_url"`
	Latitude      *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64   `json:"longitude,omitempty" db:"longitude"`
	StartTime     *string    `json:"start_time,omitempty" db:"start_time"`
	EndTime       *string    `json:"end_time,omitempty" db:"end_time"`
	LastOrderTime *string    `json:"last_order_time,omitempty" db:"last_order_time"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// RestaurantOrderBy 並び替え対象カラム（許可リスト）
type RestaurantOrderBy string

const (
	OrderByName      RestaurantOrderBy = "name"
	OrderByCreatedAt RestaurantOrderBy = "created_at"
	OrderByUpdatedAt RestaurantOrderBy = "updated_at"
)

// IsValid 許可されたカラムかどうかを確認する
func (o RestaurantOrderBy) IsValid() bool {
	switch o {
	case OrderByName, OrderByCreatedAt, OrderByUpdatedAt:
		return true
	}
	return false
}

// SortDirection 並び順
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid 許可された並び順かどうかを確認する
func (s SortDirection) IsValid() bool {
	return s == SortAsc || s == SortDesc
}

// RestaurantSearchQuery レストラン検索の絞り込み条件
// tags / cuisine_type_categories / cuisine_types はカンマ区切りの名前リスト
type RestaurantSearchQuery struct {
	Tags                  string
	CuisineTypeCategories string
	CuisineTypes          string
	Area                  string
	Longitude             *float64
	Latitude              *float64
	Distance              *float64 // km
	Skip                  int
	Limit                 int
	OrderBy               RestaurantOrderBy
	Sort                  SortDirection
}

// HasCoordinate 座標＋半径検索が指定されているかどうか
// 経度・緯度・距離の3つが揃っている場合のみ有効
func (q *RestaurantSearchQuery) HasCoordinate() bool {
	return q.Longitude != nil && q.Latitude != nil && q.Distance != nil
}

// Coordinate 指定された座標を返す（HasCoordinate が true の場合のみ有効）
func (q *RestaurantSearchQuery) Coordinate() Location {
	return Location{Latitude: *q.Latitude, Longitude: *q.Longitude}
}
