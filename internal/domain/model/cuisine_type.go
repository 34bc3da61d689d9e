package model

import "time"

// CuisineType 料理ジャンル（例: 韓国料理、寿司）
type CuisineType struct {
	ID                    int64     `json:"id" db:"id"`
	Name                  string    `json:"name" db:"name"`
	CuisineTypeCategoryID int64     `json:"cuisine_type_category_id" db:"cuisine_type_category_id"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// CuisineTypeCategory 料理ジャンルの上位カテゴリ（例: アジア料理、洋食）
type CuisineTypeCategory struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
