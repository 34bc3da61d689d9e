package model

import "time"

// Tag レストランに付与されるタグ
type Tag struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	TagCategoryID int64     `json:"tag_category_id" db:"tag_category_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
