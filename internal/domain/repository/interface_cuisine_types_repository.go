package repository

import (
	"context"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// CuisineTypesRepository 料理ジャンルの読み取り契約
type CuisineTypesRepository interface {
	// ListByRestaurantID レストランに紐づく料理ジャンル一覧を返す
	ListByRestaurantID(ctx context.Context, restaurantID int64) ([]model.CuisineType, error)
}
