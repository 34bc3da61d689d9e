package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/database"
)

type SupabaseCuisineTypesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseCuisineTypesRepository(client *database.SupabaseClient) repository.CuisineTypesRepository {
	return &SupabaseCuisineTypesRepository{
		client: client,
	}
}

// restaurantCuisineTypeRow 中間テーブルの1行
type restaurantCuisineTypeRow struct {
	RestaurantID  int64 `json:"restaurant_id"`
	CuisineTypeID int64 `json:"cuisine_type_id"`
}

func (r *SupabaseCuisineTypesRepository) ListByRestaurantID(ctx context.Context, restaurantID int64) ([]model.CuisineType, error) {
	// 中間テーブルから料理ジャンルIDを取得
	data, _, err := r.client.GetClient().
		From("restaurant_cuisine_types").
		Select("restaurant_id,cuisine_type_id", "exact", false).
		Eq("restaurant_id", strconv.FormatInt(restaurantID, 10)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("レストラン %d の料理ジャンル関連の取得失敗: %w", restaurantID, err)
	}

	var links []restaurantCuisineTypeRow
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("料理ジャンル関連のJSONアンマーシャル失敗: %w", err)
	}
	if len(links) == 0 {
		return []model.CuisineType{}, nil
	}

	ids := make([]string, 0, len(links))
	for _, link := range links {
		ids = append(ids, strconv.FormatInt(link.CuisineTypeID, 10))
	}

	data, _, err = r.client.GetClient().
		From("cuisine_types").
		Select("*", "exact", false).
		In("id", ids).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("料理ジャンルデータの取得失敗: %w", err)
	}

	var cuisineTypes []model.CuisineType
	if err := json.Unmarshal(data, &cuisineTypes); err != nil {
		return nil, fmt.Errorf("料理ジャンルデータのJSONアンマーシャル失敗: %w", err)
	}
	return cuisineTypes, nil
}
