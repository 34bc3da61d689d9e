package repository

import (
	"context"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// RestaurantsRepository レストラン読み取りの狭いクエリ契約
// 検索エンジンはORMの関連オブジェクトではなくID集合を受け取る
type RestaurantsRepository interface {
	// FindByID 単一レストランを取得する。存在しない場合は model.ErrRestaurantNotFound
	FindByID(ctx context.Context, id int64) (*model.Restaurant, error)

	// List 並び替え・ページング付きでレストラン一覧を取得する
	// ids が nil の場合は絞り込みなし（全件対象）
	List(ctx context.Context, ids []int64, orderBy model.RestaurantOrderBy, sort model.SortDirection, skip, limit int) ([]model.Restaurant, error)

	// FindIDsByTagNames タグ名（完全一致）の集合に紐づくレストランIDを返す
	FindIDsByTagNames(ctx context.Context, names []string) ([]int64, error)

	// FindIDsByCuisineTypeCategoryNames カテゴリ名に紐づくレストランIDを返す
	FindIDsByCuisineTypeCategoryNames(ctx context.Context, names []string) ([]int64, error)

	// FindIDsByCuisineTypeNames 料理ジャンル名に紐づくレストランIDを返す
	FindIDsByCuisineTypeNames(ctx context.Context, names []string) ([]int64, error)

	// FindIDsByAreaSubstring 住所の部分一致（大文字小文字無視）でレストランIDを返す
	FindIDsByAreaSubstring(ctx context.Context, area string) ([]int64, error)

	// FindIDsWithinRadius 中心座標から distance km 以内のレストランIDを距離昇順で返す
	FindIDsWithinRadius(ctx context.Context, center model.Location, distanceKm float64) ([]int64, error)
}
