package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
	"github.com/ld5ehom/recommend-backend/internal/domain/service"
)

// RestaurantSearchUseCase 複数の独立した絞り込み条件を1つの候補集合に統合する検索エンジン
type RestaurantSearchUseCase interface {
	// Search 絞り込み・並び替え・ページング付きのレストラン検索
	Search(ctx context.Context, q *model.RestaurantSearchQuery) ([]model.Restaurant, error)

	// GetByID 単一レストランの取得。存在しない場合は model.ErrRestaurantNotFound
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
}

// restaurantSearchUseCaseImpl RestaurantSearchUseCaseの実装
type restaurantSearchUseCaseImpl struct {
	restaurants repository.RestaurantsRepository
	weather     repository.WeatherProvider
	predictor   service.CuisinePredictor
}

// NewRestaurantSearchUseCase 新しいRestaurantSearchUseCaseインスタンスを作成
func NewRestaurantSearchUseCase(
	restaurants repository.RestaurantsRepository,
	weather repository.WeatherProvider,
	predictor service.CuisinePredictor,
) RestaurantSearchUseCase {
	return &restaurantSearchUseCaseImpl{
		restaurants: restaurants,
		weather:     weather,
		predictor:   predictor,
	}
}

func (u *restaurantSearchUseCaseImpl) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	return u.restaurants.FindByID(ctx, id)
}

// Search 条件ごとの候補集合を固定順 [タグ, カテゴリ, 料理ジャンル, エリア, 座標半径] で
// 和集合にまとめ、並び替えとページングを適用して返す
//
// 座標＋半径が指定された場合は天気予測で料理ジャンル条件を広げる:
// 観測所ベースの気象データから料理ジャンルを予測し、予測ラベルを
// 呼び出し側の cuisine_types 条件にカンマ区切りで追記する
func (u *restaurantSearchUseCaseImpl) Search(ctx context.Context, q *model.RestaurantSearchQuery) ([]model.Restaurant, error) {
	cuisineTypes := q.CuisineTypes
	var radiusIDs []int64
	filtered := false

	// Step 1: 座標半径の解決と料理ジャンル条件の拡張
	if q.HasCoordinate() {
		filtered = true
		center := q.Coordinate()

		ids, err := u.restaurants.FindIDsWithinRadius(ctx, center, *q.Distance)
		if err != nil {
			return nil, fmt.Errorf("半径検索に失敗: %w", err)
		}
		radiusIDs = ids

		payload, err := u.weather.GetRecentStationReadings(ctx, center)
		if err != nil {
			// リトライやフォールバックはしない。失敗はそのまま呼び出し側に伝える
			return nil, fmt.Errorf("座標付近の気象データ取得に失敗: %w", err)
		}

		sample := payload.WeatherSample()
		prediction := u.predictor.Predict(sample, service.DefaultPredictionCount)
		labels := prediction.Labels()
		log.Printf("🌦 天気ベースの料理ジャンル予測: %v", labels)

		if len(labels) > 0 {
			joined := strings.Join(labels, ",")
			if cuisineTypes != "" {
				cuisineTypes = cuisineTypes + "," + joined
			} else {
				cuisineTypes = joined
			}
		}
	}

	// Step 2-3: 各条件を独立に解決し、初出順を保ったまま和集合にまとめる
	var include []int64
	seen := make(map[int64]struct{})
	appendIDs := func(ids []int64) {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			include = append(include, id)
		}
	}

	if names := splitNames(q.Tags); len(names) > 0 {
		filtered = true
		ids, err := u.restaurants.FindIDsByTagNames(ctx, names)
		if err != nil {
			return nil, fmt.Errorf("タグ条件の解決に失敗: %w", err)
		}
		appendIDs(ids)
	}

	if names := splitNames(q.CuisineTypeCategories); len(names) > 0 {
		filtered = true
		ids, err := u.restaurants.FindIDsByCuisineTypeCategoryNames(ctx, names)
		if err != nil {
			return nil, fmt.Errorf("料理カテゴリ条件の解決に失敗: %w", err)
		}
		appendIDs(ids)
	}

	if names := splitNames(cuisineTypes); len(names) > 0 {
		filtered = true
		ids, err := u.restaurants.FindIDsByCuisineTypeNames(ctx, names)
		if err != nil {
			return nil, fmt.Errorf("料理ジャンル条件の解決に失敗: %w", err)
		}
		appendIDs(ids)
	}

	if area := strings.TrimSpace(q.Area); area != "" {
		filtered = true
		ids, err := u.restaurants.FindIDsByAreaSubstring(ctx, area)
		if err != nil {
			return nil, fmt.Errorf("エリア条件の解決に失敗: %w", err)
		}
		appendIDs(ids)
	}

	appendIDs(radiusIDs)

	// Step 4: 並び替えとページング
	// 「条件なし」と「条件はあるが全て空集合」は区別する:
	// 前者は全件、後者は空リスト
	if len(include) == 0 {
		if filtered {
			return []model.Restaurant{}, nil
		}
		return u.restaurants.List(ctx, nil, q.OrderBy, q.Sort, q.Skip, q.Limit)
	}
	return u.restaurants.List(ctx, include, q.OrderBy, q.Sort, q.Skip, q.Limit)
}

// splitNames カンマ区切りの名前リストを分解する（空要素は除去）
func splitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}
