package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/database"
)

type PostgresRestaurantsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresRestaurantsRepository(client *database.PostgreSQLClient) repository.RestaurantsRepository {
	return &PostgresRestaurantsRepository{
		client: client,
	}
}

// 並び替え可能なカラムの許可リスト
// クエリ文字列をそのままORDER BY句に埋め込まないための対応表
var orderColumns = map[model.RestaurantOrderBy]string{
	model.OrderByName:      "name",
	model.OrderByCreatedAt: "created_at",
	model.OrderByUpdatedAt: "updated_at",
}

var sortDirections = map[model.SortDirection]string{
	model.SortAsc:  "ASC",
	model.SortDesc: "DESC",
}

// buildOrderClause 許可リストからORDER BY句を組み立てる
// 未知の値はデフォルト（updated_at DESC）に落とす
func buildOrderClause(orderBy model.RestaurantOrderBy, sort model.SortDirection) string {
	col, ok := orderColumns[orderBy]
	if !ok {
		col = "updated_at"
	}
	dir, ok := sortDirections[sort]
	if !ok {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", col, dir)
}

const restaurantColumns = `id, name, area_name, address, phone, image_url, latitude, longitude, start_time, end_time, last_order_time, created_at, updated_at`

// scanRestaurant 1行分のレストランレコードを読み取る
func scanRestaurant(scanner interface{ Scan(...any) error }) (*model.Restaurant, error) {
	var r model.Restaurant
	var areaName, imageURL sql.NullString
	var latitude, longitude sql.NullFloat64
	var startTime, endTime, lastOrderTime sql.NullString
	var updatedAt sql.NullTime

	err := scanner.Scan(&r.ID, &r.Name, &areaName, &r.Address, &r.Phone, &imageURL,
		&latitude, &longitude, &startTime, &endTime, &lastOrderTime, &r.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if areaName.Valid {
		r.AreaName = &areaName.String
	}
	if imageURL.Valid {
		r.ImageURL = &imageURL.String
	}
	if latitude.Valid {
		r.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		r.Longitude = &longitude.Float64
	}
	if startTime.Valid {
		r.StartTime = &startTime.String
	}
	if endTime.Valid {
		r.EndTime = &endTime.String
	}
	if lastOrderTime.Valid {
		r.LastOrderTime = &lastOrderTime.String
	}
	if updatedAt.Valid {
		r.UpdatedAt = &updatedAt.Time
	}
	return &r, nil
}

func (r *PostgresRestaurantsRepository) FindByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	query := fmt.Sprintf(`SELECT %s FROM restaurants WHERE id = $1`, restaurantColumns)

	row := r.client.DB.QueryRowContext(ctx, query, id)
	restaurant, err := scanRestaurant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("レストランデータの取得失敗: %w", err)
	}
	return restaurant, nil
}

func (r *PostgresRestaurantsRepository) List(ctx context.Context, ids []int64, orderBy model.RestaurantOrderBy, sort model.SortDirection, skip, limit int) ([]model.Restaurant, error) {
	var query string
	var args []any

	if ids != nil {
		query = fmt.Sprintf(`SELECT %s FROM restaurants WHERE id = ANY($1) %s OFFSET $2 LIMIT $3`,
			restaurantColumns, buildOrderClause(orderBy, sort))
		args = []any{pq.Array(ids), skip, limit}
	} else {
		query = fmt.Sprintf(`SELECT %s FROM restaurants %s OFFSET $1 LIMIT $2`,
			restaurantColumns, buildOrderClause(orderBy, sort))
		args = []any{skip, limit}
	}

	rows, err := r.client.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("レストラン一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	restaurants := []model.Restaurant{}
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("レストランデータスキャンエラー: %w", err)
		}
		restaurants = append(restaurants, *restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行イテレーション中のエラー: %w", err)
	}
	return restaurants, nil
}

func (r *PostgresRestaurantsRepository) FindIDsByTagNames(ctx context.Context, names []string) ([]int64, error) {
	query := `
		SELECT rt.restaurant_id
		FROM tags t
		JOIN restaurant_tags rt ON rt.tag_id = t.id
		WHERE t.name = ANY($1)
	`
	return r.queryIDs(ctx, "タグ", query, pq.Array(names))
}

func (r *PostgresRestaurantsRepository) FindIDsByCuisineTypeCategoryNames(ctx context.Context, names []string) ([]int64, error) {
	query := `
		SELECT rct.restaurant_id
		FROM cuisine_type_categories cc
		JOIN cuisine_types ct ON ct.cuisine_type_category_id = cc.id
		JOIN restaurant_cuisine_types rct ON rct.cuisine_type_id = ct.id
		WHERE cc.name = ANY($1)
	`
	return r.queryIDs(ctx, "料理カテゴリ", query, pq.Array(names))
}

func (r *PostgresRestaurantsRepository) FindIDsByCuisineTypeNames(ctx context.Context, names []string) ([]int64, error) {
	query := `
		SELECT rct.restaurant_id
		FROM cuisine_types ct
		JOIN restaurant_cuisine_types rct ON rct.cuisine_type_id = ct.id
		WHERE ct.name = ANY($1)
	`
	return r.queryIDs(ctx, "料理ジャンル", query, pq.Array(names))
}

func (r *PostgresRestaurantsRepository) FindIDsByAreaSubstring(ctx context.Context, area string) ([]int64, error) {
	// 大文字小文字を無視した住所の部分一致
	query := `SELECT id FROM restaurants WHERE address ILIKE '%' || $1 || '%'`
	return r.queryIDs(ctx, "エリア", query, area)
}

func (r *PostgresRestaurantsRepository) FindIDsWithinRadius(ctx context.Context, center model.Location, distanceKm float64) ([]int64, error) {
	// 境界ボックスでプリフィルタしてから literal haversine で厳密に絞り込む
	// 気象観測所検索と同一の式（6371 * acos）を使用する
	bound := BoundingBoxAround(center, distanceKm)

	query := `
		SELECT id,
			( 6371 * acos(
				cos(radians($1)) * cos(radians(latitude)) *
				cos(radians(longitude) - radians($2)) +
				sin(radians($1)) * sin(radians(latitude))
			)) AS distance
		FROM restaurants
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
			AND latitude BETWEEN $4 AND $5
			AND longitude BETWEEN $6 AND $7
			AND ( 6371 * acos(
				cos(radians($1)) * cos(radians(latitude)) *
				cos(radians(longitude) - radians($2)) +
				sin(radians($1)) * sin(radians(latitude))
			)) < $3
		ORDER BY distance
	`

	rows, err := r.client.DB.QueryContext(ctx, query,
		center.Latitude, center.Longitude, distanceKm,
		bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())
	if err != nil {
		return nil, fmt.Errorf("半径検索の実行失敗: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		var distance float64
		if err := rows.Scan(&id, &distance); err != nil {
			return nil, fmt.Errorf("半径検索の結果スキャンエラー: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行イテレーション中のエラー: %w", err)
	}
	return ids, nil
}

// queryIDs ID列を返すクエリの共通実行部
func (r *PostgresRestaurantsRepository) queryIDs(ctx context.Context, label, query string, args ...any) ([]int64, error) {
	rows, err := r.client.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s条件のレストランID取得失敗: %w", label, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s条件の結果スキャンエラー: %w", label, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("行イテレーション中のエラー: %w", err)
	}
	return ids, nil
}
