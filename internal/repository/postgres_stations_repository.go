package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/database"
)

type PostgresStationsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresStationsRepository(client *database.PostgreSQLClient) repository.StationsRepository {
	return &PostgresStationsRepository{
		client: client,
	}
}

func (r *PostgresStationsRepository) FindNearestUsable(ctx context.Context, center model.Location, radiusKm float64) (*model.ObservationStation, error) {
	// 境界ボックスでプリフィルタしてから literal haversine で距離昇順に1件取得
	bound := BoundingBoxAround(center, radiusKm)

	query := `
		SELECT id, os_id, latitude, longitude,
			( 6371 * acos(
				cos(radians($1)) * cos(radians(latitude)) *
				cos(radians(longitude) - radians($2)) +
				sin(radians($1)) * sin(radians(latitude))
			)) AS distance
		FROM observation_stations
		WHERE is_usable = TRUE
			AND latitude BETWEEN $4 AND $5
			AND longitude BETWEEN $6 AND $7
			AND ( 6371 * acos(
				cos(radians($1)) * cos(radians(latitude)) *
				cos(radians(longitude) - radians($2)) +
				sin(radians($1)) * sin(radians(latitude))
			)) < $3
		ORDER BY distance
		LIMIT 1
	`

	row := r.client.DB.QueryRowContext(ctx, query,
		center.Latitude, center.Longitude, radiusKm,
		bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())

	var station model.ObservationStation
	err := row.Scan(&station.ID, &station.StationID, &station.Latitude, &station.Longitude, &station.DistanceKm)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrNoStationFound
		}
		return nil, fmt.Errorf("最寄り観測所の検索失敗: %w", err)
	}

	station.IsUsable = true
	return &station, nil
}
