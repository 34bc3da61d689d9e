package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/weather"
)

// 観測所ベース戦略の探索半径 (km)
const stationSearchRadiusKm = 25.0

// weatherUseCaseImpl KMAクライアントと観測所レジストリを組み合わせて
// repository.WeatherProvider を実装する
type weatherUseCaseImpl struct {
	kma      *weather.KMAClient
	stations repository.StationsRepository
}

// NewWeatherUseCase 新しいWeatherProviderを作成
func NewWeatherUseCase(kma *weather.KMAClient, stations repository.StationsRepository) repository.WeatherProvider {
	return &weatherUseCaseImpl{
		kma:      kma,
		stations: stations,
	}
}

// GetUltraShortTermObservation 格子ベース戦略。観測所の解決は不要
func (u *weatherUseCaseImpl) GetUltraShortTermObservation(ctx context.Context, loc model.Location) (*model.NowcastPayload, error) {
	return u.kma.GetUltraShortTermObservation(ctx, loc)
}

// GetRecentStationReadings 観測所ベース戦略
// 25km以内の最寄り観測所を解決してから時間別観測を取得する
func (u *weatherUseCaseImpl) GetRecentStationReadings(ctx context.Context, loc model.Location) (*model.ObservationPayload, error) {
	station, err := u.stations.FindNearestUsable(ctx, loc, stationSearchRadiusKm)
	if err != nil {
		return nil, err
	}
	log.Printf("最寄り観測所: %s (%.1fkm)", station.StationID, station.DistanceKm)

	items, err := u.kma.GetHourlyObservations(ctx, station.StationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrWeatherUnavailable, err)
	}

	return &model.ObservationPayload{
		Station: model.Station{
			StationID:  station.StationID,
			DistanceKm: station.DistanceKm,
		},
		Items: items,
	}, nil
}
