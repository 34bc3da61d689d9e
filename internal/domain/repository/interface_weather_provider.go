package repository

import (
	"context"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// WeatherProvider 座標付近の現在の気象を2つの独立した戦略で取得する契約
// 2つの戦略は互いに独立しており、結果が一致する保証はない
type WeatherProvider interface {
	// GetUltraShortTermObservation 座標を格子に射影し超短期実況を取得する（格子ベース）
	GetUltraShortTermObservation(ctx context.Context, loc model.Location) (*model.NowcastPayload, error)

	// GetRecentStationReadings 最寄りの利用可能な観測所の直近の時間別観測を取得する（観測所ベース）
	// 25km以内に観測所がない場合は model.ErrNoStationFound
	GetRecentStationReadings(ctx context.Context, loc model.Location) (*model.ObservationPayload, error)
}
