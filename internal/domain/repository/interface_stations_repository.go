package repository

import (
	"context"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// StationsRepository 気象観測所レジストリへのクエリ契約
type StationsRepository interface {
	// FindNearestUsable 利用可能な最寄り観測所を距離昇順で1件返す
	// radiusKm 以内に存在しない場合は model.ErrNoStationFound
	FindNearestUsable(ctx context.Context, center model.Location, radiusKm float64) (*model.ObservationStation, error)
}
