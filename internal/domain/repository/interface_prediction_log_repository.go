package repository

import (
	"context"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// PredictionLogRepository 予測スナップショットの保存契約
type PredictionLogRepository interface {
	// Save スナップショットを保存しドキュメントIDを返す
	Save(ctx context.Context, entry *model.PredictionLog) (string, error)
}
