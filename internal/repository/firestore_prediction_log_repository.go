package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
)

// FirestorePredictionLogRepository Firestoreを使用した予測スナップショットリポジトリ
type FirestorePredictionLogRepository struct {
	client *firestore.Client
}

// NewFirestorePredictionLogRepository 新しいインスタンスを作成
func NewFirestorePredictionLogRepository(client *firestore.Client) repository.PredictionLogRepository {
	return &FirestorePredictionLogRepository{
		client: client,
	}
}

// Save 予測スナップショットを保存しドキュメントIDを返す
func (r *FirestorePredictionLogRepository) Save(ctx context.Context, entry *model.PredictionLog) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("cuisinePredictions").Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("予測スナップショットの保存に失敗しました: %w", err)
	}
	return entry.ID, nil
}
