package usecase

import (
	"context"
	"log"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
	"github.com/ld5ehom/recommend-backend/internal/domain/service"
)

// PredictionUseCase 気象特徴量からの料理ジャンル予測とスナップショット保存
type PredictionUseCase interface {
	// PredictCuisineTypes 上位count件の予測を返す
	PredictCuisineTypes(ctx context.Context, sample model.WeatherSample, count int) (model.CuisinePrediction, error)
}

type predictionUseCaseImpl struct {
	predictor service.CuisinePredictor
	logs      repository.PredictionLogRepository // nilの場合は保存しない
}

// NewPredictionUseCase 新しいPredictionUseCaseインスタンスを作成
// logs はオプション（Firestore未設定の環境では nil）
func NewPredictionUseCase(predictor service.CuisinePredictor, logs repository.PredictionLogRepository) PredictionUseCase {
	return &predictionUseCaseImpl{
		predictor: predictor,
		logs:      logs,
	}
}

func (u *predictionUseCaseImpl) PredictCuisineTypes(ctx context.Context, sample model.WeatherSample, count int) (model.CuisinePrediction, error) {
	prediction := u.predictor.Predict(sample, count)

	// スナップショット保存はベストエフォート。失敗してもリクエストは成功させる
	if u.logs != nil {
		entry := &model.PredictionLog{
			Sample:  sample,
			Entries: prediction,
		}
		if id, err := u.logs.Save(ctx, entry); err != nil {
			log.Printf("⚠️ 予測スナップショットの保存に失敗: %v", err)
		} else {
			log.Printf("✅ 予測スナップショットを保存: %s", id)
		}
	}

	return prediction, nil
}
