package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// ModelPath 環境変数から分類器アーティファクトのパスを組み立てる
func ModelPath() string {
	return filepath.Join(os.Getenv("ML_MODEL_DIR"), os.Getenv("ML_MODEL_VERSION"), os.Getenv("ML_MODEL_FILE"))
}

// PreprocessorPath 環境変数からスケーラアーティファクトのパスを組み立てる
func PreprocessorPath() string {
	return filepath.Join(os.Getenv("ML_MODEL_DIR"), os.Getenv("ML_MODEL_VERSION"), os.Getenv("ML_PREPROCESSOR_FILE"))
}

// LoadScaler スケーラアーティファクト（JSON）を読み込む
func LoadScaler(path string) (*model.ScalerArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("スケーラアーティファクトの読み込みに失敗: %w", err)
	}

	var scaler model.ScalerArtifact
	if err := json.Unmarshal(data, &scaler); err != nil {
		return nil, fmt.Errorf("スケーラアーティファクトのパースに失敗: %w", err)
	}
	if len(scaler.Mean) == 0 || len(scaler.Mean) != len(scaler.Scale) {
		return nil, fmt.Errorf("スケーラアーティファクトの次元が不正です: mean=%d scale=%d", len(scaler.Mean), len(scaler.Scale))
	}
	return &scaler, nil
}

// LoadClassifier 分類器アーティファクト（JSON）を読み込む
func LoadClassifier(path string) (*model.ClassifierArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("分類器アーティファクトの読み込みに失敗: %w", err)
	}

	var classifier model.ClassifierArtifact
	if err := json.Unmarshal(data, &classifier); err != nil {
		return nil, fmt.Errorf("分類器アーティファクトのパースに失敗: %w", err)
	}
	if len(classifier.Classes) == 0 {
		return nil, fmt.Errorf("分類器アーティファクトにクラスが含まれていません")
	}
	if len(classifier.Coefficients) != len(classifier.Classes) || len(classifier.Intercepts) != len(classifier.Classes) {
		return nil, fmt.Errorf("分類器アーティファクトの次元が不正です: classes=%d coefficients=%d intercepts=%d",
			len(classifier.Classes), len(classifier.Coefficients), len(classifier.Intercepts))
	}
	return &classifier, nil
}
