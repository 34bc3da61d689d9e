package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
)

// DefaultPredictionCount countを省略した場合に読み取る上位クラス数
const DefaultPredictionCount = 2

// CuisinePredictor 気象特徴量から料理ジャンルの順位付き予測を返す
// 実装はプロセス起動時に一度だけ構築され、以後不変（並行読み取り安全）
type CuisinePredictor interface {
	// Predict 全クラスを確率降順に順位付けし、上位count件を返す
	// count <= 0 の場合は DefaultPredictionCount を使用する
	Predict(sample model.WeatherSample, count int) model.CuisinePrediction
}

type cuisinePredictorImpl struct {
	scaler     *model.ScalerArtifact
	classifier *model.ClassifierArtifact
}

// NewCuisinePredictor スケーラと分類器の整合性を検証してプレディクタを構築する
func NewCuisinePredictor(scaler *model.ScalerArtifact, classifier *model.ClassifierArtifact) (CuisinePredictor, error) {
	if len(scaler.Mean) != len(scaler.Scale) {
		return nil, fmt.Errorf("スケーラのmean/scaleの次元が一致しません: %d != %d", len(scaler.Mean), len(scaler.Scale))
	}
	if len(classifier.Classes) == 0 {
		return nil, fmt.Errorf("分類器のクラスが空です")
	}
	if len(classifier.Coefficients) != len(classifier.Classes) {
		return nil, fmt.Errorf("分類器の係数行数がクラス数と一致しません: %d != %d", len(classifier.Coefficients), len(classifier.Classes))
	}
	if len(classifier.Intercepts) != len(classifier.Classes) {
		return nil, fmt.Errorf("分類器の切片数がクラス数と一致しません: %d != %d", len(classifier.Intercepts), len(classifier.Classes))
	}
	for i, row := range classifier.Coefficients {
		if len(row) != len(scaler.Mean) {
			return nil, fmt.Errorf("クラス %q の係数次元が特徴量数と一致しません: %d != %d", classifier.Classes[i], len(row), len(scaler.Mean))
		}
	}
	return &cuisinePredictorImpl{
		scaler:     scaler,
		classifier: classifier,
	}, nil
}

func (p *cuisinePredictorImpl) Predict(sample model.WeatherSample, count int) model.CuisinePrediction {
	if count <= 0 {
		count = DefaultPredictionCount
	}

	probs := p.predictProba(sample.Features())

	// 全クラスを確率降順で順位付けしてから上位count件に切り詰める
	entries := make(model.CuisinePrediction, len(probs))
	for i, prob := range probs {
		entries[i] = model.PredictionEntry{
			Label:       p.classifier.Classes[i],
			Probability: prob,
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Probability > entries[j].Probability
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if count < len(entries) {
		entries = entries[:count]
	}
	return entries
}

// predictProba 標準化した特徴量に対するソフトマックス確率を返す
func (p *cuisinePredictorImpl) predictProba(features []float64) []float64 {
	scaled := make([]float64, len(features))
	for i, v := range features {
		scale := p.scaler.Scale[i]
		if scale == 0 {
			scale = 1
		}
		scaled[i] = (v - p.scaler.Mean[i]) / scale
	}

	scores := make([]float64, len(p.classifier.Classes))
	maxScore := math.Inf(-1)
	for c, row := range p.classifier.Coefficients {
		s := p.classifier.Intercepts[c]
		for i, w := range row {
			s += w * scaled[i]
		}
		scores[c] = s
		if s > maxScore {
			maxScore = s
		}
	}

	// オーバーフロー対策として最大スコアを引いてからソフトマックス
	var sum float64
	probs := make([]float64, len(scores))
	for c, s := range scores {
		probs[c] = math.Exp(s - maxScore)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs
}
