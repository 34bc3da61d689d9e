package model

import "time"

// PredictionEntry 予測結果の1クラス分（順位と確率）
type PredictionEntry struct {
	Label       string  `json:"label"`
	Rank        int     `json:"rank"`
	Probability float64 `json:"probability"`
}

// CuisinePrediction 確率降順に並んだ料理ジャンル予測
// 順位は1から始まり欠番なし
type CuisinePrediction []PredictionEntry

// Labels 順位順にラベルだけを取り出す
func (p CuisinePrediction) Labels() []string {
	labels := make([]string, 0, len(p))
	for _, e := range p {
		labels = append(labels, e.Label)
	}
	return labels
}

// PredictionLog Firestoreに保存する予測スナップショット
type PredictionLog struct {
	ID        string            `json:"id" firestore:"id"`
	Sample    WeatherSample     `json:"sample" firestore:"sample"`
	Entries   CuisinePrediction `json:"entries" firestore:"entries"`
	CreatedAt time.Time         `json:"created_at" firestore:"created_at"`
}
