package model

// ScalerArtifact 学習時に使用した標準化スケーラのパラメータ
// features の並び順は WeatherSample.Features と一致していなければならない
type ScalerArtifact struct {
	Features []string  `json:"features"`
	Mean     []float64 `json:"mean"`
	Scale    []float64 `json:"scale"`
}

// ClassifierArtifact 学習済み多クラス分類器（多項ロジスティック回帰）のパラメータ
// Coefficients は [クラス][特徴量] の行列
type ClassifierArtifact struct {
	Classes      []string    `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}
