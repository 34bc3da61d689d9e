package model

import "errors"

// ドメイン層のセンチネルエラー
// リスト系クエリは0件でも成功（空リスト）を返し、これらのエラーは返さない
var (
	// ErrRestaurantNotFound 指定IDのレストランが存在しない
	ErrRestaurantNotFound = errors.New("レストランが見つかりません")

	// ErrNoStationFound 25km以内に利用可能な観測所が存在しない
	ErrNoStationFound = errors.New("利用可能な観測所が見つかりません")

	// ErrWeatherUnavailable 上流の気象APIからデータを取得できなかった
	// ハンドラー層で502に対応付けるためのマーカー
	ErrWeatherUnavailable = errors.New("気象データを取得できません")
)
