package model

import (
	"strconv"
	"strings"
)

// WeatherSample 予測に使用する5つの気象特徴量
// 並び順は学習時と同じ（気温・降水量・全雲量・積雪・気圧）でなければならない
type WeatherSample struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	Cloudiness    float64 `json:"cloudiness"`
	Snowfall      float64 `json:"snowfall"`
	Pressure      float64 `json:"pressure"`
}

// Features 学習時の並び順で特徴量を返す
func (s WeatherSample) Features() []float64 {
	return []float64{s.Temperature, s.Precipitation, s.Cloudiness, s.Snowfall, s.Pressure}
}

// NowcastItem 超短期実況APIの観測項目（カテゴリ別の観測値）
type NowcastItem struct {
	BaseDate  string `json:"baseDate"`
	BaseTime  string `json:"baseTime"`
	Category  string `json:"category"`
	Nx        int    `json:"nx"`
	Ny        int    `json:"ny"`
	ObsrValue string `json:"obsrValue"`
}

// NowcastPayload 超短期実況APIのレスポンス本文
type NowcastPayload struct {
	BaseDate string        `json:"base_date"`
	BaseTime string        `json:"base_time"`
	Grid     GridCell      `json:"grid"`
	Items    []NowcastItem `json:"items"`
}

// ObservationItem 時間別地上観測（ASOS）の1時間分のレコード
// APIは全フィールドを文字列で返す（欠測は空文字）
type ObservationItem struct {
	Tm          string `json:"tm"`      // 観測時刻 "YYYY-MM-DD HH:mm"
	StationID   string `json:"stnId"`   // 観測所番号
	StationName string `json:"stnNm"`   // 観測所名
	Ta          string `json:"ta"`      // 気温 (C)
	Rn          string `json:"rn"`      // 降水量 (mm)
	DC10Tca     string `json:"dc10Tca"` // 全雲量 (1/10)
	Dsnw        string `json:"dsnw"`    // 積雪 (cm)
	Pa          string `json:"pa"`      // 現地気圧 (hPa)
}

// ObservationPayload 時間別地上観測APIのレスポンス本文
type ObservationPayload struct {
	Station Station `json:"station"`
	Items   []ObservationItem `json:"items"`
}

// Station 観測データの取得元となった観測所の概要
type Station struct {
	StationID  string  `json:"station_id"`
	DistanceKm float64 `json:"distance_km"`
}

// WeatherSample 最新の観測レコードから5つの特徴量を取り出す
// 欠測（空文字・null・パース不能）はすべて 0.0 として扱う
func (p *ObservationPayload) WeatherSample() WeatherSample {
	if len(p.Items) == 0 {
		return WeatherSample{}
	}
	// 観測時刻昇順で返るため末尾が最新
	latest := p.Items[len(p.Items)-1]
	return WeatherSample{
		Temperature:   parseObservationValue(latest.Ta),
		Precipitation: parseObservationValue(latest.Rn),
		Cloudiness:    parseObservationValue(latest.DC10Tca),
		Snowfall:      parseObservationValue(latest.Dsnw),
		Pressure:      parseObservationValue(latest.Pa),
	}
}

func parseObservationValue(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return 0.0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0.0
	}
	return v
}
