package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
	"github.com/ld5ehom/recommend-backend/internal/domain/service"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/geocode"
	"github.com/ld5ehom/recommend-backend/internal/usecase"
)

// UtilitiesHandler 気象・ジオコーディング・予測のユーティリティエンドポイント
type UtilitiesHandler struct {
	weather      repository.WeatherProvider
	geocoder     *geocode.VWorldClient
	predictionUC usecase.PredictionUseCase
}

// NewUtilitiesHandler UtilitiesHandlerの新しいインスタンスを作成
func NewUtilitiesHandler(weather repository.WeatherProvider, geocoder *geocode.VWorldClient, predictionUC usecase.PredictionUseCase) *UtilitiesHandler {
	return &UtilitiesHandler{
		weather:      weather,
		geocoder:     geocoder,
		predictionUC: predictionUC,
	}
}

// GetCoordinateByAddress GET /utilities/get_coordinate_by_address
func (h *UtilitiesHandler) GetCoordinateByAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "address parameter is required",
		})
		return
	}

	loc, err := h.geocoder.GetCoordinateByAddress(c.Request.Context(), address)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "upstream_error",
			"message": "Failed to geocode address: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, loc)
}

// GetAddressByCoordinate GET /utilities/get_address_by_coordinate
func (h *UtilitiesHandler) GetAddressByCoordinate(c *gin.Context) {
	loc, ok := parseCoordinate(c)
	if !ok {
		return
	}

	address, err := h.geocoder.GetAddressByCoordinate(c.Request.Context(), loc)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "upstream_error",
			"message": "Failed to reverse geocode: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}

// GetUltraSrtNcstByCoordinate GET /utilities/get_ultra_srt_ncst_by_coordinate
// 格子ベースの超短期実況
func (h *UtilitiesHandler) GetUltraSrtNcstByCoordinate(c *gin.Context) {
	loc, ok := parseCoordinate(c)
	if !ok {
		return
	}

	payload, err := h.weather.GetUltraShortTermObservation(c.Request.Context(), loc)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "upstream_error",
			"message": "Failed to fetch nowcast: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// GetWthrDataListByCoordinate GET /utilities/get_wthr_data_list_by_coordinate
// 観測所ベースの時間別観測
func (h *UtilitiesHandler) GetWthrDataListByCoordinate(c *gin.Context) {
	loc, ok := parseCoordinate(c)
	if !ok {
		return
	}

	payload, err := h.weather.GetRecentStationReadings(c.Request.Context(), loc)
	if err != nil {
		if errors.Is(err, model.ErrNoStationFound) {
			c.JSON(http.StatusFailedDependency, gin.H{
				"error":   "no_station_found",
				"message": "No usable observation station within 25 km",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "upstream_error",
			"message": "Failed to fetch observations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// PredictCuisineTypeByWeather GET /utilities/predict_cuisine_type_by_weather
// 指定がないパラメータは0.0として扱う
func (h *UtilitiesHandler) PredictCuisineTypeByWeather(c *gin.Context) {
	sample := model.WeatherSample{}
	fields := []struct {
		name string
		dst  *float64
	}{
		{"temperature", &sample.Temperature},
		{"precipitation", &sample.Precipitation},
		{"cloudiness", &sample.Cloudiness},
		{"snowfall", &sample.Snowfall},
		{"pressure", &sample.Pressure},
	}
	for _, f := range fields {
		v, ok := parseOptionalFloat(c, f.name)
		if !ok {
			return
		}
		if v != nil {
			*f.dst = *v
		}
	}

	count := service.DefaultPredictionCount
	if raw := c.Query("count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "count must be a positive integer",
			})
			return
		}
		count = v
	}

	prediction, err := h.predictionUC.PredictCuisineTypes(c.Request.Context(), sample, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to predict cuisine types: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, prediction)
}

// parseCoordinate 必須の経度・緯度パラメータを解析して範囲を検証する
func parseCoordinate(c *gin.Context) (model.Location, bool) {
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid longitude value",
		})
		return model.Location{}, false
	}
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid latitude value",
		})
		return model.Location{}, false
	}

	loc := model.Location{Latitude: latitude, Longitude: longitude}
	if err := loc.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Coordinate out of range",
		})
		return model.Location{}, false
	}
	return loc, true
}
