package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ld5ehom/recommend-backend/internal/domain/model"
	"github.com/ld5ehom/recommend-backend/internal/domain/repository"
	"github.com/ld5ehom/recommend-backend/internal/usecase"
)

// RestaurantsHandler レストラン検索に関するHTTPハンドラー
type RestaurantsHandler struct {
	searchUseCase usecase.RestaurantSearchUseCase
	cuisineTypes  repository.CuisineTypesRepository
}

// NewRestaurantsHandler RestaurantsHandlerの新しいインスタンスを作成
func NewRestaurantsHandler(searchUseCase usecase.RestaurantSearchUseCase, cuisineTypes repository.CuisineTypesRepository) *RestaurantsHandler {
	return &RestaurantsHandler{
		searchUseCase: searchUseCase,
		cuisineTypes:  cuisineTypes,
	}
}

// GetRestaurants GET /restaurants - 絞り込み付きレストラン一覧
// 0件は空リストで返す（404にはしない）
func (h *RestaurantsHandler) GetRestaurants(c *gin.Context) {
	query, ok := h.parseSearchQuery(c)
	if !ok {
		return
	}

	restaurants, err := h.searchUseCase.Search(c.Request.Context(), query)
	if err != nil {
		// 一覧系は0件でも404にしない。観測所・気象APIの失敗は依存先の問題として区別する
		if errors.Is(err, model.ErrNoStationFound) {
			c.JSON(http.StatusFailedDependency, gin.H{
				"error":   "no_station_found",
				"message": "No usable observation station near the given coordinate",
			})
			return
		}
		if errors.Is(err, model.ErrWeatherUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "upstream_error",
				"message": "Failed to fetch weather data: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to search restaurants: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant GET /restaurants/:id - 単一レストランの取得
func (h *RestaurantsHandler) GetRestaurant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Restaurant ID must be an integer",
		})
		return
	}

	restaurant, err := h.searchUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Restaurant not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get restaurant: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// GetCuisineTypesByRestaurant GET /restaurants/:id/cuisine_types - 関連する料理ジャンル一覧
func (h *RestaurantsHandler) GetCuisineTypesByRestaurant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Restaurant ID must be an integer",
		})
		return
	}

	cuisineTypes, err := h.cuisineTypes.ListByRestaurantID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get cuisine types: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cuisineTypes)
}

// parseSearchQuery クエリパラメータを検証して検索条件に変換する
// 失敗時は400を書き込んで ok=false を返す
func (h *RestaurantsHandler) parseSearchQuery(c *gin.Context) (*model.RestaurantSearchQuery, bool) {
	query := &model.RestaurantSearchQuery{
		Tags:                  c.Query("tags"),
		CuisineTypeCategories: c.Query("cuisine_type_categories"),
		CuisineTypes:          c.Query("cuisine_types"),
		Area:                  c.Query("area"),
		Skip:                  0,
		Limit:                 100,
		OrderBy:               model.OrderByUpdatedAt,
		Sort:                  model.SortDesc,
	}

	longitude, ok := parseOptionalFloat(c, "longitude")
	if !ok {
		return nil, false
	}
	latitude, ok := parseOptionalFloat(c, "latitude")
	if !ok {
		return nil, false
	}
	distance, ok := parseOptionalFloat(c, "distance")
	if !ok {
		return nil, false
	}

	// 座標半径検索は経度・緯度・距離の3点セット
	supplied := 0
	for _, v := range []*float64{longitude, latitude, distance} {
		if v != nil {
			supplied++
		}
	}
	if supplied != 0 && supplied != 3 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "longitude, latitude and distance must be supplied together",
		})
		return nil, false
	}
	if supplied == 3 {
		loc := model.Location{Latitude: *latitude, Longitude: *longitude}
		if err := loc.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Coordinate out of range",
			})
			return nil, false
		}
		query.Longitude = longitude
		query.Latitude = latitude
		query.Distance = distance
	}

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid skip value",
			})
			return nil, false
		}
		query.Skip = skip
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid limit value",
			})
			return nil, false
		}
		query.Limit = limit
	}

	if raw := c.Query("order_by"); raw != "" {
		orderBy := model.RestaurantOrderBy(raw)
		if !orderBy.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "order_by must be one of: name, created_at, updated_at",
			})
			return nil, false
		}
		query.OrderBy = orderBy
	}
	if raw := c.Query("sort"); raw != "" {
		sort := model.SortDirection(raw)
		if !sort.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "sort must be asc or desc",
			})
			return nil, false
		}
		query.Sort = sort
	}

	return query, true
}

// parseOptionalFloat 任意の浮動小数クエリパラメータを解析する
// 失敗時は400を書き込んで ok=false を返す
func parseOptionalFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid " + name + " value",
		})
		return nil, false
	}
	return &v, true
}
