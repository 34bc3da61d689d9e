package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ld5ehom/recommend-backend/internal/infrastructure/database"
)

// SetupRouter ルーティングを構築する
func SetupRouter(
	restaurants *RestaurantsHandler,
	utilities *UtilitiesHandler,
	pgClient *database.PostgreSQLClient,
	sbClient *database.SupabaseClient,
) *gin.Engine {
	r := gin.Default()

	r.GET("/restaurants", restaurants.GetRestaurants)
	r.GET("/restaurants/:id", restaurants.GetRestaurant)
	r.GET("/restaurants/:id/cuisine_types", restaurants.GetCuisineTypesByRestaurant)

	utilitiesGroup := r.Group("/utilities")
	{
		utilitiesGroup.GET("/get_coordinate_by_address", utilities.GetCoordinateByAddress)
		utilitiesGroup.GET("/get_address_by_coordinate", utilities.GetAddressByCoordinate)
		utilitiesGroup.GET("/get_ultra_srt_ncst_by_coordinate", utilities.GetUltraSrtNcstByCoordinate)
		utilitiesGroup.GET("/get_wthr_data_list_by_coordinate", utilities.GetWthrDataListByCoordinate)
		utilitiesGroup.GET("/predict_cuisine_type_by_weather", utilities.PredictCuisineTypeByWeather)
	}

	r.GET("/api/health", func(c *gin.Context) {
		if err := pgClient.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"detail": "postgres: " + err.Error(),
			})
			return
		}
		if err := sbClient.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"detail": "supabase: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "recommend-backend",
		})
	})

	return r
}
