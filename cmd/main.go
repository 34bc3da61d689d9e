package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ld5ehom/recommend-backend/internal/domain/service"
	"github.com/ld5ehom/recommend-backend/internal/handler"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/database"
	fsinfra "github.com/ld5ehom/recommend-backend/internal/infrastructure/firestore"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/geocode"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/ml"
	"github.com/ld5ehom/recommend-backend/internal/infrastructure/weather"
	domainrepo "github.com/ld5ehom/recommend-backend/internal/domain/repository"
	repoimpl "github.com/ld5ehom/recommend-backend/internal/repository"
	"github.com/ld5ehom/recommend-backend/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	// データベース接続の初期化
	log.Printf("Initializing PostgreSQL client...")
	pgClient, err := database.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("PostgreSQLクライアント初期化失敗: %v", err)
	}
	defer pgClient.Close()

	log.Printf("Initializing Supabase client...")
	sbClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabaseクライアント初期化失敗: %v", err)
	}

	// MLアーティファクトはプロセス起動時に一度だけロードし、以後不変
	log.Printf("Loading ML artifacts...")
	scaler, err := ml.LoadScaler(ml.PreprocessorPath())
	if err != nil {
		log.Fatalf("スケーラのロード失敗: %v", err)
	}
	classifier, err := ml.LoadClassifier(ml.ModelPath())
	if err != nil {
		log.Fatalf("分類器のロード失敗: %v", err)
	}
	predictor, err := service.NewCuisinePredictor(scaler, classifier)
	if err != nil {
		log.Fatalf("プレディクタ初期化失敗: %v", err)
	}
	log.Printf("✅ Cuisine predictor ready (%d classes)", len(classifier.Classes))

	// Firestore（予測スナップショット保存）はオプション
	var predictionLogs domainrepo.PredictionLogRepository
	if projectID := os.Getenv("FIRESTORE_PROJECT_ID"); projectID != "" {
		fsClient, err := fsinfra.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Printf("⚠️ Firestore初期化失敗（スナップショット保存は無効）: %v", err)
		} else {
			defer fsClient.Close()
			predictionLogs = repoimpl.NewFirestorePredictionLogRepository(fsClient.GetClient())
		}
	}

	// 外部プロバイダクライアント
	projector := service.NewGridProjector()
	kmaClient := weather.NewKMAClient(
		os.Getenv("DATA_GO_KR_API_KEY"),
		os.Getenv("DATA_GO_KR_API_URL_USN"),
		os.Getenv("DATA_GO_KR_API_URL_WDL"),
		projector,
	)
	vworldClient := geocode.NewVWorldClient(
		os.Getenv("VWORLD_API_URL"),
		os.Getenv("VWORLD_API_KEY"),
	)

	// リポジトリとユースケース
	restaurantsRepo := repoimpl.NewPostgresRestaurantsRepository(pgClient)
	stationsRepo := repoimpl.NewPostgresStationsRepository(pgClient)
	cuisineTypesRepo := repoimpl.NewSupabaseCuisineTypesRepository(sbClient)

	weatherProvider := usecase.NewWeatherUseCase(kmaClient, stationsRepo)
	searchUseCase := usecase.NewRestaurantSearchUseCase(restaurantsRepo, weatherProvider, predictor)
	predictionUseCase := usecase.NewPredictionUseCase(predictor, predictionLogs)

	restaurantsHandler := handler.NewRestaurantsHandler(searchUseCase, cuisineTypesRepo)
	utilitiesHandler := handler.NewUtilitiesHandler(weatherProvider, vworldClient, predictionUseCase)

	router := handler.SetupRouter(restaurantsHandler, utilitiesHandler, pgClient, sbClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("recommend-backend server starting on :%s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("サーバの起動に失敗: %v", err)
	}
}
