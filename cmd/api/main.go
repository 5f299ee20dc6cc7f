package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/innercircle/lessons-api/internal/handler/http"
	"github.com/innercircle/lessons-api/internal/infrastructure/cache"
	"github.com/innercircle/lessons-api/internal/infrastructure/config"
	"github.com/innercircle/lessons-api/internal/infrastructure/database"
	"github.com/innercircle/lessons-api/internal/infrastructure/logger"
	"github.com/innercircle/lessons-api/internal/infrastructure/payment"
	"github.com/innercircle/lessons-api/internal/infrastructure/repository/mongodb"
	"github.com/innercircle/lessons-api/internal/infrastructure/validator"
	"github.com/innercircle/lessons-api/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.RedisURL == "" {
		log.Fatal("REDIS_URL environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)

	// Redis backs the pending checkout sessions
	rdb := cache.NewRedisFromURL(context.Background(), appConfig.RedisURL)
	defer cache.Close(rdb)

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	lessonRepo := mongodb.NewLessonRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	summaryRepo := mongodb.NewSummaryRepository(db)

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	sessionStore := cache.NewCheckoutSessionStore(rdb)
	paymentProvider := payment.NewCheckoutService(sessionStore, appConfig.CheckoutBaseURL, appConfig.CheckoutSessionTTL)

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, appLogger)
	lessonUsecase := usecase.NewLessonUsecase(lessonRepo, appLogger)
	reportUsecase := usecase.NewReportUsecase(reportRepo, lessonRepo, appLogger)
	summaryUsecase := usecase.NewSummaryUsecase(userRepo, summaryRepo)
	billingUsecase := usecase.NewBillingUsecase(userRepo, paymentProvider, appLogger)

	// Initialize Gin router
	validator.RegisterCustomValidators()
	router := gin.Default()
	appRouter := http.NewRouter(
		userUsecase, lessonUsecase, reportUsecase, summaryUsecase, billingUsecase,
		appLogger, appConfig.RateLimitPerSecond,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
