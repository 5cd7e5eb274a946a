package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"eathub.backend/internal/config"
	"eathub.backend/internal/infrastructure/metrics"
	"eathub.backend/internal/infrastructure/repositories"
	"eathub.backend/internal/interfaces/http/handlers"
	"eathub.backend/internal/interfaces/http/middleware"
	"eathub.backend/internal/usecases"
	"eathub.backend/pkg/jwt"
	"eathub.backend/pkg/logger"
	"eathub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "failed to initialize redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	}

	metrics.MustRegister()

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	tokenStore := redis.NewTokenStore(cfg.Session.TokenTTL)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	userCouponRepo := repositories.NewUserCouponRepository(db)
	promotionRepo := repositories.NewPromotionRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	paymentOrderRepo := repositories.NewPaymentOrderRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, restaurantRepo, uow, jwtService, tokenStore)
	couponUsecase := usecases.NewCouponUsecase(couponRepo, userCouponRepo, uow)
	promotionUsecase := usecases.NewPromotionUsecase(promotionRepo, uow)
	merchantUsecase := usecases.NewMerchantUsecase(userRepo, restaurantRepo, couponRepo, promotionRepo, subscriptionRepo)
	userCouponUsecase := usecases.NewUserCouponUsecase(userCouponRepo, couponRepo)
	billingUsecase := usecases.NewBillingUsecase(subscriptionRepo, paymentOrderRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	couponHandler := handlers.NewCouponHandler(couponUsecase, userRepo)
	promotionHandler := handlers.NewPromotionHandler(promotionUsecase, userRepo)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase, userRepo)
	userCouponHandler := handlers.NewUserCouponHandler(userCouponUsecase, userRepo)
	billingHandler := handlers.NewBillingHandler(billingUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, tokenStore)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		couponHandler:     couponHandler,
		promotionHandler:  promotionHandler,
		merchantHandler:   merchantHandler,
		userCouponHandler: userCouponHandler,
		billingHandler:    billingHandler,
		authMiddleware:    authMiddleware,
	})

	logger.Info(context.Background(), "server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
