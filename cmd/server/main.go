package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ncgames/games_go_server/config"
	"github.com/ncgames/games_go_server/internal/api"
	"github.com/ncgames/games_go_server/internal/api/handler"
	"github.com/ncgames/games_go_server/internal/database"
	"github.com/ncgames/games_go_server/internal/logger"
	"github.com/ncgames/games_go_server/internal/repository"
	"github.com/ncgames/games_go_server/internal/service"
)

func main() {
	// .env is optional, for local overrides
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger := logger.New(cfg.Log.Level)
	defer zapLogger.Sync()

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect database", zap.Error(err))
	}
	zapLogger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	categoryRepo := repository.NewCategoryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)

	categoryService := service.NewCategoryService(categoryRepo)
	reviewService := service.NewReviewService(reviewRepo, categoryRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, reviewRepo, userRepo)
	userService := service.NewUserService(userRepo)

	router := api.NewRouter(
		handler.NewAPIHandler(),
		handler.NewCategoryHandler(categoryService),
		handler.NewReviewHandler(reviewService),
		handler.NewCommentHandler(commentService),
		handler.NewUserHandler(userService),
		cfg,
		zapLogger,
	)
	engine := router.Setup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Server starting", zap.String("addr", addr))
	if err := engine.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
