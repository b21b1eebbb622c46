package main

import (
	"PokeGallery/internal/config"
	"PokeGallery/internal/handlers"
	"PokeGallery/internal/middleware"
	"PokeGallery/internal/repo"
	"PokeGallery/internal/service"
	"PokeGallery/internal/storage"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	//context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	assets, err := storage.NewMinioStore(ctx, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	if err != nil {
		sugar.Fatalw("failed to initialize asset store", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	projectRepo := repo.NewProjectRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)
	pokemonRepo := repo.NewPokemonRepository(gormDB)

	userService := service.NewUserService(userRepo, cfg.AuthSecret)
	projectService := service.NewProjectService(projectRepo, categoryRepo, pokemonRepo, assets, sugar)
	categoryService := service.NewCategoryService(categoryRepo, projectService)
	pokemonService := service.NewPokemonService(pokemonRepo, projectService, assets, sugar)

	h := handlers.NewHandler(userService, projectService, categoryService, pokemonService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"S3Endpoint", cfg.S3Endpoint,
		"S3Bucket", cfg.S3Bucket,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
