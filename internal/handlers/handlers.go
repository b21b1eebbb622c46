package handlers

import (
	"PokeGallery/internal/config"
	"PokeGallery/internal/middleware"
	"PokeGallery/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	projectService *service.ProjectService,
	categoryService *service.CategoryService,
	pokemonService *service.PokemonService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	projectHandler := NewProjectHandler(projectService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)
	pokemonHandler := NewPokemonHandler(pokemonService, logger, config)

	// Auth routes
	r.Post("/api/auth/register", userHandler.Register)
	r.Post("/api/auth/login", userHandler.Login)
	r.Get("/api/auth/me", userHandler.Me)
	r.Patch("/api/auth/profile", userHandler.UpdateProfile)
	r.Post("/api/auth/change-password", userHandler.ChangePassword)

	// Project routes
	r.Get("/api/projects", projectHandler.List)
	r.Post("/api/projects", projectHandler.Create)
	r.Get("/api/projects/{id}", projectHandler.Get)
	r.Patch("/api/projects/{id}", projectHandler.Update)
	r.Delete("/api/projects/{id}", projectHandler.Delete)

	// Category routes
	r.Get("/api/projects/{projectId}/categories", categoryHandler.List)
	r.Post("/api/projects/{projectId}/categories", categoryHandler.Create)
	r.Patch("/api/categories/{id}", categoryHandler.Update)
	r.Delete("/api/categories/{id}", categoryHandler.Delete)

	// Pokemon routes
	r.Get("/api/projects/{projectId}/pokemon", pokemonHandler.List)
	r.Post("/api/projects/{projectId}/pokemon", pokemonHandler.Create)
	r.Get("/api/pokemon/{id}", pokemonHandler.Get)
	r.Patch("/api/pokemon/{id}", pokemonHandler.Update)
	r.Delete("/api/pokemon/{id}", pokemonHandler.Delete)

	// File routes
	r.Post("/api/pokemon/{id}/main-image", pokemonHandler.UploadMainImage)
	r.Post("/api/pokemon/{id}/files", pokemonHandler.UploadFiles)
	r.Patch("/api/pokemon/{pokemonId}/files/{fileId}", pokemonHandler.UpdateFile)
	r.Delete("/api/pokemon/{pokemonId}/files/{fileId}", pokemonHandler.DeleteFile)

	return &Handler{Router: r}
}
