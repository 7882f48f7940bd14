package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/dig"

	"microtweet/internal/config"
	"microtweet/internal/database"
	handlers "microtweet/internal/handler"
	"microtweet/internal/middleware"
	"microtweet/internal/repository"
	"microtweet/internal/service"
	"microtweet/internal/storage"
)

// App is the assembled HTTP application.
type App struct {
	DB      *database.DB
	Handler http.Handler
}

func ProvideStorage(ctx context.Context) func(cfg *config.Config) (storage.Storage, error) {
	return func(cfg *config.Config) (storage.Storage, error) {
		client, err := storage.NewMinIOClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

func ProvideRepository(db *database.DB) *repository.Repository {
	return repository.NewRepository(db.DB)
}

// ProvideHTTPHandler mounts the routes and wraps them in the middleware chain.
func ProvideHTTPHandler(h *handlers.Handlers) http.Handler {
	router := handlers.NewRouter(h)
	router.Use(middleware.MetricsMiddleware)

	return middleware.Chain(
		router,
		middleware.RecoverMiddleware,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)
}

func BuildContainer(ctx context.Context, cfg *config.Config) (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name        string
		constructor interface{}
	}{
		{"config", func() *config.Config { return cfg }},
		{"database", database.ConnectDB},
		{"storage", ProvideStorage(ctx)},
		{"repository", ProvideRepository},
		{"service", service.NewService},
		{"handlers", handlers.NewHandlers},
		{"http handler", ProvideHTTPHandler},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	return container, nil
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	container, err := BuildContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{}
	err = container.Invoke(func(db *database.DB, handler http.Handler) {
		app.DB = db
		app.Handler = handler
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
