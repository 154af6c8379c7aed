package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/invorax/invorax-go/internal/application/session"
	"github.com/invorax/invorax-go/internal/application/usecase"
	"github.com/invorax/invorax-go/internal/domain"
	"github.com/invorax/invorax-go/internal/infrastructure/rest"
	"github.com/invorax/invorax-go/internal/infrastructure/store"
	"github.com/invorax/invorax-go/internal/interfaces/cli"
	"github.com/invorax/invorax-go/pkg/config"
	"github.com/invorax/invorax-go/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	level := cfg.App.LogLevel
	if level == "" {
		level = "warn"
		if cfg.App.Env == "development" {
			level = "debug"
		}
	}
	log := logger.New(cfg.App.Env, level)

	apiClient := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), log)
	sessionStore := store.NewFileStore(afero.NewOsFs(), cfg.Session.File)
	manager := session.NewManager(rest.NewAuthAPI(apiClient), apiClient, sessionStore, log)

	categoryRepo := rest.NewCategoryRepository(apiClient)
	productRepo := rest.NewProductRepository(apiClient)
	batchRepo := rest.NewBatchRepository(apiClient)
	movementRepo := rest.NewMovementRepository(apiClient)

	app := &cli.CLI{
		Session:    manager,
		Categories: usecase.NewCategoryUseCase(categoryRepo),
		Products:   usecase.NewProductUseCase(productRepo),
		Batches:    usecase.NewBatchUseCase(batchRepo),
		Movements:  usecase.NewMovementUseCase(movementRepo),
		Stock:      usecase.NewStockUseCase(batchRepo, productRepo),
		Out:        os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		if errors.Is(err, domain.ErrValidation) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
