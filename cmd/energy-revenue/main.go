package main

import (
	"fmt"
	"os"

	"github.com/diillson/energy-revenue-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/energy-revenue-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/energy-revenue-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/energy-revenue-dashboard-go/internal/adapter/driven/input"
	"github.com/diillson/energy-revenue-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/energy-revenue-dashboard-go/internal/application/usecase"
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/repository"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/logger"
	"github.com/diillson/energy-revenue-dashboard-go/pkg/console"
	"github.com/diillson/energy-revenue-dashboard-go/pkg/version"
)

func main() {
	// Log de diagnóstico; o nível final vem de --log-level
	log, err := logger.NewLogger(logger.DefaultLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)
	app.SetLogger(log)

	// Inicializa os repositórios
	inputRepo := input.NewInputRepository(log)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	storage := func(bucket, prefix, profile string) repository.StorageRepository {
		return aws.NewS3Repository(bucket, prefix, profile, log)
	}
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		inputRepo,
		exportRepo,
		configRepo,
		storage,
		consoleImpl,
		log,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
