package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/diillson/energy-revenue-dashboard-go/internal/application/usecase"
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/logger"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
	"github.com/diillson/energy-revenue-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	log              *logger.Logger
	version          string
	showBanner       bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		showBanner: true,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "energy-revenue",
		Short:         "Energy Revenue Dashboard CLI",
		Long:          "Allocates a shared generation pool across metering points and reports costs and export revenue.",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Energy Revenue Dashboard version: %s\n" .Version}}`)

	// Flags de saída, compartilhadas com os subcomandos
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("chart", true, "Display the revenue bar chart")
	rootCmd.PersistentFlags().String("log-level", logger.DefaultLevel, "Diagnostic log level written to stderr: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Do not print the welcome banner")

	// Flags do dashboard
	rootCmd.Flags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	addDashboardFlags(rootCmd.Flags())

	rootCmd.AddCommand(app.newSplitCommand(), app.newInitConfigCommand())

	app.rootCmd = rootCmd
	return app
}

// addDashboardFlags registra as flags que viram chaves do arquivo de configuração.
// São usadas pelo comando raiz e pelo init-config.
func addDashboardFlags(flags *pflag.FlagSet) {
	flags.StringP("consumption", "i", "", "Consumption table (CSV or JSON) with one row per MPAN")
	flags.StringP("generation", "g", "", "Generation table (CSV or JSON) feeding the shared pool")
	flags.StringP("mode", "m", string(entity.ModeGreedy), "Allocation mode: greedy or manual")
	flags.String("order", string(entity.OrderInput), "Record processing order: input or priority")
	flags.Float64("private-rate", 0, "Private export rate for transferred generation (p/kWh)")
	flags.Float64("market-rate", 0, "Market export rate for spilled generation (p/kWh)")
	flags.Float64("bonus-rate", 0, "Match bonus rate paid on generation of well-matched records (p/kWh)")
	flags.Float64("bonus-threshold", entity.DefaultBonusThreshold, "Match percentage from which the bonus applies")
	flags.Float64("standing-charge", 0, "Daily standing charge deducted from export revenue (p/day)")
	flags.String("s3-bucket", "", "Upload the exported reports to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded reports")
	flags.String("aws-profile", "", "AWS profile used for the S3 upload (default: standard credential chain)")
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// SetLogger sets the diagnostic logger whose level follows --log-level.
func (app *CLIApp) SetLogger(log *logger.Logger) {
	app.log = log
}

// SetArgs substitui os argumentos da linha de comando. Usado nos testes.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	consumption, _ := flags.GetString("consumption")
	generation, _ := flags.GetString("generation")
	mode, _ := flags.GetString("mode")
	order, _ := flags.GetString("order")
	privateRate, _ := flags.GetFloat64("private-rate")
	marketRate, _ := flags.GetFloat64("market-rate")
	bonusRate, _ := flags.GetFloat64("bonus-rate")
	bonusThreshold, _ := flags.GetFloat64("bonus-threshold")
	standingCharge, _ := flags.GetFloat64("standing-charge")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	awsProfile, _ := flags.GetString("aws-profile")
	logLevel, _ := flags.GetString("log-level")

	reportName, reportType, dir, chart, err := reportFlags(cmd)
	if err != nil {
		return nil, err
	}

	changed := map[string]bool{}
	flags.Visit(func(f *pflag.Flag) {
		changed[f.Name] = true
	})

	return &types.CLIArgs{
		ConfigFile:          configFile,
		ConsumptionFile:     consumption,
		GenerationFile:      generation,
		Mode:                mode,
		Order:               order,
		PrivateRate:         privateRate,
		MarketRate:          marketRate,
		BonusRate:           bonusRate,
		BonusThreshold:      bonusThreshold,
		StandingChargeDaily: standingCharge,
		ReportName:          reportName,
		ReportType:          reportType,
		Dir:                 dir,
		Chart:               chart,
		S3Bucket:            s3Bucket,
		S3Prefix:            s3Prefix,
		AWSProfile:          awsProfile,
		LogLevel:            logLevel,
		Changed:             changed,
	}, nil
}

// reportFlags lê as flags de saída comuns a todos os comandos.
func reportFlags(cmd *cobra.Command) (string, []string, string, bool, error) {
	flags := cmd.Flags()
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	chart, _ := flags.GetBool("chart")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", nil, "", false, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return "", nil, "", false, err
		}
		dir = absDir
	}

	return reportName, reportType, dir, chart, nil
}

// prepare exibe o banner e ajusta o nível do log de diagnóstico.
func (app *CLIApp) prepare(cmd *cobra.Command) error {
	noBanner, _ := cmd.Flags().GetBool("no-banner")
	if app.showBanner && !noBanner {
		displayWelcomeBanner(app.version)
		go version.CheckLatestVersion(app.version)
	}

	if app.log != nil {
		level, _ := cmd.Flags().GetString("log-level")
		if err := app.log.SetLevel(level); err != nil {
			return err
		}
	}
	return nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	if err := app.prepare(cmd); err != nil {
		return err
	}

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	// Mescla o arquivo de configuração; flags explícitas vencem
	if err := app.dashboardUseCase.ApplyConfig(cliArgs); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.dashboardUseCase.RunDashboard(ctx, cliArgs)
}

// newSplitCommand cria o subcomando da divisão rápida de receita.
func (app *CLIApp) newSplitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Quick revenue split of a single volume between sleeved, grid and export",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			flags := cmd.Flags()
			totalVolume, _ := flags.GetFloat64("total-volume")
			sleevedPct, _ := flags.GetFloat64("sleeved-pct")
			exportVol, _ := flags.GetFloat64("export-volume")
			privateRate, _ := flags.GetFloat64("private-rate")
			gridRate, _ := flags.GetFloat64("grid-rate")
			spillRate, _ := flags.GetFloat64("spill-rate")

			reportName, reportType, dir, chart, err := reportFlags(cmd)
			if err != nil {
				return err
			}

			_, err = app.dashboardUseCase.RunSplit(cmd.Context(), &types.SplitArgs{
				TotalVolume: totalVolume,
				SleevedPct:  sleevedPct,
				ExportVol:   exportVol,
				PrivateRate: privateRate,
				GridRate:    gridRate,
				SpillRate:   spillRate,
				ReportName:  reportName,
				ReportType:  reportType,
				Dir:         dir,
				Chart:       chart,
			})
			return err
		},
	}

	cmd.Flags().Float64("total-volume", 100000, "Total volume to split (kWh)")
	cmd.Flags().Float64("sleeved-pct", 50, "Share of the volume supplied by sleeved generation (%)")
	cmd.Flags().Float64("export-volume", 0, "Volume exported to the market (kWh)")
	cmd.Flags().Float64("private-rate", 10, "Private (sleeved) rate (p/kWh)")
	cmd.Flags().Float64("grid-rate", 20, "Grid rate (p/kWh)")
	cmd.Flags().Float64("spill-rate", 8.5, "Spill export rate (p/kWh)")

	return cmd
}

// newInitConfigCommand cria o subcomando que grava um arquivo de configuração inicial.
func (app *CLIApp) newInitConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write a configuration file (TOML, YAML or JSON by extension) from the current flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.prepare(cmd); err != nil {
				return err
			}

			cliArgs, err := app.parseArgs(cmd)
			if err != nil {
				return err
			}

			_, err = app.dashboardUseCase.InitConfig(cliArgs, args[0])
			return err
		},
	}

	addDashboardFlags(cmd.Flags())
	return cmd
}
