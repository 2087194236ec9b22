package usecase

import (
	"fmt"

	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
)

// ApplyConfig carrega o arquivo de configuração, se houver, e preenche os argumentos
// que não foram passados explicitamente na linha de comando.
func (uc *DashboardUseCase) ApplyConfig(args *types.CLIArgs) error {
	if args.ConfigFile == "" {
		return nil
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	MergeConfig(args, cfg)

	if err := uc.log.SetLevel(args.LogLevel); err != nil {
		return err
	}
	uc.log.Debugw("configuration merged", "file", args.ConfigFile, "explicit_flags", len(args.Changed))
	uc.console.LogInfo("Using configuration from %s", args.ConfigFile)
	return nil
}

// MergeConfig copia os valores do arquivo para os argumentos. Flags explícitas vencem.
func MergeConfig(args *types.CLIArgs, cfg *types.Config) {
	str := func(flag string, dst *string, v string) {
		if v != "" && !args.IsSet(flag) {
			*dst = v
		}
	}
	num := func(flag string, dst *float64, v *float64) {
		if v != nil && !args.IsSet(flag) {
			*dst = *v
		}
	}

	str("consumption", &args.ConsumptionFile, cfg.ConsumptionFile)
	str("generation", &args.GenerationFile, cfg.GenerationFile)
	str("mode", &args.Mode, cfg.Mode)
	str("order", &args.Order, cfg.Order)
	str("report-name", &args.ReportName, cfg.ReportName)
	str("dir", &args.Dir, cfg.Dir)
	str("s3-bucket", &args.S3Bucket, cfg.S3Bucket)
	str("s3-prefix", &args.S3Prefix, cfg.S3Prefix)
	str("aws-profile", &args.AWSProfile, cfg.AWSProfile)
	str("log-level", &args.LogLevel, cfg.LogLevel)

	num("private-rate", &args.PrivateRate, cfg.PrivateRate)
	num("market-rate", &args.MarketRate, cfg.MarketRate)
	num("bonus-rate", &args.BonusRate, cfg.BonusRate)
	num("bonus-threshold", &args.BonusThreshold, cfg.BonusThreshold)
	num("standing-charge", &args.StandingChargeDaily, cfg.StandingChargeDaily)

	if len(cfg.ReportType) > 0 && !args.IsSet("report-type") {
		args.ReportType = cfg.ReportType
	}
	if cfg.Chart != nil && !args.IsSet("chart") {
		args.Chart = *cfg.Chart
	}
}

// InitConfig grava um arquivo de configuração com os valores atuais dos argumentos.
func (uc *DashboardUseCase) InitConfig(args *types.CLIArgs, path string) (string, error) {
	cfg := &types.Config{
		ConsumptionFile:     args.ConsumptionFile,
		GenerationFile:      args.GenerationFile,
		Mode:                args.Mode,
		Order:               args.Order,
		PrivateRate:         &args.PrivateRate,
		MarketRate:          &args.MarketRate,
		BonusRate:           &args.BonusRate,
		BonusThreshold:      &args.BonusThreshold,
		StandingChargeDaily: &args.StandingChargeDaily,
		ReportName:          args.ReportName,
		ReportType:          args.ReportType,
		Chart:               &args.Chart,
		S3Bucket:            args.S3Bucket,
		S3Prefix:            args.S3Prefix,
		AWSProfile:          args.AWSProfile,
		LogLevel:            args.LogLevel,
	}

	written, err := uc.configRepo.WriteConfigFile(cfg, path)
	if err != nil {
		return "", fmt.Errorf("error writing configuration file: %w", err)
	}
	uc.console.LogSuccess("Configuration written to %s", written)
	return written, nil
}
