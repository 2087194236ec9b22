package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
)

const tomlConfig = `
consumption_file = "data/consumption.csv"
generation_file = "/srv/data/generation.csv"
mode = "manual"
private_rate = 10.5
market_rate = 4.0
report_type = ["csv", "pdf"]
chart = false
`

const yamlConfig = `
consumption_file: consumption.csv
generation_file: generation.csv
mode: greedy
order: priority
private_rate: 10
bonus_rate: 1.5
standing_charge: 45
s3_bucket: reports-bucket
log_level: debug
`

const jsonConfig = `{
  "consumption_file": "in/consumption.csv",
  "market_rate": 5.25,
  "report_name": "march"
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository()

	t.Run("toml", func(t *testing.T) {
		cfg, err := repo.LoadConfigFile(writeFile(t, dir, "dashboard.toml", tomlConfig))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "data/consumption.csv"), cfg.ConsumptionFile)
		assert.Equal(t, "/srv/data/generation.csv", cfg.GenerationFile)
		assert.Equal(t, "manual", cfg.Mode)
		require.NotNil(t, cfg.PrivateRate)
		assert.Equal(t, 10.5, *cfg.PrivateRate)
		require.NotNil(t, cfg.MarketRate)
		assert.Equal(t, 4.0, *cfg.MarketRate)
		assert.Nil(t, cfg.BonusRate)
		assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
		require.NotNil(t, cfg.Chart)
		assert.False(t, *cfg.Chart)
	})

	t.Run("yaml", func(t *testing.T) {
		cfg, err := repo.LoadConfigFile(writeFile(t, dir, "dashboard.yml", yamlConfig))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "consumption.csv"), cfg.ConsumptionFile)
		assert.Equal(t, "priority", cfg.Order)
		require.NotNil(t, cfg.PrivateRate)
		assert.Equal(t, 10.0, *cfg.PrivateRate)
		require.NotNil(t, cfg.StandingChargeDaily)
		assert.Equal(t, 45.0, *cfg.StandingChargeDaily)
		assert.Equal(t, "reports-bucket", cfg.S3Bucket)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("json", func(t *testing.T) {
		cfg, err := repo.LoadConfigFile(writeFile(t, dir, "dashboard.json", jsonConfig))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "in/consumption.csv"), cfg.ConsumptionFile)
		assert.Empty(t, cfg.GenerationFile)
		require.NotNil(t, cfg.MarketRate)
		assert.Equal(t, 5.25, *cfg.MarketRate)
		assert.Equal(t, "march", cfg.ReportName)
	})
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "error accessing config file")

	_, err = repo.LoadConfigFile(dir)
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeFile(t, dir, "dashboard.ini", "mode=greedy"))
	assert.ErrorContains(t, err, "unsupported config file format: .ini")

	_, err = repo.LoadConfigFile(writeFile(t, dir, "broken.json", "{"))
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestWriteConfigFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository()

	rate := 12.5
	cfg := &types.Config{Mode: "greedy", PrivateRate: &rate, ReportType: []string{"csv"}}

	path, err := repo.WriteConfigFile(cfg, filepath.Join(dir, "dashboard.yaml"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	loaded, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "greedy", loaded.Mode)
	require.NotNil(t, loaded.PrivateRate)
	assert.Equal(t, 12.5, *loaded.PrivateRate)

	_, err = repo.WriteConfigFile(cfg, path)
	assert.ErrorContains(t, err, "already exists")

	_, err = repo.WriteConfigFile(cfg, filepath.Join(dir, "dashboard.xml"))
	assert.ErrorContains(t, err, "unsupported config file format")
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	rate, threshold, chart := 12.5, 90.0, false
	cfg := &types.Config{
		ConsumptionFile: "/data/consumption.csv",
		Mode:            "manual",
		Order:           "priority",
		PrivateRate:     &rate,
		BonusThreshold:  &threshold,
		ReportType:      []string{"csv", "pdf"},
		Chart:           &chart,
		S3Bucket:        "reports",
	}

	for _, ext := range []string{"toml", "yaml", "json"} {
		t.Run(ext, func(t *testing.T) {
			repo := NewConfigRepository()
			path, err := repo.WriteConfigFile(cfg, filepath.Join(t.TempDir(), "dashboard."+ext))
			require.NoError(t, err)

			loaded, err := repo.LoadConfigFile(path)
			require.NoError(t, err)
			assert.Equal(t, "/data/consumption.csv", loaded.ConsumptionFile)
			assert.Equal(t, "manual", loaded.Mode)
			assert.Equal(t, "priority", loaded.Order)
			require.NotNil(t, loaded.PrivateRate)
			assert.Equal(t, 12.5, *loaded.PrivateRate)
			require.NotNil(t, loaded.BonusThreshold)
			assert.Equal(t, 90.0, *loaded.BonusThreshold)
			assert.Nil(t, loaded.MarketRate)
			assert.Equal(t, []string{"csv", "pdf"}, loaded.ReportType)
			require.NotNil(t, loaded.Chart)
			assert.False(t, *loaded.Chart)
			assert.Equal(t, "reports", loaded.S3Bucket)
		})
	}
}
