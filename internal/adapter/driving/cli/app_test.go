package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/energy-revenue-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/energy-revenue-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/energy-revenue-dashboard-go/internal/adapter/driven/input"
	"github.com/diillson/energy-revenue-dashboard-go/internal/application/usecase"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/logger"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
	"github.com/diillson/energy-revenue-dashboard-go/pkg/console"
)

func newTestApp(args ...string) *CLIApp {
	log := logger.NewNop()
	app := NewCLIApp("0.0.0-dev")
	app.showBanner = false
	app.SetLogger(log)
	app.SetDashboardUseCase(usecase.NewDashboardUseCase(
		input.NewInputRepository(log),
		export.NewExportRepository(),
		config.NewConfigRepository(),
		nil,
		console.NewConsole(),
		log,
	))
	app.SetArgs(args)
	return app
}

func writeInputs(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "consumption.csv"), []byte(
		"mpan,consumption_kwh,tariff_generation,tariff_grid\n"+
			"1200000000001,66841,15,21\n"+
			"1200000000002,45000,15,21\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "generation.csv"), []byte(
		"id,generation_kwh\n"+
			"site-a,200000\n"+
			"site-b,44000\n"), 0o644))
}

func reportFiles(t *testing.T, dir, pattern string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	require.NoError(t, err)
	return matches
}

func TestDashboardWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "energy.toml"), []byte(`
consumption_file = "consumption.csv"
generation_file = "generation.csv"
private_rate = 10.0
market_rate = 5.0
report_name = "march"
report_type = ["csv", "json"]
chart = false
`), 0o644))

	out := filepath.Join(dir, "out")
	app := newTestApp("--config-file", filepath.Join(dir, "energy.toml"), "--dir", out, "--report-type", "json")
	require.NoError(t, app.Execute())

	// --report-type explícito vence o arquivo
	assert.Len(t, reportFiles(t, out, "march_*.json"), 1)
	assert.Empty(t, reportFiles(t, out, "march_*.csv"))
}

func TestDashboardRejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)

	app := newTestApp(
		"--consumption", filepath.Join(dir, "consumption.csv"),
		"--generation", filepath.Join(dir, "generation.csv"),
		"--mode", "fifo",
	)
	err := app.Execute()
	assert.ErrorIs(t, err, types.ErrUnknownMode)
}

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()
	app := newTestApp("split", "--sleeved-pct", "40", "--chart=false", "--report-name", "split", "--dir", dir)
	require.NoError(t, app.Execute())

	files := reportFiles(t, dir, "split_*.csv")
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sleeved,40000.000,10,4000.00")
	assert.Contains(t, string(data), "Grid,60000.000,20,12000.00")
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energy.yaml")
	app := newTestApp("init-config", path,
		"--report-type", "pdf",
		"--consumption", "/data/consumption.csv",
		"--private-rate", "12",
		"--mode", "manual",
	)
	require.NoError(t, app.Execute())

	cfg, err := config.NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "manual", cfg.Mode)
	assert.Equal(t, "/data/consumption.csv", cfg.ConsumptionFile)
	require.NotNil(t, cfg.PrivateRate)
	assert.Equal(t, 12.0, *cfg.PrivateRate)
	require.NotNil(t, cfg.BonusThreshold)
	assert.Equal(t, 85.0, *cfg.BonusThreshold)
	assert.Equal(t, []string{"pdf"}, cfg.ReportType)
	assert.True(t, strings.HasSuffix(path, ".yaml"))

	// não sobrescreve um arquivo existente
	app = newTestApp("init-config", path)
	assert.Error(t, app.Execute())
}
