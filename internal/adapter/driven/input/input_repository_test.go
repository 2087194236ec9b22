package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/logger"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConsumptionCSV(t *testing.T) {
	path := writeFile(t, "consumption.csv", `MPAN,Consumption_kWh,from_generation_kwh,from_grid_kwh,tariff_generation,tariff_grid,priority
1200000000001,66841,,,15,21,
1200000000002,45000,30000,15000,15,21,2
`)
	repo := NewInputRepository(logger.NewNop())

	records, err := repo.LoadConsumption(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1200000000001", records[0].MPAN)
	assert.Equal(t, 66841.0, records[0].Consumption)
	assert.Nil(t, records[0].FromGeneration)
	assert.Nil(t, records[0].FromGrid)
	assert.False(t, records[0].HasSplit())
	assert.Equal(t, 15.0, records[0].TariffGeneration)
	assert.Equal(t, 21.0, records[0].TariffGrid)

	require.NotNil(t, records[1].FromGeneration)
	assert.Equal(t, 30000.0, *records[1].FromGeneration)
	require.NotNil(t, records[1].FromGrid)
	assert.Equal(t, 15000.0, *records[1].FromGrid)
	assert.Equal(t, 2, records[1].Priority)
}

func TestLoadConsumptionJSON(t *testing.T) {
	path := writeFile(t, "consumption.json", `[
  {"mpan": "a", "consumption_kwh": 100, "from_generation_kwh": 60, "tariff_generation": 15, "tariff_grid": 21},
  {"mpan": "b", "consumption_kwh": 0}
]`)
	repo := NewInputRepository(logger.NewNop())

	records, err := repo.LoadConsumption(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].FromGeneration)
	assert.Equal(t, 60.0, *records[0].FromGeneration)
	assert.Nil(t, records[0].FromGrid)
	assert.Equal(t, "b", records[1].MPAN)
}

func TestLoadConsumptionValidation(t *testing.T) {
	path := writeFile(t, "consumption.csv", `mpan,consumption_kwh,tariff_generation,tariff_grid
ok,10,15,21
,20,15,21
bad,-5,15,-1
`)
	repo := NewInputRepository(logger.NewNop())

	_, err := repo.LoadConsumption(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidRecord)
	assert.ErrorContains(t, err, "record 2: mpan is required")
	assert.ErrorContains(t, err, "record 3: consumption_kwh must be >= 0, got -5")
	assert.ErrorContains(t, err, "record 3: tariff_grid must be >= 0")
	assert.NotContains(t, err.Error(), "record 1")
}

func TestLoadGeneration(t *testing.T) {
	path := writeFile(t, "generation.csv", `id,generation_kwh
solar-1,200000
wind-1,44000
`)
	repo := NewInputRepository(logger.NewNop())

	records, err := repo.LoadGeneration(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "wind-1", records[1].ID)
	assert.Equal(t, 44000.0, records[1].Generation)

	bad := writeFile(t, "generation.csv", "id,generation_kwh\nsolar-1,-1\n")
	_, err = repo.LoadGeneration(bad)
	assert.ErrorIs(t, err, types.ErrInvalidRecord)
}

func TestLoadTableErrors(t *testing.T) {
	repo := NewInputRepository(logger.NewNop())

	_, err := repo.LoadConsumption(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "error reading consumption file")

	_, err = repo.LoadConsumption(writeFile(t, "consumption.xlsx", "binary"))
	assert.ErrorContains(t, err, "unsupported input file format: .xlsx")

	_, err = repo.LoadGeneration(writeFile(t, "generation.json", "{not json"))
	assert.ErrorContains(t, err, "error parsing JSON file")

	records, err := repo.LoadConsumption(writeFile(t, "empty.csv", ""))
	require.NoError(t, err)
	assert.Empty(t, records)
}
