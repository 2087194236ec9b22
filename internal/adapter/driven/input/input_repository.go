package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/repository"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/logger"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
)

// consumptionRow is one row of the consumption table as found in the file.
type consumptionRow struct {
	MPAN             string   `csv:"mpan" json:"mpan" validate:"required,max=64"`
	Consumption      float64  `csv:"consumption_kwh" json:"consumption_kwh" validate:"gte=0"`
	FromGeneration   *float64 `csv:"from_generation_kwh,omitempty" json:"from_generation_kwh" validate:"omitempty,gte=0"`
	FromGrid         *float64 `csv:"from_grid_kwh,omitempty" json:"from_grid_kwh" validate:"omitempty,gte=0"`
	TariffGeneration float64  `csv:"tariff_generation" json:"tariff_generation" validate:"gte=0"`
	TariffGrid       float64  `csv:"tariff_grid" json:"tariff_grid" validate:"gte=0"`
	Priority         int      `csv:"priority" json:"priority"`
}

// generationRow is one row of the export/generation table.
type generationRow struct {
	ID         string  `csv:"id" json:"id" validate:"required,max=64"`
	Generation float64 `csv:"generation_kwh" json:"generation_kwh" validate:"gte=0"`
}

var headerNormalizer sync.Once

// InputRepositoryImpl implementa o InputRepository.
type InputRepositoryImpl struct {
	validate *validator.Validate
	log      *logger.Logger
}

// NewInputRepository cria uma nova implementação do InputRepository.
func NewInputRepository(log *logger.Logger) repository.InputRepository {
	headerNormalizer.Do(func() {
		// Cabeçalhos como "MPAN" ou " Consumption_kWh " também são aceitos
		gocsv.SetHeaderNormalizer(func(h string) string {
			return strings.ToLower(strings.TrimSpace(h))
		})
	})

	validate := validator.New()
	// Mensagens de erro usam o nome da coluna, não o nome do campo Go
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("csv"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &InputRepositoryImpl{validate: validate, log: log}
}

// LoadConsumption lê a tabela de consumo (CSV ou JSON).
func (r *InputRepositoryImpl) LoadConsumption(filePath string) ([]entity.ConsumptionRecord, error) {
	var rows []*consumptionRow
	if err := decodeTable(filePath, &rows); err != nil {
		return nil, fmt.Errorf("error reading consumption file: %w", err)
	}

	if err := validateRows(r, rows); err != nil {
		return nil, fmt.Errorf("error validating consumption file %s: %w", filePath, err)
	}

	records := make([]entity.ConsumptionRecord, len(rows))
	for i, row := range rows {
		records[i] = entity.ConsumptionRecord{
			MPAN:             strings.TrimSpace(row.MPAN),
			Consumption:      row.Consumption,
			FromGeneration:   row.FromGeneration,
			FromGrid:         row.FromGrid,
			TariffGeneration: row.TariffGeneration,
			TariffGrid:       row.TariffGrid,
			Priority:         row.Priority,
		}
	}

	r.log.Debugw("loaded consumption table", "file", filePath, "records", len(records))
	return records, nil
}

// LoadGeneration lê a tabela de geração/exportação (CSV ou JSON).
func (r *InputRepositoryImpl) LoadGeneration(filePath string) ([]entity.GenerationRecord, error) {
	var rows []*generationRow
	if err := decodeTable(filePath, &rows); err != nil {
		return nil, fmt.Errorf("error reading generation file: %w", err)
	}

	if err := validateRows(r, rows); err != nil {
		return nil, fmt.Errorf("error validating generation file %s: %w", filePath, err)
	}

	records := make([]entity.GenerationRecord, len(rows))
	for i, row := range rows {
		records[i] = entity.GenerationRecord{
			ID:         strings.TrimSpace(row.ID),
			Generation: row.Generation,
		}
	}

	r.log.Debugw("loaded generation table", "file", filePath, "records", len(records))
	return records, nil
}

// decodeTable decodifica um arquivo CSV ou JSON num slice de ponteiros para linhas.
func decodeTable(filePath string, out interface{}) error {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return err
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".csv":
		if err := gocsv.UnmarshalFile(file, out); err != nil {
			if errors.Is(err, gocsv.ErrEmptyCSVFile) {
				return nil
			}
			return fmt.Errorf("error parsing CSV file: %w", err)
		}
	case ".json":
		if err := json.NewDecoder(file).Decode(out); err != nil {
			return fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported input file format: %s", ext)
	}
	return nil
}

// validateRows valida cada linha e junta todas as falhas num único erro.
func validateRows[T any](r *InputRepositoryImpl, rows []*T) error {
	var errs []error
	for i, row := range rows {
		if row == nil {
			errs = append(errs, fmt.Errorf("%w: record %d is empty", types.ErrInvalidRecord, i+1))
			continue
		}
		if err := r.validate.Struct(row); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%w: record %d: %s", types.ErrInvalidRecord, i+1, describe(fe)))
			}
		}
	}
	return errors.Join(errs...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be >= %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
