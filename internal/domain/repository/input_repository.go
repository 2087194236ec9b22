package repository

import (
	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/entity"
)

// InputRepository defines the interface for loading the input tables.
// Records are validated before they are returned.
type InputRepository interface {
	LoadConsumption(filePath string) ([]entity.ConsumptionRecord, error)
	LoadGeneration(filePath string) ([]entity.GenerationRecord, error)
}
