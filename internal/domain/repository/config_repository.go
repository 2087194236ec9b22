package repository

import (
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for reading and scaffolding
// configuration files (TOML, YAML or JSON, chosen by extension).
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	WriteConfigFile(cfg *types.Config, filePath string) (string, error)
}
