package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/repository"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	// Caminhos relativos dos arquivos de entrada são resolvidos a partir do diretório do config
	baseDir := filepath.Dir(filePath)
	config.ConsumptionFile = resolvePath(baseDir, config.ConsumptionFile)
	config.GenerationFile = resolvePath(baseDir, config.GenerationFile)

	return &config, nil
}

// WriteConfigFile grava a configuração no formato indicado pela extensão.
// Um arquivo existente nunca é sobrescrito.
func (r *ConfigRepositoryImpl) WriteConfigFile(cfg *types.Config, filePath string) (string, error) {
	if _, err := os.Stat(filePath); err == nil {
		return "", fmt.Errorf("%s already exists", filePath)
	}

	var (
		data []byte
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".toml":
		data, err = toml.Marshal(*cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	default:
		return "", fmt.Errorf("unsupported config file format: %s", ext)
	}
	if err != nil {
		return "", fmt.Errorf("error encoding config file: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing config file: %w", err)
	}

	return filepath.Abs(filePath)
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
