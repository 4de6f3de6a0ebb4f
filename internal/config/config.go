package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Export ExportConfig `toml:"export"`
}

// ServerConfig HTTP server configuration.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig data directory configuration.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ExportConfig export file configuration.
type ExportConfig struct {
	// DownloadTTLMinutes how long generated download links stay valid.
	DownloadTTLMinutes int `toml:"download_ttl_minutes"`
}

// LoadConfigInfo configuration load metadata.
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20318,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Export: ExportConfig{
			DownloadTTLMinutes: 10,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir returns the directory holding the executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml from the executable's directory
// and reports which values were explicitly configured.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, run on defaults.
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	// Environment override for local runs and tests.
	if v := os.Getenv("ONCALL_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}

	return config, info, nil
}

// LoadConfig loads config.toml from the executable's directory.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir creates the data directory and its upload/export
// subdirectories next to the executable.
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
