package util

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	Port            int      `json:"port"`
	AllowedOrigins  []string `json:"allowedOrigins"`
	CacheTTLSeconds int      `json:"cacheTtlSeconds"`
	CacheMaxEntries int      `json:"cacheMaxEntries"`
	FactorDataCsv   string   `json:"factorDataCsv"`
}

func defaultConfig() *Config {
	return &Config{
		Port:            8000,
		AllowedOrigins:  []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		CacheTTLSeconds: 3600,
		CacheMaxEntries: 100,
	}
}

// LoadConfig reads config.json (or the file named by ANALYZER_CONFIG) and
// fills unset fields with defaults. A missing file is not an error - the
// defaults alone are a complete configuration.
func LoadConfig() (*Config, error) {
	configFile := "config.json"
	if f := os.Getenv("ANALYZER_CONFIG"); f != "" {
		configFile = f
	}

	config := defaultConfig()

	bytes, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	loaded := Config{}
	if err := json.Unmarshal(bytes, &loaded); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", configFile, err)
	}

	if loaded.Port != 0 {
		config.Port = loaded.Port
	}
	if len(loaded.AllowedOrigins) > 0 {
		config.AllowedOrigins = loaded.AllowedOrigins
	}
	if loaded.CacheTTLSeconds != 0 {
		config.CacheTTLSeconds = loaded.CacheTTLSeconds
	}
	if loaded.CacheMaxEntries != 0 {
		config.CacheMaxEntries = loaded.CacheMaxEntries
	}
	if loaded.FactorDataCsv != "" {
		config.FactorDataCsv = loaded.FactorDataCsv
	}

	return config, nil
}
