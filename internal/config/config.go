package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds everything the agent needs at startup. Environment
// variables override the YAML file; in particular MOTOTRACK_API_URL takes
// precedence over the configured backend base URL.
type Config struct {
	Env string `yaml:"env" env:"MOTOTRACK_ENV" env-default:"local"`

	Log struct {
		Level  string `yaml:"level" env:"MOTOTRACK_LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"MOTOTRACK_LOG_FORMAT" env-default:"console"`
	} `yaml:"log"`

	API struct {
		BaseURL string `yaml:"base_url" env:"MOTOTRACK_API_URL" env-default:"http://localhost:5194"`
		Timeout int    `yaml:"timeout" env-default:"15"` // seconds
	} `yaml:"api"`

	StoragePath string `yaml:"storage_path" env:"MOTOTRACK_STORAGE_PATH" env-default:"mototrack.db"`

	Health struct {
		PollInterval int `yaml:"poll_interval" env-default:"30"` // seconds
	} `yaml:"health"`

	Reminder struct {
		LeadMinutes         int    `yaml:"lead_minutes" env-default:"30"`
		FirebaseCredentials string `yaml:"firebase_credentials" env:"MOTOTRACK_FIREBASE_CREDENTIALS"`
		DeviceToken         string `yaml:"device_token" env:"MOTOTRACK_DEVICE_TOKEN"`
	} `yaml:"reminder"`
}

// LoadConfig reads the YAML file at path, then applies environment
// overrides. A missing file is not fatal; the environment alone is enough.
func LoadConfig(path string) (*Config, error) {
	// Local .env files are a convenience, absence is fine.
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
			return &cfg, nil
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}
