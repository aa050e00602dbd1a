package config

import (
	"errors"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Address       string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	GinMode       string `yaml:"gin_mode" env:"GIN_MODE" env-default:"debug"`
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	DBDriver      string `yaml:"db_driver" env:"DB_DRIVER" env-default:"sqlite"`
	DBPath        string `yaml:"db_path" env:"DB_PATH" env-default:"todo_database.db"`
	DBHost        string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort        string `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBUser        string `yaml:"db_user" env:"DB_USER" env-default:"todouser"`
	DBPassword    string `yaml:"db_password" env:"DB_PASSWORD" env-default:"todopassword"`
	DBName        string `yaml:"db_name" env:"DB_NAME" env-default:"todo_list"`
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-default:"default-secret-key-change-me"`
}

// Load reads the configuration file at configPath, falling back to the
// environment when the path is empty or the file does not exist.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return nil, err
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// MustLoad is Load for process startup; any error is fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}
