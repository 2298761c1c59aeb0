package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Log      LogConfig      `yaml:"log"`
}

type AppConfig struct {
	Name            string        `yaml:"name" env:"APP_NAME" env-default:"InventoryApp"`
	Version         string        `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
	Environment     string        `yaml:"environment" env:"APP_ENV" env-default:"development"`
	Port            int           `yaml:"port" env:"APP_PORT" env-default:"3000"`
	Host            string        `yaml:"host" env:"APP_HOST" env-default:"0.0.0.0"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"APP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"APP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"APP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CORSOrigins     []string      `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// Load reads configuration from the environment. When CONFIG_PATH points at a
// YAML file, the file is read first and environment variables override it.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.App.Port)
	}
	switch c.Database.Driver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return fmt.Errorf("kafka is enabled but KAFKA_BROKERS or KAFKA_TOPIC is empty")
	}
	return nil
}

func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

func (a AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}
