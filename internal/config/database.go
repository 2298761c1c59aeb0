package config

import (
	"time"
)

const (
	DriverMongo  = "mongodb"
	DriverMemory = "memory"
)

type DatabaseConfig struct {
	Driver         string        `yaml:"driver" env:"DATABASE_DRIVER" env-default:"mongodb"`
	URI            string        `yaml:"uri" env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	Database       string        `yaml:"database" env:"MONGODB_DATABASE" env-default:"inventory"`
	MaxPoolSize    int           `yaml:"max_pool_size" env:"MONGODB_MAX_POOL_SIZE" env-default:"100"`
	MinPoolSize    int           `yaml:"min_pool_size" env:"MONGODB_MIN_POOL_SIZE" env-default:"5"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT" env-default:"10s"`
	SocketTimeout  time.Duration `yaml:"socket_timeout" env:"MONGODB_SOCKET_TIMEOUT" env-default:"30s"`
	RunMigrations  bool          `yaml:"run_migrations" env:"MONGODB_RUN_MIGRATIONS" env-default:"true"`
}
