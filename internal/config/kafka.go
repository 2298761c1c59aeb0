package config

import "time"

type KafkaConfig struct {
	Enabled      bool          `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
	Brokers      []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	Topic        string        `yaml:"topic" env:"KAFKA_TOPIC" env-default:"inventory-events"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"KAFKA_WRITE_TIMEOUT" env-default:"10s"`
}
