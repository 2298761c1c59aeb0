package config

type LogConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format     string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	Output     string `yaml:"output" env:"LOG_OUTPUT" env-default:"stdout"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT"`
	Caller     bool   `yaml:"caller" env:"LOG_CALLER" env-default:"false"`
}
