package config

import "github.com/hance08/txengine/internal/constants"

type Config struct {
	Engine     EngineConfig  `mapstructure:"engine"`
	Output     OutputConfig  `mapstructure:"output"`
	Log        LogConfig     `mapstructure:"log"`
	Metrics    MetricsConfig `mapstructure:"metrics"`
	ConfigPath string        `mapstructure:"-"`
}

type EngineConfig struct {
	BatchSize int `mapstructure:"batch_size"`
}

type OutputConfig struct {
	Format  string `mapstructure:"format"`
	Summary bool   `mapstructure:"summary"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MetricsConfig struct {
	File string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Engine:  EngineConfig{BatchSize: constants.DefaultBatchSize},
		Output:  OutputConfig{Format: constants.FormatCSV},
		Log:     LogConfig{Level: constants.DefaultLogLevel},
		Metrics: MetricsConfig{File: ""},
	}
}
