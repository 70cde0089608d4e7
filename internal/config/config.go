package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Words     Words  `yaml:"words"`
	Bench     Bench  `yaml:"bench"`
	DailySalt string `yaml:"daily-salt" env:"DAILY_SALT" env-default:"local_dev_salt"`
}

type Words struct {
	AnswersFile string `yaml:"answers-file" env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `yaml:"allowed-file" env:"WORDS_ALLOWED_FILE"`
}

type Bench struct {
	Games       int    `yaml:"games" env:"BENCH_GAMES" env-default:"10000"`
	Seed        uint64 `yaml:"seed" env:"BENCH_SEED" env-default:"0"`
	MaxAttempts int    `yaml:"max-attempts" env:"BENCH_MAX_ATTEMPTS" env-default:"64"`
	Workers     int    `yaml:"workers" env:"BENCH_WORKERS" env-default:"0"`
}

// Load reads .env (if present) into the environment, then fills the config
// from the YAML file at path, or from the environment alone when path is
// empty. Environment variables override file values.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	return config, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}
