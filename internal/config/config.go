package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultRunAddress  = "localhost:8090"
	DefaultAPIAddress  = "http://localhost:8000"
	DefaultTokenFile   = "vv_state.json"
	DefaultDatabaseURI = ""
	DefaultLogLevel    = "info"
	DefaultAPITimeout  = time.Duration(0)
)

type Config struct {
	RunAddress  string        `env:"RUN_ADDRESS"`
	APIAddress  string        `env:"API_ADDRESS"`
	TokenFile   string        `env:"TOKEN_FILE"`
	DatabaseURI string        `env:"DATABASE_URI"`
	LogLevel    string        `env:"LOG_LEVEL"`
	APITimeout  time.Duration `env:"API_TIMEOUT"`
}

// New reads flags first and lets the environment (and an optional .env file) override them.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", DefaultRunAddress, "local UI address")
	flag.StringVar(&cfg.APIAddress, "r", DefaultAPIAddress, "recharge API address")
	flag.StringVar(&cfg.TokenFile, "f", DefaultTokenFile, "client state file")
	flag.StringVar(&cfg.DatabaseURI, "d", DefaultDatabaseURI, "database URI for client state")
	flag.StringVar(&cfg.LogLevel, "l", DefaultLogLevel, "log level")
	flag.DurationVar(&cfg.APITimeout, "t", DefaultAPITimeout, "API request timeout, 0 disables it")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
