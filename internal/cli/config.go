// Package cli holds the pieces of the fsmx command that are worth testing
// outside of cobra: environment configuration and the interactive shell.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the command configuration read from the environment.
type Config struct {
	LogLevel   slog.Level `env:"FSMX_LOG_LEVEL" envDefault:"info"`
	Definition string     `env:"FSMX_DEFINITION" envDefault:"fsm.yaml"`
	Prompt     string     `env:"FSMX_PROMPT" envDefault:"fsmx> "`
}

// LoadConfig loads the given .env files (".env" when none are given) into the
// process environment and parses Config from it. Variables already set in the
// environment win over .env entries. Missing .env files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
