package main

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrymomot/sbomkit/pkg/config"
	"github.com/dmitrymomot/sbomkit/pkg/hashalg"
	"github.com/dmitrymomot/sbomkit/pkg/sbomconfig"
	"github.com/dmitrymomot/sbomkit/pkg/validator"
)

const (
	exitFailure       = 1
	exitInvalidConfig = 2
)

// cliEnv holds environment overrides for the global flag defaults.
type cliEnv struct {
	Verbosity string `env:"SBOMKIT_VERBOSITY" envDefault:"information"`
	LogFormat string `env:"SBOMKIT_LOG_FORMAT" envDefault:"text"`
}

func main() {
	var env cliEnv
	config.MustLoad(&env)

	if err := newRootCmd(env).ExecuteContext(context.Background()); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case validator.IsValidationError(err),
		errors.Is(err, sbomconfig.ErrValidation),
		errors.Is(err, hashalg.ErrUnsupportedAlgorithm):
		return exitInvalidConfig
	}
	return exitFailure
}
