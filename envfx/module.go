package envfx

import (
	"errors"
	"log/slog"
	"os"

	env "github.com/CorvidLabs/go-env"
	"github.com/CorvidLabs/go-env/logging"

	"go.uber.org/fx"
)

// ErrEmptyPath is returned when the env file path is empty.
var ErrEmptyPath = errors.New("env file path must not be empty")

// Module returns an Fx module that loads the dotenv file at path and provides
// the resulting env.Environment to the container, together with a
// *slog.Logger configured from that environment (LOG_LEVEL). Load options are
// forwarded to env.File; a load failure fails container construction.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(path string, opts ...env.Option) fx.Option {
	if path == "" {
		return fx.Error(ErrEmptyPath)
	}

	return fx.Module("env",
		fx.Provide(func() (env.Environment, error) {
			return env.File(path, opts...)
		}),
		fx.Provide(newLogger),
	)
}

// ModuleOrProcess is Module, but degrades to a snapshot of the process
// environment when the file cannot be loaded instead of failing container
// construction.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ModuleOrProcess(path string, opts ...env.Option) fx.Option {
	if path == "" {
		return fx.Error(ErrEmptyPath)
	}

	return fx.Module("env",
		fx.Provide(func() env.Environment {
			return env.FileOrProcess(path, opts...)
		}),
		fx.Provide(newLogger),
	)
}

func newLogger(environment env.Environment) *slog.Logger {
	return logging.NewLogger(logging.ConfigFromEnvironment(environment), os.Stderr)
}
