// Package envfx integrates the env package with Uber's Fx dependency
// injection framework.
//
// Module loads a dotenv file once at container construction and provides the
// resulting env.Environment, along with a *slog.Logger whose level follows
// the environment's LOG_LEVEL entry:
//
//	app := fx.New(
//	    envfx.Module(".env"),
//	    fx.Invoke(func(environment env.Environment, logger *slog.Logger) {
//	        logger.Info("configured", "keys", environment.Len())
//	    }),
//	)
//
// ModuleOrProcess behaves the same but falls back to a process environment
// snapshot when the file cannot be loaded, which suits development setups
// where the dotenv file is optional.
package envfx
