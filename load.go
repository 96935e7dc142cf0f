package env

import (
	"fmt"
	"log/slog"

	"github.com/CorvidLabs/go-env/decoder/dotenv"
	"github.com/CorvidLabs/go-env/fetcher/file"
	"github.com/CorvidLabs/go-env/interpolate"
)

// Fetcher defines an interface for reading raw configuration data.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// Decoder defines an interface for decoding raw data into a key/value
// mapping. See decoder/dotenv and decoder/yamlmap for implementations.
type Decoder interface {
	Decode(data []byte) (map[string]string, error)
}

// Load reads data from the fetcher, decodes it, resolves inter-variable
// references, and wraps the result in an Environment.
//
// By default references are resolved against the decoded mapping itself with
// a snapshot of the process environment as fallback; use WithFallback to
// substitute another fallback and WithoutInterpolation to skip resolution
// entirely. Errors come only from the fetch and decode steps — resolution
// never fails.
func Load(fetcher Fetcher, decoder Decoder, opts ...Option) (Environment, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return Environment{}, fmt.Errorf("reading data error: %w", err)
	}

	values, err := decoder.Decode(data)
	if err != nil {
		return Environment{}, fmt.Errorf("decoding error: %w", err)
	}

	if !options.NoInterpolation {
		fallback := options.Fallback
		if fallback == nil {
			processEnv := FromProcess()
			fallback = &processEnv
		}

		values = interpolate.Expand(values, fallback.values)
	}

	return New(values), nil
}

// File loads a dotenv file from path. It is shorthand for Load over a file
// fetcher and a dotenv decoder.
func File(path string, opts ...Option) (Environment, error) {
	fetcher, err := file.NewFetcher(path)()
	if err != nil {
		return Environment{}, err
	}

	return Load(fetcher, dotenv.NewDecoder(), opts...)
}

// FileOrProcess loads a dotenv file from path, degrading to a snapshot of the
// process environment when the file cannot be read or decoded. Only load-path
// errors trigger the degradation; resolver behavior is never masked.
func FileOrProcess(path string, opts ...Option) Environment {
	environment, err := File(path, opts...)
	if err != nil {
		slog.Debug("falling back to process environment", "path", path, "error", err)

		return FromProcess()
	}

	return environment
}
