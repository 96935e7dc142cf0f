package env_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	env "github.com/CorvidLabs/go-env"
	"github.com/CorvidLabs/go-env/decoder/dotenv"
	"github.com/CorvidLabs/go-env/fetcher/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher struct {
	data []byte
	err  error
}

func (f *staticFetcher) Fetch() ([]byte, error) {
	return f.data, f.err
}

type staticDecoder struct {
	values map[string]string
	err    error
}

func (d *staticDecoder) Decode([]byte) (map[string]string, error) {
	return d.values, d.err
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	fetcher := &staticFetcher{data: []byte("HOST=db\nDSN=postgres://${HOST}:5432")}

	environment, err := env.Load(fetcher, dotenv.NewDecoder(), env.WithFallback(env.Environment{}))

	require.NoError(t, err)
	assert.Equal(t, "db", environment.Get("HOST"))
	assert.Equal(t, "postgres://db:5432", environment.Get("DSN"))
}

func TestLoad_FallbackResolution(t *testing.T) {
	t.Parallel()

	fetcher := &staticFetcher{data: []byte("GREETING=hello ${WHO}\nSHADOWED=${NAME}\nNAME=local")}
	fallback := env.New(map[string]string{"WHO": "world", "NAME": "ambient"})

	environment, err := env.Load(fetcher, dotenv.NewDecoder(), env.WithFallback(fallback))

	require.NoError(t, err)
	assert.Equal(t, "hello world", environment.Get("GREETING"))
	// The loaded mapping wins over the fallback.
	assert.Equal(t, "local", environment.Get("SHADOWED"))
	// Fallback entries are lookup sources, not output entries.
	assert.False(t, environment.Has("WHO"))
}

func TestLoad_WithoutInterpolation(t *testing.T) {
	t.Parallel()

	fetcher := &staticFetcher{data: []byte("A=1\nB=${A}")}

	environment, err := env.Load(fetcher, dotenv.NewDecoder(), env.WithoutInterpolation())

	require.NoError(t, err)
	assert.Equal(t, "${A}", environment.Get("B"))
}

func TestLoad_ProcessFallbackByDefault(t *testing.T) {
	t.Setenv("GO_ENV_TEST_LOAD_DEFAULT", "from-process")

	fetcher := &staticFetcher{data: []byte("A=${GO_ENV_TEST_LOAD_DEFAULT}")}

	environment, err := env.Load(fetcher, dotenv.NewDecoder())

	require.NoError(t, err)
	assert.Equal(t, "from-process", environment.Get("A"))
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")

	t.Run("fetch error", func(t *testing.T) {
		t.Parallel()

		_, err := env.Load(&staticFetcher{err: fetchErr}, dotenv.NewDecoder())

		require.Error(t, err)
		assert.ErrorIs(t, err, fetchErr)
	})

	t.Run("decode error surfaces the parse error", func(t *testing.T) {
		t.Parallel()

		fetcher := &staticFetcher{data: []byte("OK=1\n2BAD=value")}

		_, err := env.Load(fetcher, dotenv.NewDecoder())

		require.Error(t, err)

		var parseErr dotenv.ParseError

		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, dotenv.ParseError{Line: 2, Key: "2BAD"}, parseErr)
	})
}

func TestFile_Success(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "export HOST=localhost\nPORT=8080 # dev default\nURL=\"http://${HOST}:${PORT}\"\n")

	environment, err := env.File(path, env.WithFallback(env.Environment{}))

	require.NoError(t, err)
	assert.Equal(t, "localhost", environment.Get("HOST"))
	assert.Equal(t, "8080", environment.Get("PORT"))
	assert.Equal(t, "http://localhost:8080", environment.Get("URL"))

	port, found := environment.Int("PORT")
	require.True(t, found)
	assert.Equal(t, 8080, port)
}

func TestFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := env.File(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.ErrorIs(t, err, file.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.env")
}

func TestFileOrProcess_UsesFileWhenPresent(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "SOURCE=file\n")

	environment := env.FileOrProcess(path, env.WithFallback(env.Environment{}))

	assert.Equal(t, "file", environment.Get("SOURCE"))
}

func TestFileOrProcess_DegradesToProcess(t *testing.T) {
	t.Setenv("GO_ENV_TEST_DEGRADE", "process")

	environment := env.FileOrProcess(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "process", environment.Get("GO_ENV_TEST_DEGRADE"))
}

func TestFileOrProcess_DoesNotMaskParseErrors(t *testing.T) {
	t.Setenv("GO_ENV_TEST_MASK", "process")

	// A malformed file is a load-path error, so the loader degrades.
	path := writeEnvFile(t, "!BROKEN=value\n")

	environment := env.FileOrProcess(path)

	assert.Equal(t, "process", environment.Get("GO_ENV_TEST_MASK"))
	assert.False(t, environment.Has("!BROKEN"))
}

func TestLoad_StaticDecoder(t *testing.T) {
	t.Parallel()

	decoder := &staticDecoder{values: map[string]string{"A": "${B}", "B": "2"}}

	environment, err := env.Load(&staticFetcher{}, decoder, env.WithFallback(env.Environment{}))

	require.NoError(t, err)
	assert.Equal(t, "2", environment.Get("A"))
}
