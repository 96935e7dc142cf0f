package env_test

import (
	"testing"

	env "github.com/CorvidLabs/go-env"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFallback(t *testing.T) {
	t.Parallel()

	fallback := env.New(map[string]string{"A": "1"})

	var opts env.Options

	env.WithFallback(fallback)(&opts)

	require.NotNil(t, opts.Fallback)
	assert.Equal(t, "1", opts.Fallback.Get("A"))
	assert.False(t, opts.NoInterpolation)
}

func TestWithoutInterpolation(t *testing.T) {
	t.Parallel()

	var opts env.Options

	env.WithoutInterpolation()(&opts)

	assert.True(t, opts.NoInterpolation)
	assert.Nil(t, opts.Fallback)
}

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	var opts env.Options

	assert.Nil(t, opts.Fallback)
	assert.False(t, opts.NoInterpolation)
}
