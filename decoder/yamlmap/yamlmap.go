package yamlmap

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/CorvidLabs/go-env/decoder/dotenv"
)

// ErrInvalidKey is returned when a mapping key does not match the
// [A-Za-z_][A-Za-z0-9_]* pattern shared with the dotenv format.
var ErrInvalidKey = errors.New("invalid key")

// ErrNotScalar is returned when a mapping value is a nested mapping or a
// sequence instead of a scalar.
var ErrNotScalar = errors.New("value is not a scalar")

// Decoder implements the env.Decoder interface for flat YAML mappings.
// It uses goccy/go-yaml for YAML parsing.
type Decoder struct{}

// NewDecoder creates a new YAML mapping decoder instance.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses a YAML document consisting of a single flat mapping of
// scalars and returns it as a key/value mapping. Scalars render as their
// string form; a key with no value reads as the empty string. Empty input
// yields an empty mapping.
func (d *Decoder) Decode(data []byte) (map[string]string, error) {
	var raw map[string]any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	values := make(map[string]string, len(raw))

	for key, value := range raw {
		if !dotenv.ValidKey(key) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}

		rendered, err := renderScalar(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		values[key] = rendered
	}

	return values, nil
}

// renderScalar converts a decoded YAML scalar to its string form.
func renderScalar(value any) (string, error) {
	switch typed := value.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
	case int:
		return strconv.Itoa(typed), nil
	case int64:
		return strconv.FormatInt(typed, 10), nil
	case uint64:
		return strconv.FormatUint(typed, 10), nil
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64), nil
	default:
		return "", ErrNotScalar
	}
}
