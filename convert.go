package env

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSeparator is the separator used by Strings.
const DefaultSeparator = ","

// Int returns the value for key parsed as a signed decimal integer. The
// second result is false when the key is absent or the value is not numeric.
func (e Environment) Int(key string) (int, bool) {
	raw, found := e.values[key]
	if !found {
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return value, true
}

// Float returns the value for key parsed as a decimal floating point literal.
func (e Environment) Float(key string) (float64, bool) {
	raw, found := e.values[key]
	if !found {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// Bool returns the value for key parsed as a boolean. It recognizes, case
// insensitively, true/1/yes/on as true and false/0/no/off as false; anything
// else reads as absent.
func (e Environment) Bool(key string) (bool, bool) {
	raw, found := e.values[key]
	if !found {
		return false, false
	}

	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// URL returns the value for key parsed as a URL. Empty and malformed values
// read as absent.
func (e Environment) URL(key string) (*url.URL, bool) {
	raw, found := e.values[key]
	if !found || raw == "" {
		return nil, false
	}

	value, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}

	return value, true
}

// Strings returns the value for key split on DefaultSeparator, with each
// piece whitespace-trimmed and empty pieces dropped.
func (e Environment) Strings(key string) ([]string, bool) {
	return e.StringsSep(key, DefaultSeparator)
}

// StringsSep is Strings with a caller-chosen separator.
func (e Environment) StringsSep(key, separator string) ([]string, bool) {
	raw, found := e.values[key]
	if !found {
		return nil, false
	}

	pieces := make([]string, 0)

	for _, piece := range strings.Split(raw, separator) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			pieces = append(pieces, piece)
		}
	}

	return pieces, true
}

// Bytes returns the raw bytes of the value for key.
func (e Environment) Bytes(key string) ([]byte, bool) {
	raw, found := e.values[key]
	if !found {
		return nil, false
	}

	return []byte(raw), true
}

// Base64 returns the value for key decoded as standard base64. Invalid
// encodings read as absent.
func (e Environment) Base64(key string) ([]byte, bool) {
	raw, found := e.values[key]
	if !found {
		return nil, false
	}

	value, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, false
	}

	return value, true
}

// RequiredString returns the value for key, or a MissingKeyError when the key
// is absent.
func (e Environment) RequiredString(key string) (string, error) {
	raw, found := e.values[key]
	if !found {
		return "", MissingKeyError{Key: key}
	}

	return raw, nil
}

// RequiredInt is Int, but absence yields a MissingKeyError and a conversion
// failure yields an InvalidTypeError.
func (e Environment) RequiredInt(key string) (int, error) {
	raw, found := e.values[key]
	if !found {
		return 0, MissingKeyError{Key: key}
	}

	value, converted := e.Int(key)
	if !converted {
		return 0, InvalidTypeError{Key: key, Type: "int", Value: raw}
	}

	return value, nil
}

// RequiredFloat is Float with the Required error policy.
func (e Environment) RequiredFloat(key string) (float64, error) {
	raw, found := e.values[key]
	if !found {
		return 0, MissingKeyError{Key: key}
	}

	value, converted := e.Float(key)
	if !converted {
		return 0, InvalidTypeError{Key: key, Type: "float", Value: raw}
	}

	return value, nil
}

// RequiredBool is Bool with the Required error policy.
func (e Environment) RequiredBool(key string) (bool, error) {
	raw, found := e.values[key]
	if !found {
		return false, MissingKeyError{Key: key}
	}

	value, converted := e.Bool(key)
	if !converted {
		return false, InvalidTypeError{Key: key, Type: "bool", Value: raw}
	}

	return value, nil
}

// RequiredURL is URL with the Required error policy.
func (e Environment) RequiredURL(key string) (*url.URL, error) {
	raw, found := e.values[key]
	if !found {
		return nil, MissingKeyError{Key: key}
	}

	value, converted := e.URL(key)
	if !converted {
		return nil, InvalidTypeError{Key: key, Type: "url", Value: raw}
	}

	return value, nil
}

// RequiredStrings is Strings with the Required error policy. Splitting cannot
// fail, so only absence is an error.
func (e Environment) RequiredStrings(key string) ([]string, error) {
	value, found := e.Strings(key)
	if !found {
		return nil, MissingKeyError{Key: key}
	}

	return value, nil
}

// RequiredBase64 is Base64 with the Required error policy.
func (e Environment) RequiredBase64(key string) ([]byte, error) {
	raw, found := e.values[key]
	if !found {
		return nil, MissingKeyError{Key: key}
	}

	value, converted := e.Base64(key)
	if !converted {
		return nil, InvalidTypeError{Key: key, Type: "base64", Value: raw}
	}

	return value, nil
}
