package env

import "fmt"

// MissingKeyError is returned by the Required accessors when the key is not
// present in the Environment.
type MissingKeyError struct {
	Key string
}

func (e MissingKeyError) Error() string {
	return fmt.Sprintf("env: required key %q is not set", e.Key)
}

// InvalidTypeError is returned by the Required accessors when a value is
// present but fails its conversion. It carries the key, the expected type
// name, and the raw value.
type InvalidTypeError struct {
	Key   string
	Type  string
	Value string
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("env: key %q: cannot convert %q to %s", e.Key, e.Value, e.Type)
}
