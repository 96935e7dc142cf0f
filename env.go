package env

import (
	"iter"
	"os"
	"sort"
	"strings"
)

// Environment is an immutable snapshot of key/value configuration data.
//
// An Environment owns its backing mapping: constructors copy their input and
// accessors copy their output, so no two Environment values ever share a
// mutable store. All "modifying" operations return a new Environment. The
// zero value is an empty, usable Environment.
//
// Because it is never mutated after construction, an Environment is safe to
// share across goroutines without synchronization.
type Environment struct {
	values map[string]string
}

// New creates an Environment from the given mapping. The mapping is copied;
// later mutation of the argument does not affect the Environment.
func New(values map[string]string) Environment {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}

	return Environment{values: copied}
}

// FromProcess creates an Environment from a snapshot of the current process
// environment.
func FromProcess() Environment {
	environ := os.Environ()
	values := make(map[string]string, len(environ))

	for _, entry := range environ {
		if key, value, found := strings.Cut(entry, "="); found {
			values[key] = value
		}
	}

	return Environment{values: values}
}

// Lookup returns the value for key and whether the key is present.
func (e Environment) Lookup(key string) (string, bool) {
	value, found := e.values[key]

	return value, found
}

// Get returns the value for key, or the empty string when absent.
func (e Environment) Get(key string) string {
	return e.values[key]
}

// Has reports whether key is present.
func (e Environment) Has(key string) bool {
	_, found := e.values[key]

	return found
}

// Keys returns all keys in sorted order.
func (e Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for key := range e.values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Len returns the number of entries.
func (e Environment) Len() int {
	return len(e.values)
}

// IsEmpty reports whether the Environment has no entries.
func (e Environment) IsEmpty() bool {
	return len(e.values) == 0
}

// All returns an iterator over all entries in sorted key order.
func (e Environment) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range e.Keys() {
			if !yield(key, e.values[key]) {
				return
			}
		}
	}
}

// Map returns a copy of the underlying mapping.
func (e Environment) Map() map[string]string {
	copied := make(map[string]string, len(e.values))
	for key, value := range e.values {
		copied[key] = value
	}

	return copied
}

// Merge returns a new Environment containing the entries of both inputs. On
// conflicting keys the other Environment wins. Neither input is modified.
func (e Environment) Merge(other Environment) Environment {
	merged := make(map[string]string, len(e.values)+len(other.values))

	for key, value := range e.values {
		merged[key] = value
	}

	for key, value := range other.values {
		merged[key] = value
	}

	return Environment{values: merged}
}
