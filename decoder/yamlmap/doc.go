// Package yamlmap provides a YAML-backed Decoder implementation for the env
// package.
//
// This package uses github.com/goccy/go-yaml to decode a flat mapping of
// scalar values into env pairs, so that the same Environment pipeline can be
// fed from a YAML profile instead of a dotenv file:
//
//	HOST: localhost
//	PORT: 8080
//	DEBUG: true
//
// Keys obey the same [A-Za-z_][A-Za-z0-9_]* pattern as dotenv keys. Nested
// mappings and sequences are rejected with ErrNotScalar; the env data model
// is flat by design.
//
// Usage:
//
//	environment, err := env.Load(fetcher, yamlmap.NewDecoder())
package yamlmap
