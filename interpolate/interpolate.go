package interpolate

import (
	"sort"
	"strings"
)

// maxPasses bounds the fixed-point expansion so that reference cycles cannot
// loop forever.
const maxPasses = 10

// Expand substitutes ${NAME} and $NAME references in the values of the input
// mapping and returns a new mapping with the results. Referenced names are
// looked up first in the mapping itself, then in fallback, and expand to the
// empty string when absent from both. Expand never fails: unresolved
// references degrade to empty strings instead of erroring.
//
// Expansion runs iteratively until a pass changes nothing, capped at a fixed
// number of passes so that reference cycles terminate. Keys are visited in
// sorted order, which makes the result deterministic; it also lets chains like
// A -> B -> C resolve in a single pass when the keys happen to sort that way.
// Any reference still standing after the passes necessarily names a cycle and
// is replaced by the empty string, so the returned mapping never contains
// reference tokens and re-expanding it is a no-op.
func Expand(values, fallback map[string]string) map[string]string {
	result := make(map[string]string, len(values))
	for key, value := range values {
		result[key] = value
	}

	keys := make([]string, 0, len(result))
	for key := range result {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	lookup := func(name string) string {
		if value, found := result[name]; found {
			return value
		}

		return fallback[name]
	}

	for pass := 0; pass < maxPasses; pass++ {
		changed := false

		for _, key := range keys {
			expanded := expand(result[key], lookup)
			if expanded != result[key] {
				result[key] = expanded
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	// Whatever still references another entry at this point sits on a
	// cycle: those names never converge to a concrete value, so their
	// references read as empty.
	for _, key := range keys {
		result[key] = expand(result[key], func(string) string { return "" })
	}

	return result
}

// expand performs a single left-to-right sweep over value, replacing every
// ${NAME} and $NAME token with lookup(NAME). A "$" immediately followed by "{"
// is always treated as the start of a braced form and never matched as a bare
// reference; malformed braced forms (no name, or a missing closing brace) are
// copied through verbatim.
func expand(value string, lookup func(string) string) string {
	dollar := strings.IndexByte(value, '$')
	if dollar < 0 {
		return value
	}

	var builder strings.Builder

	builder.Grow(len(value))
	builder.WriteString(value[:dollar])

	for i := dollar; i < len(value); i++ {
		if value[i] != '$' || i+1 == len(value) {
			builder.WriteByte(value[i])

			continue
		}

		if value[i+1] == '{' {
			name := scanName(value[i+2:])
			if name != "" && i+2+len(name) < len(value) && value[i+2+len(name)] == '}' {
				builder.WriteString(lookup(name))
				i += 2 + len(name)

				continue
			}

			// Not a well-formed braced reference; keep "${" literal. The
			// bare form never applies after "${".
			builder.WriteString("${")
			i++

			continue
		}

		if name := scanName(value[i+1:]); name != "" {
			builder.WriteString(lookup(name))
			i += len(name)

			continue
		}

		builder.WriteByte('$')
	}

	return builder.String()
}

// scanName returns the longest prefix of s matching [A-Za-z_][A-Za-z0-9_]*,
// or "" when s does not start with a name character.
func scanName(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}

		if c >= '0' && c <= '9' && i > 0 {
			continue
		}

		return s[:i]
	}

	return s
}
