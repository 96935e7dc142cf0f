package dotenv

import (
	"fmt"
	"strings"
)

// ParseError is returned when a line carries a malformed key. It reports the
// 1-based line number and the offending key text. The first ParseError aborts
// the whole parse; no partial mapping is returned alongside it.
type ParseError struct {
	Line int
	Key  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("dotenv: line %d: invalid key %q", e.Line, e.Key)
}

// Decoder implements the env.Decoder interface for dotenv-formatted data.
type Decoder struct{}

// NewDecoder creates a new dotenv decoder instance.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses dotenv data into a key/value mapping.
func (d *Decoder) Decode(data []byte) (map[string]string, error) {
	return Parse(string(data))
}

// Parse turns dotenv text into a key/value mapping.
//
// Lines are processed independently: blank lines and full-line comments are
// skipped, an optional "export " prefix is stripped, the line is split on the
// first "=", and lines without any "=" are ignored. Keys must match
// [A-Za-z_][A-Za-z0-9_]*; the first invalid key fails the whole parse with a
// ParseError. A later occurrence of a key overwrites an earlier one.
//
// Values wrapped in a single matching pair of double or single quotes have
// exactly that pair removed and their contents preserved verbatim. Unquoted
// values are truncated at the first unescaped "#" (inline comment). In both
// cases the escape sequences \n, \t, \r, \", \' and \\ are substituted in a
// single pass.
func Parse(text string) (map[string]string, error) {
	values := make(map[string]string)

	for number, line := range lines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		trimmed = stripExport(trimmed)

		eq := strings.IndexByte(trimmed, '=')
		if eq < 0 {
			// Tolerate free-form text such as shell comments without "#".
			continue
		}

		key := strings.TrimSpace(trimmed[:eq])
		if !ValidKey(key) {
			return nil, ParseError{Line: number, Key: key}
		}

		values[key] = unescape(extractValue(trimmed[eq+1:]))
	}

	return values, nil
}

// lines splits text on any newline convention and yields each line together
// with its 1-based line number.
func lines(text string) func(yield func(int, string) bool) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	return func(yield func(int, string) bool) {
		for index, line := range strings.Split(normalized, "\n") {
			if !yield(index+1, line) {
				return
			}
		}
	}
}

// stripExport removes a leading "export" token when it is followed by
// whitespace. The prefix is purely cosmetic and does not change key/value
// semantics.
func stripExport(line string) string {
	rest, found := strings.CutPrefix(line, "export")
	if !found || rest == "" {
		return line
	}

	if rest[0] != ' ' && rest[0] != '\t' {
		return line
	}

	return strings.TrimLeft(rest, " \t")
}

// extractValue turns the raw text after "=" into the value, handling quoting
// and inline comments. Escape substitution happens afterwards.
func extractValue(raw string) string {
	value := strings.TrimSpace(raw)

	if len(value) >= 2 {
		quote := value[0]
		if (quote == '"' || quote == '\'') && value[len(value)-1] == quote {
			// Strip exactly the outer pair; the contents, including any
			// "#" or surrounding spaces, are preserved verbatim.
			return value[1 : len(value)-1]
		}
	}

	if cut := indexUnescapedHash(value); cut >= 0 {
		value = strings.TrimRight(value[:cut], " \t")
	}

	return value
}

// indexUnescapedHash returns the index of the first "#" not preceded by a
// backslash, or -1.
func indexUnescapedHash(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}

	return -1
}

// unescape substitutes the fixed escape set in a single non-iterative pass,
// so a "\\" never re-triggers another substitution.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var builder strings.Builder

	builder.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			builder.WriteByte(s[i])

			continue
		}

		switch s[i+1] {
		case 'n':
			builder.WriteByte('\n')
		case 't':
			builder.WriteByte('\t')
		case 'r':
			builder.WriteByte('\r')
		case '"':
			builder.WriteByte('"')
		case '\'':
			builder.WriteByte('\'')
		case '\\':
			builder.WriteByte('\\')
		default:
			builder.WriteByte(s[i])

			continue
		}

		i++
	}

	return builder.String()
}

// ValidKey reports whether key matches [A-Za-z_][A-Za-z0-9_]*.
func ValidKey(key string) bool {
	if key == "" {
		return false
	}

	for i := 0; i < len(key); i++ {
		c := key[i]

		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
