// Package env loads key/value configuration from dotenv sources, resolves
// inter-variable references, and exposes the result as an immutable, typed,
// read-only Environment.
//
// The package composes three independent pieces:
//
//   - decoder/dotenv parses dotenv text into a mapping (pure, no I/O);
//   - interpolate expands ${VAR} and $VAR references against the mapping and
//     a fallback source, with bounded fixed-point iteration so that cyclic
//     references terminate;
//   - Environment wraps the final mapping with lookup, enumeration, merge,
//     and typed accessors (Int, Bool, URL, Strings, Base64, ...).
//
// Load ties the pieces together behind the Fetcher and Decoder interfaces:
//
//	environment, err := env.File(".env")
//	if err != nil {
//	    // fileNotFound, read failure, or a dotenv.ParseError
//	}
//	port, _ := environment.Int("PORT")
//
// Typed accessors come in optional form, returning (value, ok), and Required
// form, returning MissingKeyError or InvalidTypeError. The parser fails fast
// on a malformed key while the resolver never fails; that asymmetry is
// intentional — a broken file is worth stopping on, an unresolved reference
// is not.
package env
