// Package dotenv parses line-oriented KEY=value ("dotenv") text into a
// key/value mapping.
//
// The grammar per line is:
//
//	[export ]KEY=[value | "quoted value" | 'quoted value'][ #comment]
//	# full-line comment
//	<blank line>
//
// Keys match [A-Za-z_][A-Za-z0-9_]*. The parser is a pure function over the
// input text: it performs no I/O and knows nothing about variable
// interpolation (see the interpolate package for that).
//
// Error policy is fail-fast: the first line with a malformed key aborts the
// parse with a ParseError carrying the 1-based line number. Lines without any
// "=" are tolerated and skipped silently.
//
// Usage:
//
//	values, err := dotenv.Parse("HOST=localhost\nPORT=8080\n")
//
// The Decoder type adapts Parse to the env.Decoder interface:
//
//	environment, err := env.Load(fetcher, dotenv.NewDecoder())
package dotenv
