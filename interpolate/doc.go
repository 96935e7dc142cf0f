// Package interpolate expands ${NAME} and $NAME references between the
// entries of a key/value mapping.
//
// Both token forms name [A-Za-z_][A-Za-z0-9_]*. A "$" immediately followed by
// "{" always starts a braced reference, so "$NAME{X}" is the bare reference
// $NAME followed by the literal "{X}".
//
// Unlike a shell, there are no substitution operators: no ${VAR:-default}, no
// command substitution, no arithmetic. References are resolved against the
// mapping itself first and a fallback mapping second (typically a snapshot of
// the process environment), and a name absent from both expands to the empty
// string rather than being kept as literal token text.
//
// Resolution is an iterative fixed-point expansion with a hard pass cap, not
// recursive descent: entries may reference entries that themselves still
// contain references, including forward references, diamonds, and cycles.
// Expand therefore always terminates and never reports an error; cyclic
// references bottom out as empty strings. This best-effort stance is the
// deliberate counterpart to the dotenv parser's fail-fast one: an incomplete
// environment is tolerable, a structurally broken file is not.
package interpolate
