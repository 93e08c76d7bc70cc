// Package detect locates the public top-level class declared in Java source
// text. It is used to default the build's main class when the caller does not
// name one explicitly.
package detect

import (
	"errors"
	"regexp"
)

// ErrNoMatch is returned when the source text contains no public class
// declaration.
var ErrNoMatch = errors.New("no public class declaration found")

// classPattern matches the token sequence "public class <identifier>".
// Anything beyond the three tokens (generics, inheritance, braces) is
// deliberately ignored.
var classPattern = regexp.MustCompile(`public\s+class\s+([A-Za-z_][A-Za-z0-9_]*)`)

// MainClass scans source for the first public top-level class declaration and
// returns its identifier. When multiple declarations are present the leftmost
// one wins. Returns ErrNoMatch when no declaration exists.
func MainClass(source string) (string, error) {
	m := classPattern.FindStringSubmatch(source)
	if m == nil {
		return "", ErrNoMatch
	}
	return m[1], nil
}
