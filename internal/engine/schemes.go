package engine

import "strings"

// schemeTraits asks the parser how it treats scheme by parsing a minimal
// URL that uses it.
func schemeTraits(scheme string) (special bool, port int) {
	w, err := parser.Parse(scheme + "://h/")
	if err != nil || w.Scheme() != strings.ToLower(scheme) || !w.IsSpecialScheme() {
		return false, -1
	}
	if p := w.DecodedPort(); p > 0 {
		return true, p
	}
	return true, -1
}

// IsSpecialScheme reports whether scheme has hard authority semantics
// (ftp, file, http, https, ws, wss).
func IsSpecialScheme(scheme string) bool {
	special, _ := schemeTraits(scheme)
	return special
}

// DefaultPort returns the scheme's implicit port, or -1 when it has none.
func DefaultPort(scheme string) int {
	_, port := schemeTraits(scheme)
	return port
}

// IsFileLike reports whether explicit ports and credentials are forbidden.
func IsFileLike(scheme string) bool { return scheme == "file" }
