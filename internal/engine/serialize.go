package engine

import (
	"strconv"
	"strings"
)

// Serialize renders the full URL string.
func Serialize(u URL) string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteByte(':')
	if u.HasHost {
		b.WriteString("//")
		if u.HasCredentials() {
			b.WriteString(u.Username)
			if u.HasPassword {
				b.WriteByte(':')
				b.WriteString(u.Password)
			}
			b.WriteByte('@')
		}
		b.WriteString(u.Host)
		if u.Port >= 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.Port))
		}
	} else if !u.CannotBeABase && len(u.Path) > 1 && u.Path[0] == "" {
		// keep "//" at the start of a host-less path from reading as an authority
		b.WriteString("/.")
	}
	b.WriteString(u.PathString())
	if u.HasQuery {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}
	if u.HasFragment {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}
