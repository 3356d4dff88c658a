package urlkit

import (
	"strconv"
	"strings"
)

// Part assembles the components selected by flags, in URL order. Separators
// are written only next to components that are actually included, so
// Part(PartPath) is exactly Path(). Absent components contribute nothing.
func (u *URL) Part(flags Part) string {
	if !u.live() || flags == 0 {
		return ""
	}
	p := &u.parsed
	var b strings.Builder

	if flags&PartScheme != 0 {
		b.WriteString(p.Scheme)
		if flags&^PartScheme != 0 {
			if p.HasHost {
				b.WriteString("://")
			} else {
				b.WriteByte(':')
			}
		}
	}

	creds := false
	if flags&PartUser != 0 && p.Username != "" {
		b.WriteString(p.Username)
		creds = true
	}
	if flags&PartPassword != 0 && p.HasPassword {
		b.WriteByte(':')
		b.WriteString(p.Password)
		creds = true
	}
	if flags&PartHostname != 0 {
		if creds {
			b.WriteByte('@')
		}
		if p.HasHost {
			b.WriteString(p.Host)
		}
	}
	if flags&PartPort != 0 && p.Port >= 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.Port))
	}
	if flags&PartPath != 0 {
		b.WriteString(p.PathString())
	}
	if flags&PartQuery != 0 && p.HasQuery {
		b.WriteByte('?')
		b.WriteString(p.Query)
	}
	if flags&PartHash != 0 && p.HasFragment {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
	return b.String()
}
