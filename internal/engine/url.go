package engine

import (
	"strconv"
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

// URL is the component record produced by Parse and consumed by Serialize.
// Components are stored in their serialized (percent-encoded) form, exactly
// as the WHATWG serializer writes them.
type URL struct {
	Scheme string

	Username    string
	Password    string
	HasPassword bool

	Host    string
	HasHost bool
	Port    int // -1 when not set

	// Path holds the segments of a hierarchical path. A single empty segment
	// is the root ("/"); nil is the empty path.
	Path []string
	// OpaquePath is used instead of Path when CannotBeABase is set
	// (mailto:, data:, urn: and friends).
	OpaquePath    string
	CannotBeABase bool

	Query    string
	HasQuery bool

	Fragment    string
	HasFragment bool
}

// Clone returns a deep copy; the path slice is never shared.
func (u URL) Clone() URL {
	c := u
	if u.Path != nil {
		c.Path = append(make([]string, 0, len(u.Path)), u.Path...)
	}
	return c
}

// Equal reports whether both records hold the same components.
func (u URL) Equal(o URL) bool {
	if !u.SameAuthority(o) {
		return false
	}
	if u.CannotBeABase != o.CannotBeABase || u.OpaquePath != o.OpaquePath {
		return false
	}
	if len(u.Path) != len(o.Path) || (u.Path == nil) != (o.Path == nil) {
		return false
	}
	for i := range u.Path {
		if u.Path[i] != o.Path[i] {
			return false
		}
	}
	return u.HasQuery == o.HasQuery && u.Query == o.Query &&
		u.HasFragment == o.HasFragment && u.Fragment == o.Fragment
}

// SameAuthority compares scheme, credentials, host and port.
func (u URL) SameAuthority(o URL) bool {
	return u.Scheme == o.Scheme &&
		u.Username == o.Username &&
		u.HasPassword == o.HasPassword && u.Password == o.Password &&
		u.HasHost == o.HasHost && u.Host == o.Host &&
		u.Port == o.Port
}

// PathString renders the path component as it appears in the serialization.
func (u URL) PathString() string {
	if u.CannotBeABase {
		return u.OpaquePath
	}
	if len(u.Path) == 0 {
		return ""
	}
	return "/" + strings.Join(u.Path, "/")
}

// IsSpecial reports whether the scheme is one of the special schemes.
func (u URL) IsSpecial() bool { return IsSpecialScheme(u.Scheme) }

// HasCredentials reports whether a username or password is set.
func (u URL) HasCredentials() bool { return u.Username != "" || u.HasPassword }

// fromLib copies a parsed library URL into a record. The library hides null
// versus empty for host, query and fragment, so presence is read off the
// serialization: "//" after the scheme only appears with a host, and the
// query and fragment delimiters are never percent-encoded elsewhere.
func fromLib(w *whatwg.Url) URL {
	href := w.Href(false)
	noFragment := w.Href(true)

	out := URL{
		Scheme:   w.Scheme(),
		Username: w.Username(),
		Password: w.Password(),
		Port:     -1,
	}
	out.HasPassword = out.Password != ""
	out.HasHost = strings.HasPrefix(href[len(out.Scheme)+1:], "//")
	if out.HasHost {
		out.Host = w.Hostname()
		if p := w.Port(); p != "" {
			out.Port, _ = strconv.Atoi(p)
		}
	}

	if w.OpaquePath() {
		out.CannotBeABase = true
		out.OpaquePath = w.Pathname()
	} else if p := w.Pathname(); p != "" {
		out.Path = strings.Split(p[1:], "/")
	}

	out.Query = w.Query()
	out.HasQuery = out.Query != "" || strings.HasSuffix(noFragment, "?")
	out.Fragment = w.Fragment()
	out.HasFragment = len(href) > len(noFragment)
	return out
}

// toLib rebuilds a library URL from a record by reparsing its serialization.
func toLib(u URL) (*whatwg.Url, error) {
	s := Serialize(u)
	w, err := parser.Parse(s)
	if err != nil {
		return nil, classify(s, err)
	}
	return w, nil
}
