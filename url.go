package urlkit

import (
	"strconv"
	"unicode/utf8"
)

// URL owns one parsed URL. The zero value is not usable; create URLs with
// New. A nil *URL is the "no object" value: getters report absence and every
// other operation fails with ErrInvalidArg.
//
// A URL is not safe for concurrent use.
type URL struct {
	g      Grammar // nil once freed
	parsed ParsedURL
}

// New parses spec with the configured grammar. On failure it returns a nil
// URL and an *Error; no partially parsed URL is ever returned.
func New(spec []byte, opts ...ParseOpt) (*URL, error) {
	g := getGrammar()
	var maxBytes int64
	for _, o := range opts {
		if o.Grammar != nil {
			g = o.Grammar
		}
		if o.MaxBytes > 0 {
			maxBytes = o.MaxBytes
		}
	}
	if maxBytes > 0 && int64(len(spec)) > maxBytes {
		return nil, &Error{Code: CodeOverflow, Op: "new", Message: "spec exceeds " + strconv.FormatInt(maxBytes, 10) + " bytes"}
	}
	if !utf8.Valid(spec) {
		return nil, newError("new", CodeInvalidCharacter, nil)
	}
	p, err := g.Parse(string(spec))
	if err != nil {
		return nil, fromGrammar("new", err)
	}
	return &URL{g: g, parsed: p}, nil
}

// MustNew is like New but panics on error. Intended for tests and constants.
func MustNew(spec string) *URL {
	u, err := New([]byte(spec))
	if err != nil {
		panic(err)
	}
	return u
}

// Free releases the parsed URL. It is a no-op on nil; after Free the URL
// behaves like nil.
func (u *URL) Free() {
	if u == nil {
		return
	}
	u.g = nil
	u.parsed = ParsedURL{}
}

func (u *URL) live() bool { return u != nil && u.g != nil }

// Clone returns an independent copy sharing the same grammar.
func (u *URL) Clone() *URL {
	if !u.live() {
		return nil
	}
	return &URL{g: u.g, parsed: u.parsed.Clone()}
}

// Parsed returns a copy of the component record.
func (u *URL) Parsed() ParsedURL {
	if !u.live() {
		return ParsedURL{Port: -1}
	}
	return u.parsed.Clone()
}

// Spec returns the full serialization.
func (u *URL) Spec() string {
	if !u.live() {
		return ""
	}
	return u.g.Serialize(u.parsed)
}

func (u *URL) String() string { return u.Spec() }

func (u *URL) Scheme() string {
	if !u.live() {
		return ""
	}
	return u.parsed.Scheme
}

func (u *URL) Username() string {
	if !u.live() {
		return ""
	}
	return u.parsed.Username
}

func (u *URL) Password() (string, bool) {
	if !u.live() || !u.parsed.HasPassword {
		return "", false
	}
	return u.parsed.Password, true
}

// Host returns the serialized host. It is absent only for URLs without an
// authority; file URLs report an empty, present host.
func (u *URL) Host() (string, bool) {
	if !u.live() || !u.parsed.HasHost {
		return "", false
	}
	return u.parsed.Host, true
}

// Port returns the explicit port, or -1 when none is set.
func (u *URL) Port() int {
	if !u.live() {
		return -1
	}
	return u.parsed.Port
}

func (u *URL) Path() string {
	if !u.live() {
		return ""
	}
	return u.parsed.PathString()
}

// Query returns the percent-decoded query. Invalid UTF-8 in the decoded bytes
// is replaced with U+FFFD.
func (u *URL) Query() (string, bool) {
	q, ok := u.RawQuery()
	if !ok {
		return "", false
	}
	return u.g.Decode(q), true
}

// Fragment returns the percent-decoded fragment, decoded like Query.
func (u *URL) Fragment() (string, bool) {
	f, ok := u.RawFragment()
	if !ok {
		return "", false
	}
	return u.g.Decode(f), true
}

// RawQuery returns the query as serialized.
func (u *URL) RawQuery() (string, bool) {
	if !u.live() || !u.parsed.HasQuery {
		return "", false
	}
	return u.parsed.Query, true
}

// RawFragment returns the fragment as serialized.
func (u *URL) RawFragment() (string, bool) {
	if !u.live() || !u.parsed.HasFragment {
		return "", false
	}
	return u.parsed.Fragment, true
}

type setter func(g Grammar, p *ParsedURL, v string) error

// mutate runs set against a working copy and commits it only on success.
func (u *URL) mutate(op string, v []byte, set setter) error {
	if !u.live() {
		return newError(op, CodeInvalidArg, nil)
	}
	if !utf8.Valid(v) {
		return newError(op, CodeInvalidCharacter, nil)
	}
	work := u.parsed.Clone()
	if err := set(u.g, &work, string(v)); err != nil {
		return fromGrammar(op, err)
	}
	u.parsed = work
	return nil
}

func (u *URL) SetScheme(v []byte) error { return u.mutate("set_scheme", v, Grammar.SetScheme) }

func (u *URL) SetUsername(v []byte) error { return u.mutate("set_username", v, Grammar.SetUsername) }

// SetPassword sets the password; an empty value removes it.
func (u *URL) SetPassword(v []byte) error { return u.mutate("set_password", v, Grammar.SetPassword) }

// SetHost sets the hostname. A port in v is rejected.
func (u *URL) SetHost(v []byte) error { return u.mutate("set_host", v, Grammar.SetHost) }

// SetHostAndPort sets the host and, when v carries ":port", the port.
func (u *URL) SetHostAndPort(v []byte) error {
	return u.mutate("set_host_and_port", v, Grammar.SetHostAndPort)
}

// SetPort parses the leading digits of v as the port. An empty v clears it.
func (u *URL) SetPort(v []byte) error { return u.mutate("set_port", v, Grammar.SetPort) }

// SetPortNumber stores n as the explicit port. The scheme's default port and
// values outside [0, 65535] clear the port instead. Clearing a port that is
// not set succeeds without consulting the grammar, on any URL.
func (u *URL) SetPortNumber(n int) error {
	if !u.live() {
		return newError("set_port_no", CodeInvalidArg, nil)
	}
	text := ""
	if n >= 0 && n <= 65535 && n != u.g.DefaultPort(u.parsed.Scheme) {
		text = strconv.Itoa(n)
	}
	if text == "" && u.parsed.Port < 0 {
		return nil
	}
	return u.mutate("set_port_no", []byte(text), Grammar.SetPort)
}

func (u *URL) SetPath(v []byte) error { return u.mutate("set_path", v, Grammar.SetPath) }

// SetQuery sets the query; a leading "?" is ignored and an empty value
// removes the query.
func (u *URL) SetQuery(v []byte) error { return u.mutate("set_query", v, Grammar.SetQuery) }

// SetFragment sets the fragment; a leading "#" is ignored and an empty value
// removes the fragment.
func (u *URL) SetFragment(v []byte) error { return u.mutate("set_fragment", v, Grammar.SetFragment) }
