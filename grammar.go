package urlkit

import (
	"sync"

	"github.com/reoring/urlkit/internal/engine"
)

// ParsedURL is the component record a Grammar produces and mutates.
// Components are kept in serialized (percent-encoded) form; Port is -1 when
// not set.
type ParsedURL = engine.URL

// Grammar is the URL grammar collaborator: tokenizing, percent-encoding,
// host normalization, default ports and serialization. Every setter must
// validate its input completely before modifying u.
type Grammar interface {
	Parse(spec string) (ParsedURL, error)
	Serialize(u ParsedURL) string
	Join(base ParsedURL, ref string) (ParsedURL, error)
	// Decode percent-decodes s, replacing invalid sequences instead of failing.
	Decode(s string) string
	// DefaultPort returns the scheme's implicit port, or -1 when it has none.
	DefaultPort(scheme string) int

	SetScheme(u *ParsedURL, v string) error
	SetUsername(u *ParsedURL, v string) error
	SetPassword(u *ParsedURL, v string) error
	SetHost(u *ParsedURL, v string) error
	SetHostAndPort(u *ParsedURL, v string) error
	SetPort(u *ParsedURL, v string) error
	SetPath(u *ParsedURL, v string) error
	SetQuery(u *ParsedURL, v string) error
	SetFragment(u *ParsedURL, v string) error

	Name() string
}

var (
	grammarMu      sync.RWMutex
	currentGrammar Grammar = defaultGrammar{}
)

// SetGrammar replaces the global grammar; nil values are ignored. URLs
// created earlier keep the grammar they were parsed with.
func SetGrammar(g Grammar) {
	if g == nil {
		return
	}
	grammarMu.Lock()
	currentGrammar = g
	grammarMu.Unlock()
}

// UseDefaultGrammar restores the built-in WHATWG grammar.
func UseDefaultGrammar() {
	grammarMu.Lock()
	currentGrammar = defaultGrammar{}
	grammarMu.Unlock()
}

// DefaultGrammar returns the built-in grammar, e.g. for wrapping in tests.
func DefaultGrammar() Grammar { return defaultGrammar{} }

func getGrammar() Grammar {
	grammarMu.RLock()
	g := currentGrammar
	grammarMu.RUnlock()
	return g
}

// defaultGrammar wraps internal/engine, an adapter over the WHATWG URL parser.
type defaultGrammar struct{}

func (defaultGrammar) Parse(spec string) (ParsedURL, error) {
	return engine.Parse(spec)
}

func (defaultGrammar) Serialize(u ParsedURL) string {
	return engine.Serialize(u)
}

func (defaultGrammar) Join(base ParsedURL, ref string) (ParsedURL, error) {
	return engine.Join(base, ref)
}

func (defaultGrammar) Decode(s string) string {
	return engine.LossyDecode(s)
}

func (defaultGrammar) DefaultPort(scheme string) int {
	return engine.DefaultPort(scheme)
}

func (defaultGrammar) SetScheme(u *ParsedURL, v string) error {
	return engine.SetScheme(u, v)
}

func (defaultGrammar) SetUsername(u *ParsedURL, v string) error {
	return engine.SetUsername(u, v)
}

func (defaultGrammar) SetPassword(u *ParsedURL, v string) error {
	return engine.SetPassword(u, v)
}

func (defaultGrammar) SetHost(u *ParsedURL, v string) error {
	return engine.SetHost(u, v)
}

func (defaultGrammar) SetHostAndPort(u *ParsedURL, v string) error {
	return engine.SetHostAndPort(u, v)
}

func (defaultGrammar) SetPort(u *ParsedURL, v string) error {
	return engine.SetPort(u, v)
}

func (defaultGrammar) SetPath(u *ParsedURL, v string) error {
	return engine.SetPath(u, v)
}

func (defaultGrammar) SetQuery(u *ParsedURL, v string) error {
	return engine.SetQuery(u, v)
}

func (defaultGrammar) SetFragment(u *ParsedURL, v string) error {
	return engine.SetFragment(u, v)
}

func (defaultGrammar) Name() string { return "whatwg-url" }
