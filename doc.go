// Package urlkit provides:
//
// - A URL handle that owns one parsed URL and exposes its components
// - Validating mutators that never leave a handle half-updated
// - A flag-driven partial spec assembler (Part)
// - Path relationship helpers: CommonBaseSpec and RelativeSpec
// - A closed error taxonomy (Code) shared with the C boundary in capi/
//
// Design policy:
// - Keep only public APIs in the root package; the default URL grammar lives under internal/engine.
// - The grammar is pluggable (SetGrammar / ParseOpt.Grammar) so the algorithms here can run against any implementation.
// - The boundary layer (arena handles, output buffers, config and logging) lives in capi/ and cmd/urlkit-capi.
//
// Typical usage:
//
//	u, err := urlkit.New([]byte("https://example.com/a/b/c?x=1"))
//	host, _ := u.Host()
//	_ = u.SetPortNumber(8443)
//	display := u.Part(urlkit.PartScheme | urlkit.PartHostname | urlkit.PartPath)
//
//	other, _ := urlkit.New([]byte("https://example.com/a/b/d"))
//	rel, _ := urlkit.RelativeSpec(u, other) // "d"
package urlkit
