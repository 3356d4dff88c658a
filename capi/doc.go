// Package capi is the foreign-function boundary of urlkit.
//
// URLs live in an Arena and are addressed by generation-checked Handles, so
// callers outside Go never hold Go pointers and a freed or stale handle is
// reported as CodeInvalidArg instead of being dereferenced. Strings leave
// through an OutputBuffer supplied per call: the arena declares the size,
// asks for the buffer, then copies, exactly once per successful call. A
// zero size means the component is absent or empty and no buffer is
// requested.
//
// Every operation returns a urlkit.Code. cmd/urlkit-capi exports these
// operations as C symbols.
package capi
