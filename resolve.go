package urlkit

import "unicode/utf8"

// Resolve joins ref against u and returns the result as a new URL using the
// same grammar. A base that cannot be a base accepts only fragment
// references (and absolute URLs).
func (u *URL) Resolve(ref []byte) (*URL, error) {
	if !u.live() {
		return nil, newError("resolve", CodeInvalidArg, nil)
	}
	if !utf8.Valid(ref) {
		return nil, newError("resolve", CodeInvalidCharacter, nil)
	}
	p, err := u.g.Join(u.parsed, string(ref))
	if err != nil {
		return nil, fromGrammar("resolve", err)
	}
	return &URL{g: u.g, parsed: p}, nil
}
