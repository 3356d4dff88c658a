package engine

import (
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

// The setters run the WHATWG parser with a state override on a URL rebuilt
// from the record and copy the result back only on success, so a failed call
// leaves the record as it was. Cases where the WHATWG setters return silently
// without a change are rejected here with a kind of their own.

func edit(u *URL, fn func(w *whatwg.Url) error) error {
	w, err := toLib(*u)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		return err
	}
	*u = fromLib(w)
	return nil
}

// override feeds v to the parser starting in state.
func override(w *whatwg.Url, v string, state whatwg.State) error {
	if _, err := parser.BasicParser(v, nil, w, state); err != nil {
		return classify(v, err)
	}
	return nil
}

// SetScheme replaces the scheme. Switching between special and non-special
// schemes is rejected, as is moving a URL with credentials or a port to file.
func SetScheme(u *URL, v string) error {
	want := v
	if i := strings.IndexByte(want, ':'); i >= 0 {
		want = want[:i]
	}
	want = strings.ToLower(want)
	return edit(u, func(w *whatwg.Url) error {
		if _, err := parser.BasicParser(want+":", nil, w, whatwg.StateSchemeStart); err != nil {
			return fail(KindInvalidScheme, v, err)
		}
		if w.Scheme() != want {
			return fail(KindInvalidScheme, v, nil)
		}
		return nil
	})
}

func canHaveCredentials(u URL) bool {
	return u.HasHost && u.Host != "" && !IsFileLike(u.Scheme)
}

// SetUsername stores v percent-encoded with the userinfo set.
func SetUsername(u *URL, v string) error {
	if !canHaveCredentials(*u) {
		return fail(KindUsernameOnNonRelative, v, nil)
	}
	u.Username = parser.PercentEncodeString(v, whatwg.UserInfoPercentEncodeSet)
	return nil
}

// SetPassword stores v percent-encoded; an empty value removes the password.
func SetPassword(u *URL, v string) error {
	if !canHaveCredentials(*u) {
		return fail(KindPasswordOnNonRelative, v, nil)
	}
	u.Password = parser.PercentEncodeString(v, whatwg.UserInfoPercentEncodeSet)
	u.HasPassword = u.Password != ""
	return nil
}

// splitHostPort cuts v at the first delimiter that ends an authority and
// separates a trailing ":port". IPv6 literals keep their brackets.
func splitHostPort(v string, special bool) (host, port string, hasPort bool) {
	end := len(v)
	for i := 0; i < len(v); i++ {
		if c := v[i]; c == '/' || c == '?' || c == '#' || (special && c == '\\') {
			end = i
			break
		}
	}
	v = v[:end]
	search := v
	offset := 0
	if strings.HasPrefix(v, "[") {
		if i := strings.IndexByte(v, ']'); i >= 0 {
			search = v[i+1:]
			offset = i + 1
		}
	}
	if i := strings.IndexByte(search, ':'); i >= 0 {
		return v[:offset+i], search[i+1:], true
	}
	return v, "", false
}

// checkEmptyHost rejects clearing the host of a non-special URL that still
// carries credentials or a port.
func checkEmptyHost(u URL, host string) error {
	if host == "" && !u.IsSpecial() && (u.HasCredentials() || u.Port >= 0) {
		return fail(KindEmptyHost, host, nil)
	}
	return nil
}

// SetHost replaces the hostname. A port in v is rejected; use SetHostAndPort.
func SetHost(u *URL, v string) error {
	if u.CannotBeABase {
		return fail(KindHostOnNonRelative, v, nil)
	}
	host, _, hasPort := splitHostPort(v, u.IsSpecial())
	if hasPort {
		return fail(KindInvalidDomainCharacter, v, nil)
	}
	if err := checkEmptyHost(*u, host); err != nil {
		return err
	}
	return edit(u, func(w *whatwg.Url) error { return override(w, v, whatwg.StateHostname) })
}

// SetHostAndPort replaces the host and, when v carries one, the port.
func SetHostAndPort(u *URL, v string) error {
	if u.CannotBeABase {
		return fail(KindHostPortOnNonRelative, v, nil)
	}
	host, port, hasPort := splitHostPort(v, u.IsSpecial())
	if hasPort && port != "" && IsFileLike(u.Scheme) {
		return fail(KindPortOnFileLikeScheme, v, nil)
	}
	if err := checkEmptyHost(*u, host); err != nil {
		return err
	}
	return edit(u, func(w *whatwg.Url) error { return override(w, v, whatwg.StateHost) })
}

func checkPortAllowed(u URL, input string) error {
	if IsFileLike(u.Scheme) {
		return fail(KindPortOnFileLikeScheme, input, nil)
	}
	if !u.HasHost || u.Host == "" || u.CannotBeABase {
		return fail(KindPortOnNonRelative, input, nil)
	}
	return nil
}

// SetPort reads the leading ASCII digits of v as the port. An empty v clears
// it; the scheme's default port is stored as no port.
func SetPort(u *URL, v string) error {
	if err := checkPortAllowed(*u, v); err != nil {
		return err
	}
	if v == "" {
		u.Port = -1
		return nil
	}
	return edit(u, func(w *whatwg.Url) error { return override(w, v, whatwg.StatePort) })
}

// SetPath replaces the path, percent-encoding it and removing dot segments.
func SetPath(u *URL, v string) error {
	if u.CannotBeABase {
		return fail(KindPathOnNonRelative, v, nil)
	}
	return edit(u, func(w *whatwg.Url) error {
		w.SetPathname(v)
		return nil
	})
}

// SetQuery replaces the query; a leading "?" is dropped and an empty value
// removes it.
func SetQuery(u *URL, v string) error {
	return edit(u, func(w *whatwg.Url) error {
		w.SetSearch(v)
		return nil
	})
}

// SetFragment replaces the fragment; a leading "#" is dropped and an empty
// value removes it.
func SetFragment(u *URL, v string) error {
	return edit(u, func(w *whatwg.Url) error {
		w.SetHash(v)
		return nil
	})
}
