package urlkit

import "strings"

// commonPrefix returns how many leading segments a and b share.
func commonPrefix(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// related reports whether the paths of a and b can be compared at all: same
// scheme, credentials, host and port, and both hierarchical.
func related(a, b *ParsedURL) bool {
	return a.SameAuthority(*b) && !a.CannotBeABase && !b.CannotBeABase
}

// CommonBaseSpec returns the longest shared base of u1 and u2: u1 with its
// path cut to the common leading segments and query and fragment removed.
// Identical URLs yield u1's full spec. URLs with different authorities have
// no common base; the result is then "" with a nil error.
func CommonBaseSpec(u1, u2 *URL) (string, error) {
	if !u1.live() || !u2.live() {
		return "", newError("common_base_spec", CodeInvalidArg, nil)
	}
	a, b := &u1.parsed, &u2.parsed
	if a.Equal(*b) {
		return u1.Spec(), nil
	}
	if !related(a, b) {
		return "", nil
	}

	base := a.Clone()
	base.Path = base.Path[:commonPrefix(a.Path, b.Path)]
	base.Query, base.HasQuery = "", false
	base.Fragment, base.HasFragment = "", false
	return u1.g.Serialize(base), nil
}

// RelativeSpec returns a path-relative reference from u1 to u2. Identical
// URLs yield ""; URLs with different authorities yield u2's full spec.
//
// After the common leading segments, every remaining segment of u1 except
// the last one contributes a "../". The last segment is the document name,
// or the empty marker of a trailing slash, and never ascends. u2's remaining
// segments follow, joined by "/", then its raw query and fragment. When u2's
// path is a proper prefix of u1's and does not end in "/", the reference
// climbs once per remaining u1 segment and names u2's last segment instead.
//
// A target one or more segments below a document without a trailing slash,
// such as /a/b to /a/b/c, yields "c", which resolves against /a/ rather than
// /a/b/.
func RelativeSpec(u1, u2 *URL) (string, error) {
	if !u1.live() || !u2.live() {
		return "", newError("relative_spec", CodeInvalidArg, nil)
	}
	a, b := &u1.parsed, &u2.parsed
	if a.Equal(*b) {
		return "", nil
	}
	if !related(a, b) {
		return u2.Spec(), nil
	}

	k := commonPrefix(a.Path, b.Path)
	rest1, rest2 := a.Path[k:], b.Path[k:]

	var out strings.Builder
	if last := b.Path[max(k-1, 0):]; len(rest2) == 0 && len(rest1) > 0 && len(last) == 1 && last[0] != "" {
		// u2 is an ancestor without a trailing slash: climb above it and
		// name its last segment
		for range rest1 {
			out.WriteString("../")
		}
		out.WriteString(last[0])
	} else {
		for i := 1; i < len(rest1); i++ {
			out.WriteString("../")
		}
		tail := strings.Join(rest2, "/")
		if out.Len() == 0 && strings.Contains(firstSegment(tail), ":") {
			// would read as a scheme
			out.WriteString("./")
		}
		out.WriteString(tail)
	}

	if out.Len() == 0 {
		pathsDiffer := len(rest1) > 0 || len(rest2) > 0
		if pathsDiffer || (a.HasQuery && !b.HasQuery) {
			// an empty reference keeps u1's document; name u2's instead
			if len(b.Path) == 0 {
				return u2.Spec(), nil
			}
			last := b.Path[len(b.Path)-1]
			if last == "" || strings.Contains(last, ":") {
				out.WriteString("./")
			}
			out.WriteString(last)
		}
	}

	if b.HasQuery {
		out.WriteByte('?')
		out.WriteString(b.Query)
	}
	if b.HasFragment {
		out.WriteByte('#')
		out.WriteString(b.Fragment)
	}
	return out.String(), nil
}

func firstSegment(p string) string {
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}
