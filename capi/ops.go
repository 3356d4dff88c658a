package capi

import (
	"github.com/reoring/urlkit"
)

type getter func(u *urlkit.URL) (string, bool)

func present(f func(*urlkit.URL) string) getter {
	return func(u *urlkit.URL) (string, bool) { return f(u), true }
}

func (a *Arena) get(op string, h Handle, out OutputBuffer, get getter) urlkit.Code {
	u, code := a.lookup(op, h)
	if code != urlkit.CodeOK {
		return code
	}
	if out == nil {
		return urlkit.CodeInvalidArg
	}
	s, ok := get(u)
	if !ok {
		out.SetSize(0)
		return urlkit.CodeOK
	}
	return writeString(out, s)
}

// GetSpec writes the full serialization.
func (a *Arena) GetSpec(h Handle, out OutputBuffer) urlkit.Code {
	return a.get("get_spec", h, out, present((*urlkit.URL).Spec))
}

func (a *Arena) GetScheme(h Handle, out OutputBuffer) urlkit.Code {
	return a.get("get_scheme", h, out, present((*urlkit.URL).Scheme))
}

func (a *Arena) GetUsername(h Handle, out OutputBuffer) urlkit.Code {
	return a.get("get_username", h, out, present((*urlkit.URL).Username))
}

func (a *Arena) GetPassword(h Handle, out OutputBuffer) urlkit.Code {
	return a.get("get_password", h, out, (*urlkit.URL).Password)
}

func (a *Arena) GetHost(h Handle, out OutputBuffer) urlkit.Code {
	return a.get("get_host", h, out, (*urlkit.URL).Host)
}

func (a *Arena) GetPath(h Handle, out OutputBuffer) urlkit.Code {
	return a.get("get_path", h, out, present((*urlkit.URL).Path))
}

// GetQuery writes the percent-decoded query.
func (a *Arena) GetQuery(h Handle, out OutputBuffer) urlkit.Code {
	return a.get("get_query", h, out, (*urlkit.URL).Query)
}

// GetFragment writes the percent-decoded fragment.
func (a *Arena) GetFragment(h Handle, out OutputBuffer) urlkit.Code {
	return a.get("get_fragment", h, out, (*urlkit.URL).Fragment)
}

// GetPort returns the explicit port, -1 when none is set, or CodeInvalidArg
// (as int32) for a null or stale handle.
func (a *Arena) GetPort(h Handle) int32 {
	u, code := a.lookup("get_port", h)
	if code != urlkit.CodeOK {
		return int32(code)
	}
	return int32(u.Port())
}

// GetPart writes the components selected by flags; see urlkit.Part.
func (a *Arena) GetPart(h Handle, flags uint32, out OutputBuffer) urlkit.Code {
	return a.get("get_part", h, out, func(u *urlkit.URL) (string, bool) {
		return u.Part(urlkit.Part(flags)), true
	})
}

// GetJSON writes the JSON snapshot of the URL.
func (a *Arena) GetJSON(h Handle, out OutputBuffer) urlkit.Code {
	u, code := a.lookup("get_json", h)
	if code != urlkit.CodeOK {
		return code
	}
	b, err := u.MarshalJSON()
	if err != nil {
		a.log.Error("json snapshot failed", "op", "get_json", "error", err)
		return urlkit.CodeFailure
	}
	return writeString(out, string(b))
}

type setter func(u *urlkit.URL, v []byte) error

func (a *Arena) set(op string, h Handle, v []byte, set setter) urlkit.Code {
	u, code := a.lookup(op, h)
	if code != urlkit.CodeOK {
		return code
	}
	return a.result(op, set(u, v))
}

func (a *Arena) result(op string, err error) urlkit.Code {
	if err == nil {
		return urlkit.CodeOK
	}
	code := urlkit.CodeOf(err)
	a.log.Debug("operation failed", "op", op, "code", code.String(), "error", err)
	return code
}

func (a *Arena) SetScheme(h Handle, v []byte) urlkit.Code {
	return a.set("set_scheme", h, v, (*urlkit.URL).SetScheme)
}

func (a *Arena) SetUsername(h Handle, v []byte) urlkit.Code {
	return a.set("set_username", h, v, (*urlkit.URL).SetUsername)
}

func (a *Arena) SetPassword(h Handle, v []byte) urlkit.Code {
	return a.set("set_password", h, v, (*urlkit.URL).SetPassword)
}

func (a *Arena) SetHost(h Handle, v []byte) urlkit.Code {
	return a.set("set_host", h, v, (*urlkit.URL).SetHost)
}

func (a *Arena) SetHostAndPort(h Handle, v []byte) urlkit.Code {
	return a.set("set_host_and_port", h, v, (*urlkit.URL).SetHostAndPort)
}

func (a *Arena) SetPort(h Handle, v []byte) urlkit.Code {
	return a.set("set_port", h, v, (*urlkit.URL).SetPort)
}

// SetPortNo stores n as the port; the default port and out-of-range values
// clear it.
func (a *Arena) SetPortNo(h Handle, n int32) urlkit.Code {
	u, code := a.lookup("set_port_no", h)
	if code != urlkit.CodeOK {
		return code
	}
	return a.result("set_port_no", u.SetPortNumber(int(n)))
}

func (a *Arena) SetPath(h Handle, v []byte) urlkit.Code {
	return a.set("set_path", h, v, (*urlkit.URL).SetPath)
}

func (a *Arena) SetQuery(h Handle, v []byte) urlkit.Code {
	return a.set("set_query", h, v, (*urlkit.URL).SetQuery)
}

func (a *Arena) SetFragment(h Handle, v []byte) urlkit.Code {
	return a.set("set_fragment", h, v, (*urlkit.URL).SetFragment)
}

// Resolve joins ref against the URL behind h and writes the serialized
// result. The handle itself is not modified.
func (a *Arena) Resolve(h Handle, ref []byte, out OutputBuffer) urlkit.Code {
	u, code := a.lookup("resolve", h)
	if code != urlkit.CodeOK {
		return code
	}
	if out == nil {
		return urlkit.CodeInvalidArg
	}
	r, err := u.Resolve(ref)
	if err != nil {
		return a.result("resolve", err)
	}
	defer r.Free()
	return writeString(out, r.Spec())
}

type relation func(u1, u2 *urlkit.URL) (string, error)

func (a *Arena) relate(op string, h1, h2 Handle, out OutputBuffer, rel relation) urlkit.Code {
	u1, code := a.lookup(op, h1)
	if code != urlkit.CodeOK {
		return code
	}
	u2, code := a.lookup(op, h2)
	if code != urlkit.CodeOK {
		return code
	}
	if out == nil {
		return urlkit.CodeInvalidArg
	}
	s, err := rel(u1, u2)
	if err != nil {
		return a.result(op, err)
	}
	return writeString(out, s)
}

// CommonBaseSpec writes the common base of the two URLs; an empty result
// (size 0) means there is none.
func (a *Arena) CommonBaseSpec(h1, h2 Handle, out OutputBuffer) urlkit.Code {
	return a.relate("common_base_spec", h1, h2, out, urlkit.CommonBaseSpec)
}

// RelativeSpec writes the reference from the first URL to the second.
func (a *Arena) RelativeSpec(h1, h2 Handle, out OutputBuffer) urlkit.Code {
	return a.relate("relative_spec", h1, h2, out, urlkit.RelativeSpec)
}
