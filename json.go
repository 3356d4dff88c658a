package urlkit

import (
	"github.com/goccy/go-json"
)

type jsonURL struct {
	Href     string  `json:"href"`
	Scheme   string  `json:"scheme"`
	Username string  `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Host     *string `json:"host,omitempty"`
	Port     *int    `json:"port,omitempty"`
	Path     string  `json:"path"`
	Query    *string `json:"query,omitempty"`
	Fragment *string `json:"fragment,omitempty"`
}

func optional(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}

// MarshalJSON emits a component snapshot. Optional components are omitted
// when absent; query and fragment are in serialized form. A nil URL encodes
// as null.
func (u *URL) MarshalJSON() ([]byte, error) {
	if !u.live() {
		return []byte("null"), nil
	}
	p := &u.parsed
	out := jsonURL{
		Href:     u.Spec(),
		Scheme:   p.Scheme,
		Username: p.Username,
		Password: optional(p.Password, p.HasPassword),
		Host:     optional(p.Host, p.HasHost),
		Path:     p.PathString(),
		Query:    optional(p.Query, p.HasQuery),
		Fragment: optional(p.Fragment, p.HasFragment),
	}
	if p.Port >= 0 {
		port := p.Port
		out.Port = &port
	}
	return json.Marshal(out)
}

// UnmarshalJSON re-parses the "href" member with the global grammar. The
// other members are informational and ignored.
func (u *URL) UnmarshalJSON(data []byte) error {
	var in struct {
		Href string `json:"href"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return &Error{Code: CodeInvalidArg, Op: "unmarshal_json", Cause: err}
	}
	parsed, err := New([]byte(in.Href))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
