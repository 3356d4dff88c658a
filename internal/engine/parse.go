package engine

import (
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

// parser is the WHATWG parser in its default, browser-compatible mode:
// validation errors are recorded as warnings and only failures are returned.
var parser = whatwg.NewParser()

type percentDecoder interface {
	DecodePercentEncoded(s string) string
}

var decoder = parser.(percentDecoder)

// Parse runs the WHATWG basic URL parser on spec and copies the result into
// a record.
func Parse(spec string) (URL, error) {
	w, err := parser.Parse(spec)
	if err != nil {
		return URL{}, classify(spec, err)
	}
	return fromLib(w), nil
}

// LossyDecode percent-decodes s. Malformed escapes are kept verbatim and
// bytes that do not form valid UTF-8 become U+FFFD.
func LossyDecode(s string) string {
	return strings.ToValidUTF8(decoder.DecodePercentEncoded(s), "\uFFFD")
}
