package urlkit

import (
	"errors"
	"fmt"

	"github.com/reoring/urlkit/i18n"
)

// Code is the closed set of result codes shared by every operation. The
// values are stable across the C boundary.
type Code int32

// Result codes. The first group carries HRESULT-style values; the parse
// classes are small negative numbers.
const (
	CodeOK           Code = 0
	CodeInvalidArg   Code = -2147024809 // 0x80070057
	CodeFailure      Code = -2147467259 // 0x80004005
	CodeMalformedURI Code = -2142568438 // 0x804b000a, grammar failure without a finer class
)

const (
	CodeEmptyHost Code = -(iota + 1)
	CodeInvalidScheme
	CodeInvalidPort
	CodeInvalidIPv4Address
	CodeInvalidIPv6Address
	CodeInvalidDomainCharacter
	CodeInvalidCharacter
	CodeRelativeURLWithoutBase
	CodeRelativeURLWithCannotBeABaseBase
	CodeOverflow
	CodeCannotSetPortWithFileLikeScheme
	CodeCannotSetUsernameWithNonRelativeScheme
	CodeCannotSetPasswordWithNonRelativeScheme
	CodeCannotSetHostWithNonRelativeScheme
	CodeCannotSetHostPortWithNonRelativeScheme
	CodeCannotSetPortWithNonRelativeScheme
	CodeCannotSetPathWithNonRelativeScheme

	lastParseCode = CodeCannotSetPathWithNonRelativeScheme
)

var codeNames = map[Code]string{
	CodeOK:                                     "ok",
	CodeInvalidArg:                             "invalid_arg",
	CodeFailure:                                "failure",
	CodeMalformedURI:                           "malformed_uri",
	CodeEmptyHost:                              "empty_host",
	CodeInvalidScheme:                          "invalid_scheme",
	CodeInvalidPort:                            "invalid_port",
	CodeInvalidIPv4Address:                     "invalid_ipv4_address",
	CodeInvalidIPv6Address:                     "invalid_ipv6_address",
	CodeInvalidDomainCharacter:                 "invalid_domain_character",
	CodeInvalidCharacter:                       "invalid_character",
	CodeRelativeURLWithoutBase:                 "relative_url_without_base",
	CodeRelativeURLWithCannotBeABaseBase:       "relative_url_with_cannot_be_a_base_base",
	CodeOverflow:                               "overflow",
	CodeCannotSetPortWithFileLikeScheme:        "cannot_set_port_with_file_like_scheme",
	CodeCannotSetUsernameWithNonRelativeScheme: "cannot_set_username_with_non_relative_scheme",
	CodeCannotSetPasswordWithNonRelativeScheme: "cannot_set_password_with_non_relative_scheme",
	CodeCannotSetHostWithNonRelativeScheme:     "cannot_set_host_with_non_relative_scheme",
	CodeCannotSetHostPortWithNonRelativeScheme: "cannot_set_host_port_with_non_relative_scheme",
	CodeCannotSetPortWithNonRelativeScheme:     "cannot_set_port_with_non_relative_scheme",
	CodeCannotSetPathWithNonRelativeScheme:     "cannot_set_path_with_non_relative_scheme",
}

// String returns the snake_case name of c, which is also its i18n key.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int32(c))
}

// IsParseError reports whether c belongs to the parse/grammar class.
func (c Code) IsParseError() bool {
	return c == CodeMalformedURI || (c < 0 && c >= lastParseCode)
}

// Error is the error type returned by every fallible operation.
type Error struct {
	Code    Code
	Op      string // Operation name, e.g. "set_port".
	Message string // Optional; defaults to the translated code message.
	Cause   error  // Optional: underlying error.
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = i18n.T(e.Code.String(), nil)
	}
	prefix := "urlkit"
	if e.Op != "" {
		prefix += ": " + e.Op
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%s): %v", prefix, msg, e.Code, e.Cause)
	}
	return fmt.Sprintf("%s: %s (%s)", prefix, msg, e.Code)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error carrying the same code, so the sentinels below work
// with errors.Is regardless of Op or Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrInvalidArg              = &Error{Code: CodeInvalidArg}
	ErrFailure                 = &Error{Code: CodeFailure}
	ErrMalformedURI            = &Error{Code: CodeMalformedURI}
	ErrEmptyHost               = &Error{Code: CodeEmptyHost}
	ErrInvalidScheme           = &Error{Code: CodeInvalidScheme}
	ErrInvalidPort             = &Error{Code: CodeInvalidPort}
	ErrInvalidIPv4Address      = &Error{Code: CodeInvalidIPv4Address}
	ErrInvalidIPv6Address      = &Error{Code: CodeInvalidIPv6Address}
	ErrInvalidDomainCharacter  = &Error{Code: CodeInvalidDomainCharacter}
	ErrInvalidCharacter        = &Error{Code: CodeInvalidCharacter}
	ErrRelativeURLWithoutBase  = &Error{Code: CodeRelativeURLWithoutBase}
	ErrCannotBeABaseBase       = &Error{Code: CodeRelativeURLWithCannotBeABaseBase}
	ErrOverflow                = &Error{Code: CodeOverflow}
	ErrPortWithFileLikeScheme  = &Error{Code: CodeCannotSetPortWithFileLikeScheme}
	ErrUsernameWithNonRelative = &Error{Code: CodeCannotSetUsernameWithNonRelativeScheme}
	ErrPasswordWithNonRelative = &Error{Code: CodeCannotSetPasswordWithNonRelativeScheme}
	ErrHostWithNonRelative     = &Error{Code: CodeCannotSetHostWithNonRelativeScheme}
	ErrHostPortWithNonRelative = &Error{Code: CodeCannotSetHostPortWithNonRelativeScheme}
	ErrPortWithNonRelative     = &Error{Code: CodeCannotSetPortWithNonRelativeScheme}
	ErrPathWithNonRelative     = &Error{Code: CodeCannotSetPathWithNonRelativeScheme}
)

func newError(op string, code Code, cause error) error {
	return &Error{Code: code, Op: op, Cause: cause}
}

// AsError extracts an *Error using errors.As.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf maps err onto a result code: nil is CodeOK, an *Error anywhere in
// the chain yields its code, anything else is CodeFailure.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return CodeFailure
}
