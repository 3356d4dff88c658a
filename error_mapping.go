package urlkit

import (
	"errors"

	"github.com/reoring/urlkit/internal/engine"
)

var kindCodes = map[engine.ErrorKind]Code{
	engine.KindMalformed:                        CodeMalformedURI,
	engine.KindEmptyHost:                        CodeEmptyHost,
	engine.KindInvalidScheme:                    CodeInvalidScheme,
	engine.KindInvalidPort:                      CodeInvalidPort,
	engine.KindInvalidIPv4Address:               CodeInvalidIPv4Address,
	engine.KindInvalidIPv6Address:               CodeInvalidIPv6Address,
	engine.KindInvalidDomainCharacter:           CodeInvalidDomainCharacter,
	engine.KindInvalidCharacter:                 CodeInvalidCharacter,
	engine.KindRelativeURLWithoutBase:           CodeRelativeURLWithoutBase,
	engine.KindRelativeURLWithCannotBeABaseBase: CodeRelativeURLWithCannotBeABaseBase,
	engine.KindOverflow:                         CodeOverflow,
	engine.KindPortOnFileLikeScheme:             CodeCannotSetPortWithFileLikeScheme,
	engine.KindUsernameOnNonRelative:            CodeCannotSetUsernameWithNonRelativeScheme,
	engine.KindPasswordOnNonRelative:            CodeCannotSetPasswordWithNonRelativeScheme,
	engine.KindHostOnNonRelative:                CodeCannotSetHostWithNonRelativeScheme,
	engine.KindHostPortOnNonRelative:            CodeCannotSetHostPortWithNonRelativeScheme,
	engine.KindPortOnNonRelative:                CodeCannotSetPortWithNonRelativeScheme,
	engine.KindPathOnNonRelative:                CodeCannotSetPathWithNonRelativeScheme,
}

// fromGrammar converts an error returned by a Grammar into an *Error tagged
// with op. Grammars may return *Error themselves; any other failure is
// reported as CodeMalformedURI.
func fromGrammar(op string, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := AsError(err); ok {
		if e.Op != "" {
			return e
		}
		return &Error{Code: e.Code, Op: op, Message: e.Message, Cause: e.Cause}
	}
	var ge *engine.Error
	if errors.As(err, &ge) {
		code, ok := kindCodes[ge.Kind]
		if !ok {
			code = CodeMalformedURI
		}
		return newError(op, code, err)
	}
	return newError(op, CodeMalformedURI, err)
}
