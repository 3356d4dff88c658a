package engine

import (
	"errors"
	"fmt"
	"strconv"

	werrors "github.com/nlnwa/whatwg-url/errors"
)

// ErrorKind classifies grammar failures. The root package maps each kind to a
// public result code.
type ErrorKind int

const (
	KindMalformed ErrorKind = iota
	KindEmptyHost
	KindInvalidScheme
	KindInvalidPort
	KindInvalidIPv4Address
	KindInvalidIPv6Address
	KindInvalidDomainCharacter
	KindInvalidCharacter
	KindRelativeURLWithoutBase
	KindRelativeURLWithCannotBeABaseBase
	KindOverflow
	KindPortOnFileLikeScheme
	KindUsernameOnNonRelative
	KindPasswordOnNonRelative
	KindHostOnNonRelative
	KindHostPortOnNonRelative
	KindPortOnNonRelative
	KindPathOnNonRelative
)

// Error is returned by every fallible grammar operation.
type Error struct {
	Kind  ErrorKind
	Input string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("url grammar: kind=%d input=%q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("url grammar: kind=%d input=%q", e.Kind, e.Input)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(kind ErrorKind, input string, cause error) error {
	return &Error{Kind: kind, Input: input, Err: cause}
}

var kindsByType = map[werrors.ErrorType]ErrorKind{
	werrors.MissingSchemeNonRelativeURL: KindRelativeURLWithoutBase,
	werrors.HostMissing:                 KindEmptyHost,
	werrors.PortOutOfRange:              KindInvalidPort,
	werrors.PortInvalid:                 KindInvalidPort,
	werrors.PortMissing:                 KindInvalidPort,

	werrors.IPv4EmptyPart:      KindInvalidIPv4Address,
	werrors.IPv4TooManyParts:   KindInvalidIPv4Address,
	werrors.IPv4NonNumericPart: KindInvalidIPv4Address,
	werrors.IPv4NonDecimalPart: KindInvalidIPv4Address,
	werrors.IPv4OutOfRangePart: KindInvalidIPv4Address,

	werrors.IPv6Unclosed:               KindInvalidIPv6Address,
	werrors.IPv6InvalidCompression:     KindInvalidIPv6Address,
	werrors.IPv6TooManyPieces:          KindInvalidIPv6Address,
	werrors.IPv6MultipleCompression:    KindInvalidIPv6Address,
	werrors.IPv6InvalidCodePoint:       KindInvalidIPv6Address,
	werrors.IPv6TooFewPieces:           KindInvalidIPv6Address,
	werrors.IPv4InIPv6TooManyPieces:    KindInvalidIPv6Address,
	werrors.IPv4InIPv6InvalidCodePoint: KindInvalidIPv6Address,
	werrors.IPv4InIPv6OutOfRangePart:   KindInvalidIPv6Address,
	werrors.IPv4InIPv6TooFewParts:      KindInvalidIPv6Address,

	werrors.DomainToASCII:          KindInvalidDomainCharacter,
	werrors.DomainToUnicode:        KindInvalidDomainCharacter,
	werrors.DomainInvalidCodePoint: KindInvalidDomainCharacter,
	werrors.HostInvalidCodePoint:   KindInvalidDomainCharacter,

	werrors.InvalidURLUnit:     KindInvalidCharacter,
	werrors.InvalidCredentials: KindInvalidCharacter,
}

// kindFor maps a parser failure onto an ErrorKind.
func kindFor(err error) ErrorKind {
	var verr *werrors.ValidationError
	if !errors.As(err, &verr) {
		return KindMalformed
	}
	if verr.Type() == werrors.PortOutOfRange && errors.Is(err, strconv.ErrRange) {
		return KindOverflow
	}
	if k, ok := kindsByType[verr.Type()]; ok {
		return k
	}
	return KindMalformed
}

// classify wraps a parser failure in an *Error.
func classify(input string, err error) error {
	return fail(kindFor(err), input, err)
}
