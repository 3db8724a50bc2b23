package imapwire

import (
	"errors"

	"github.com/emersion/go-imapproto"
)

// Syntax error classes produced by the Receiver. They are wrapped in an
// *imap.Error and can be checked with errors.Is.
var (
	ErrMalformedTag      = errors.New("imapwire: malformed tag")
	ErrMissingCommand    = errors.New("imapwire: missing command")
	ErrUnknownCommand    = errors.New("imapwire: unknown command")
	ErrUnterminatedQuote = errors.New("imapwire: unterminated quoted string")
	ErrInvalidAtom       = errors.New("imapwire: invalid character in atom")
	ErrInvalidLiteral    = errors.New("imapwire: invalid literal")
	ErrLiteralTooLarge   = errors.New("imapwire: literal too large")
	ErrLineTooLong       = errors.New("imapwire: line too long")
	ErrInvalidLineEnding = errors.New("imapwire: invalid line ending")
)

func newSyntaxError(tag string, class error, text string) *imap.Error {
	err := imap.NewBadError(tag, class, text)
	switch class {
	case ErrLiteralTooLarge:
		err.Code = imap.ResponseCodeTooBig
	case ErrLineTooLong:
		err.Code = imap.ResponseCodeLimit
	default:
		err.Code = imap.ResponseCodeClientBug
	}
	return err
}
