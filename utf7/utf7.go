// Package utf7 implements the modified UTF-7 encoding defined in RFC 3501
// section 5.1.3.
//
// Modified UTF-7 is used by IMAP4rev1 to transfer non-ASCII mailbox names.
package utf7

import (
	"encoding/base64"
	"errors"

	"golang.org/x/text/encoding"
)

const (
	min = 0x20 // Minimum self-representing UTF-7 value
	max = 0x7E // Maximum self-representing UTF-7 value

	repl = '\uFFFD' // Unicode replacement code point
)

// ErrInvalidUTF7 is returned when decoding malformed modified UTF-7.
var ErrInvalidUTF7 = errors.New("utf7: invalid UTF-7")

// Modified base64 uses "," instead of "/" and no padding.
var b64 = base64.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,").WithPadding(base64.NoPadding)

type utf7Encoding struct{}

// Encoding is the modified UTF-7 encoding.
var Encoding encoding.Encoding = utf7Encoding{}

func (utf7Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{ascii: true}}
}

func (utf7Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{}}
}

// Decode decodes a modified UTF-7 string.
func Decode(s string) (string, error) {
	return Encoding.NewDecoder().String(s)
}

// Encode encodes a string to modified UTF-7. Invalid UTF-8 sequences are
// replaced with U+FFFD.
func Encode(s string) string {
	out, err := Encoding.NewEncoder().String(s)
	if err != nil {
		panic(err) // unreachable
	}
	return out
}
