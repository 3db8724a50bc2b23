package imapwire

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/emersion/go-imapproto"
)

// An Encoder writes server responses.
//
// Most methods don't return an error, instead they defer error handling until
// CRLF is called. These methods return the Encoder so that calls can be
// chained.
type Encoder struct {
	// Version selects how mailbox names and strings are written. With
	// IMAP4rev2, non-ASCII strings may be quoted and mailbox names are sent
	// as UTF-8.
	Version imap.ProtocolVersion

	w   *bufio.Writer
	err error
}

// NewEncoder creates a new encoder.
func NewEncoder(w *bufio.Writer) *Encoder {
	return &Encoder{w: w, Version: imap.Rev1}
}

func (enc *Encoder) setErr(err error) {
	if enc.err == nil {
		enc.err = err
	}
}

func (enc *Encoder) writeString(s string) *Encoder {
	if enc.err != nil {
		return enc
	}
	if _, err := enc.w.WriteString(s); err != nil {
		enc.err = err
	}
	return enc
}

// CRLF writes a "\r\n" sequence and flushes the buffered writer.
func (enc *Encoder) CRLF() error {
	enc.writeString("\r\n")
	if enc.err != nil {
		err := enc.err
		enc.err = nil
		return err
	}
	return enc.w.Flush()
}

func (enc *Encoder) Atom(s string) *Encoder {
	return enc.writeString(s)
}

func (enc *Encoder) SP() *Encoder {
	return enc.writeString(" ")
}

func (enc *Encoder) Special(ch byte) *Encoder {
	return enc.writeString(string(ch))
}

func (enc *Encoder) Quoted(s string) *Encoder {
	var sb strings.Builder
	sb.Grow(2 + len(s))
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '"' || ch == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(ch)
	}
	sb.WriteByte('"')
	return enc.writeString(sb.String())
}

// String writes s as a quoted string if possible, as a literal otherwise.
func (enc *Encoder) String(s string) *Encoder {
	if !enc.validQuoted(s) {
		return enc.Literal([]byte(s))
	}
	return enc.Quoted(s)
}

func (enc *Encoder) validQuoted(s string) bool {
	if len(s) > 4096 {
		return false
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]

		// NUL, CR and LF are never valid
		switch ch {
		case 0, '\r', '\n':
			return false
		}

		if enc.Version != imap.Rev2 && ch > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// Literal writes b as a literal. Server literals never need a continuation.
func (enc *Encoder) Literal(b []byte) *Encoder {
	enc.writeString("{")
	enc.writeString(strconv.Itoa(len(b)))
	enc.writeString("}\r\n")
	if enc.err != nil {
		return enc
	}
	if _, err := enc.w.Write(b); err != nil {
		enc.setErr(err)
	}
	return enc
}

// Mailbox writes a mailbox name, encoded for the protocol version.
func (enc *Encoder) Mailbox(name string) *Encoder {
	if imap.CanonicalMailboxName(name) == imap.InboxName {
		return enc.Atom(imap.InboxName)
	}
	return enc.String(imap.EncodeMailboxName(name, enc.Version))
}

func (enc *Encoder) Number64(v int64) *Encoder {
	if v < 0 {
		enc.setErr(fmt.Errorf("imapwire: cannot encode negative number %v", v))
		return enc
	}
	return enc.writeString(strconv.FormatInt(v, 10))
}

// List writes a parenthesized list.
func (enc *Encoder) List(n int, f func(i int)) *Encoder {
	enc.Special('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			enc.SP()
		}
		f(i)
	}
	enc.Special(')')
	return enc
}

func (enc *Encoder) Text(s string) *Encoder {
	return enc.writeString(s)
}
