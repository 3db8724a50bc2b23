package imapwire

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// TokenKind is the kind of a Token.
type TokenKind int

const (
	TokenAtom      TokenKind = 1 + iota // bare atom, e.g. INBOX or \Seen
	TokenQuoted                         // quoted string, unescaped
	TokenLiteral                        // literal, raw bytes
	TokenListStart                      // "("
	TokenListEnd                        // ")"
)

// String implements fmt.Stringer.
func (kind TokenKind) String() string {
	switch kind {
	case TokenAtom:
		return "atom"
	case TokenQuoted:
		return "quoted string"
	case TokenLiteral:
		return "literal"
	case TokenListStart:
		return "'('"
	case TokenListEnd:
		return "')'"
	default:
		panic(fmt.Errorf("imapwire: unknown token kind %d", int(kind)))
	}
}

// Token is a lexical unit of a command.
//
// The value of a quoted string has its escaping removed. The value of a
// literal holds exactly the number of bytes announced by the client. List
// delimiters have no value.
type Token struct {
	Kind  TokenKind
	Value []byte
}

var errInvalidUTF8 = errors.New("Invalid UTF-8 string.")

// String returns the textual value of an atom, quoted string or literal.
//
// List delimiters cannot be interpreted as text and produce an error.
func (tok Token) String() (string, error) {
	switch tok.Kind {
	case TokenAtom:
		return string(tok.Value), nil
	case TokenQuoted, TokenLiteral:
		if !utf8.Valid(tok.Value) {
			return "", errInvalidUTF8
		}
		return string(tok.Value), nil
	default:
		return "", fmt.Errorf("Expected a string, found %v.", tok.Kind)
	}
}

// IsAtom reports whether the token is an atom equal to s, case-insensitively.
func (tok Token) IsAtom(s string) bool {
	if tok.Kind != TokenAtom || len(tok.Value) != len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if toUpper(tok.Value[i]) != toUpper(s[i]) {
			return false
		}
	}
	return true
}

// IsAtomChar reports whether ch may appear in an atom.
func IsAtomChar(ch byte) bool {
	switch ch {
	case '(', ')', '{', '"':
		return false
	default:
		return ch > ' ' && ch < 0x7F
	}
}

// IsTagChar reports whether ch may appear in a command tag.
func IsTagChar(ch byte) bool {
	switch ch {
	case '+', '%', '*', '\\':
		return false
	default:
		return IsAtomChar(ch)
	}
}

func toUpper(ch byte) byte {
	if 'a' <= ch && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
