package imapwire

import (
	"github.com/emersion/go-imapproto"
)

// Request is a complete command received from a client.
//
// A Request is handed to exactly one command parser, which consumes its
// tokens.
type Request struct {
	Tag     string
	Command Command
	UID     bool // command was prefixed with "UID"
	Tokens  []Token
}

// Len returns the number of tokens left.
func (req *Request) Len() int {
	return len(req.Tokens)
}

// Next consumes the next token. ok is false if no tokens are left.
func (req *Request) Next() (tok Token, ok bool) {
	if len(req.Tokens) == 0 {
		return Token{}, false
	}
	tok = req.Tokens[0]
	req.Tokens[0] = Token{}
	req.Tokens = req.Tokens[1:]
	return tok, true
}

// Peek returns the next token without consuming it.
func (req *Request) Peek() (tok Token, ok bool) {
	if len(req.Tokens) == 0 {
		return Token{}, false
	}
	return req.Tokens[0], true
}

// Error returns a BAD error tagged with the request's tag.
func (req *Request) Error(class error, text string) *imap.Error {
	return imap.NewBadError(req.Tag, class, text)
}
