package imapserver

import (
	"fmt"
	"strings"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseAppend parses the arguments of the APPEND command: a mailbox name, an
// optional flag list, an optional date-time and the message literal.
func ParseAppend(req *imapwire.Request, version imap.ProtocolVersion) (*imap.AppendArguments, error) {
	switch req.Len() {
	case 0:
		return nil, req.Error(ErrMissingArgument, "Missing mailbox name.")
	case 1:
		return nil, req.Error(ErrMissingArgument, "Missing message literal.")
	}

	mailbox, err := nextMailbox(req, version, "Missing mailbox name.")
	if err != nil {
		return nil, err
	}
	args := &imap.AppendArguments{Tag: req.Tag, Mailbox: mailbox}

	if tok, _ := req.Peek(); tok.Kind == imapwire.TokenListStart {
		req.Next()
		if args.Flags, err = nextFlags(req); err != nil {
			return nil, err
		}
	}

	if tok, _ := req.Peek(); tok.Kind == imapwire.TokenQuoted {
		req.Next()
		s, _ := tok.String()
		t, err := imap.ParseDateTime(s)
		if err != nil {
			return nil, req.Error(ErrInvalidArgument, "Invalid date-time.")
		}
		args.Time = t
	}

	tok, ok := req.Next()
	if !ok {
		return nil, req.Error(ErrMissingArgument, "Missing message literal.")
	} else if tok.Kind != imapwire.TokenLiteral {
		return nil, req.Error(ErrInvalidArgument, fmt.Sprintf("Expected message literal, found %v.", tok.Kind))
	}
	args.Message = tok.Value

	if err := expectEnd(req); err != nil {
		return nil, err
	}
	return args, nil
}

// nextFlags consumes flags up to and including the closing parenthesis.
func nextFlags(req *imapwire.Request) ([]imap.Flag, error) {
	var flags []imap.Flag
	for {
		tok, ok := req.Next()
		if !ok {
			return nil, req.Error(ErrInvalidArgument, "Missing ')'.")
		}
		if tok.Kind == imapwire.TokenListEnd {
			return flags, nil
		}
		s := string(tok.Value)
		if tok.Kind != imapwire.TokenAtom || !isValidFlag(s) {
			return nil, req.Error(ErrInvalidArgument, "Invalid flag.")
		}
		flags = append(flags, imap.CanonicalFlag(s))
	}
}

// isValidFlag checks whether s satisfies flag-keyword / flag-extension.
func isValidFlag(s string) bool {
	if strings.HasPrefix(s, "\\") {
		s = s[1:]
	}
	return s != "" && !strings.ContainsAny(s, "\\%*]")
}
