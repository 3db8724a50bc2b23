package imapserver

import (
	"errors"
	"fmt"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// Argument error classes. Parsers return them wrapped in a tagged BAD
// *imap.Error.
var (
	ErrMissingArgument  = errors.New("imapserver: missing argument")
	ErrTooManyArguments = errors.New("imapserver: too many arguments")
	ErrInvalidArgument  = errors.New("imapserver: invalid argument")
)

const tooManyArgumentsText = "Too many arguments."

// ParseArguments parses the arguments of a request, dispatching on its
// command. version is the protocol version negotiated on the connection.
func ParseArguments(req *imapwire.Request, version imap.ProtocolVersion) (imap.Arguments, error) {
	var (
		args imap.Arguments
		err  error
	)
	switch req.Command {
	case imapwire.CommandCapability, imapwire.CommandNoop, imapwire.CommandLogout,
		imapwire.CommandStartTLS, imapwire.CommandNamespace, imapwire.CommandIdle,
		imapwire.CommandCheck, imapwire.CommandClose, imapwire.CommandUnselect:
		args, err = ParseNoArguments(req)
	case imapwire.CommandAuthenticate:
		args, err = ParseAuthenticate(req)
	case imapwire.CommandLogin:
		args, err = ParseLogin(req)
	case imapwire.CommandEnable:
		args, err = ParseEnable(req)
	case imapwire.CommandSelect, imapwire.CommandExamine, imapwire.CommandCreate,
		imapwire.CommandDelete, imapwire.CommandSubscribe, imapwire.CommandUnsubscribe,
		imapwire.CommandGetACL, imapwire.CommandMyRights:
		args, err = ParseMailbox(req, version)
	case imapwire.CommandRename:
		args, err = ParseRename(req, version)
	case imapwire.CommandList, imapwire.CommandLsub:
		args, err = ParseList(req, version)
	case imapwire.CommandStatus:
		args, err = ParseStatus(req, version)
	case imapwire.CommandAppend:
		args, err = ParseAppend(req, version)
	case imapwire.CommandExpunge:
		args, err = ParseExpunge(req)
	case imapwire.CommandGetQuota:
		args, err = ParseGetQuota(req)
	case imapwire.CommandGetQuotaRoot:
		args, err = ParseGetQuotaRoot(req, version)
	case imapwire.CommandSetQuota:
		args, err = ParseSetQuota(req)
	case imapwire.CommandSetACL:
		args, err = ParseSetACL(req, version)
	case imapwire.CommandDeleteACL, imapwire.CommandListRights:
		args, err = ParseACL(req, version)
	default:
		panic(fmt.Errorf("imapserver: unhandled command %v", req.Command))
	}
	if err != nil {
		return nil, err
	}
	return args, nil
}

// ParseNoArguments parses the arguments of a command which takes none.
func ParseNoArguments(req *imapwire.Request) (*imap.NoArguments, error) {
	if req.Len() > 0 {
		return nil, req.Error(ErrTooManyArguments, tooManyArgumentsText)
	}
	return &imap.NoArguments{Tag: req.Tag}, nil
}

// checkCount checks the number of tokens before any of them is interpreted.
// missing holds the error text for each absent mandatory argument.
func checkCount(req *imapwire.Request, missing ...string) error {
	if n := req.Len(); n < len(missing) {
		return req.Error(ErrMissingArgument, missing[n])
	} else if n > len(missing) {
		return req.Error(ErrTooManyArguments, tooManyArgumentsText)
	}
	return nil
}

func nextString(req *imapwire.Request, missing string) (string, error) {
	tok, ok := req.Next()
	if !ok {
		return "", req.Error(ErrMissingArgument, missing)
	}
	s, err := tok.String()
	if err != nil {
		return "", req.Error(ErrInvalidArgument, err.Error())
	}
	return s, nil
}

func nextMailbox(req *imapwire.Request, version imap.ProtocolVersion, missing string) (string, error) {
	s, err := nextString(req, missing)
	if err != nil {
		return "", err
	}
	return imap.DecodeMailboxName(s, version), nil
}

func nextAtom(req *imapwire.Request, missing string) (string, error) {
	tok, ok := req.Next()
	if !ok {
		return "", req.Error(ErrMissingArgument, missing)
	}
	if tok.Kind != imapwire.TokenAtom {
		return "", req.Error(ErrInvalidArgument, fmt.Sprintf("Expected an atom, found %v.", tok.Kind))
	}
	return string(tok.Value), nil
}

// nextList consumes a parenthesized list of strings. It doesn't accept
// nested lists.
func nextList(req *imapwire.Request, missing string) ([]string, error) {
	tok, ok := req.Next()
	if !ok {
		return nil, req.Error(ErrMissingArgument, missing)
	}
	if tok.Kind != imapwire.TokenListStart {
		return nil, req.Error(ErrInvalidArgument, fmt.Sprintf("Expected a list, found %v.", tok.Kind))
	}

	var l []string
	for {
		tok, ok := req.Next()
		if !ok {
			return nil, req.Error(ErrInvalidArgument, "Missing ')'.")
		}
		if tok.Kind == imapwire.TokenListEnd {
			return l, nil
		}
		s, err := tok.String()
		if err != nil {
			return nil, req.Error(ErrInvalidArgument, err.Error())
		}
		l = append(l, s)
	}
}

func expectEnd(req *imapwire.Request) error {
	if req.Len() > 0 {
		return req.Error(ErrTooManyArguments, tooManyArgumentsText)
	}
	return nil
}
