package imapserver

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseAuthenticate parses the arguments of the AUTHENTICATE command: a SASL
// mechanism name and an optional initial response (RFC 4959).
func ParseAuthenticate(req *imapwire.Request) (*imap.AuthenticateArguments, error) {
	switch n := req.Len(); {
	case n == 0:
		return nil, req.Error(ErrMissingArgument, "Missing authentication mechanism.")
	case n > 2:
		return nil, req.Error(ErrTooManyArguments, tooManyArgumentsText)
	}

	mech, err := nextAtom(req, "Missing authentication mechanism.")
	if err != nil {
		return nil, err
	}
	args := &imap.AuthenticateArguments{Tag: req.Tag, Mechanism: strings.ToUpper(mech)}

	if req.Len() > 0 {
		s, err := nextString(req, "Missing initial response.")
		if err != nil {
			return nil, err
		}
		if args.InitialResponse, err = decodeSASL(s); err != nil {
			return nil, req.Error(ErrInvalidArgument, "Invalid initial response.")
		}
	}
	return args, nil
}

func (c *Conn) handleAuthenticate(args *imap.AuthenticateArguments) error {
	h, ok := c.server.options.Handler.(SASLHandler)
	if !ok || !c.server.options.Caps.Has(imap.AuthCap(args.Mechanism)) {
		return &imap.Error{
			Type: imap.StatusResponseTypeNo,
			Text: "SASL mechanism not supported",
		}
	}

	saslServer, err := h.NewSASLServer(c, args.Mechanism)
	if err != nil {
		return err
	}

	resp := args.InitialResponse
	for {
		challenge, done, err := saslServer.Next(resp)
		if err != nil {
			var imapErr *imap.Error
			if errors.As(err, &imapErr) {
				return err
			}
			return &imap.Error{
				Type: imap.StatusResponseTypeNo,
				Code: imap.ResponseCodeAuthenticationFailed,
				Text: "Authentication failed",
				Err:  err,
			}
		} else if done {
			return nil
		}

		var challengeStr string
		if len(challenge) > 0 {
			challengeStr = encodeSASL(challenge)
		}
		if err := c.writeContReq(challengeStr); err != nil {
			return err
		}

		line, err := c.readLine()
		if err != nil {
			return err
		} else if string(line) == "*" {
			return &imap.Error{
				Type: imap.StatusResponseTypeBad,
				Text: "AUTHENTICATE cancelled",
			}
		}

		resp, err = decodeSASL(string(line))
		if err != nil {
			return &imap.Error{
				Type: imap.StatusResponseTypeBad,
				Text: "Malformed SASL response",
			}
		}
	}
}

func encodeSASL(b []byte) string {
	if len(b) == 0 {
		return "="
	}
	return base64.StdEncoding.EncodeToString(b)
}

func decodeSASL(s string) ([]byte, error) {
	if s == "=" {
		// go-sasl treats nil as no challenge/response, so return a non-nil
		// empty byte slice
		return []byte{}, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
