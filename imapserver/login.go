package imapserver

import (
	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

func ParseLogin(req *imapwire.Request) (*imap.LoginArguments, error) {
	if err := checkCount(req, "Missing username.", "Missing password."); err != nil {
		return nil, err
	}
	username, err := nextString(req, "Missing username.")
	if err != nil {
		return nil, err
	}
	password, err := nextString(req, "Missing password.")
	if err != nil {
		return nil, err
	}
	return &imap.LoginArguments{Tag: req.Tag, Username: username, Password: password}, nil
}
