package imapserver

import (
	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseMailbox parses the arguments of a command which takes a single
// mailbox name.
func ParseMailbox(req *imapwire.Request, version imap.ProtocolVersion) (*imap.MailboxArguments, error) {
	if err := checkCount(req, "Missing mailbox name."); err != nil {
		return nil, err
	}
	mailbox, err := nextMailbox(req, version, "Missing mailbox name.")
	if err != nil {
		return nil, err
	}
	return &imap.MailboxArguments{Tag: req.Tag, Mailbox: mailbox}, nil
}

func ParseRename(req *imapwire.Request, version imap.ProtocolVersion) (*imap.RenameArguments, error) {
	if err := checkCount(req, "Missing mailbox name.", "Missing new mailbox name."); err != nil {
		return nil, err
	}
	mailbox, err := nextMailbox(req, version, "Missing mailbox name.")
	if err != nil {
		return nil, err
	}
	newName, err := nextMailbox(req, version, "Missing new mailbox name.")
	if err != nil {
		return nil, err
	}
	return &imap.RenameArguments{Tag: req.Tag, Mailbox: mailbox, NewName: newName}, nil
}
