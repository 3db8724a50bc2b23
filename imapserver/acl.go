package imapserver

import (
	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseSetACL parses the arguments of the SETACL command.
func ParseSetACL(req *imapwire.Request, version imap.ProtocolVersion) (*imap.SetACLArguments, error) {
	if err := checkCount(req, "Missing mailbox name.", "Missing identifier.", "Missing access rights."); err != nil {
		return nil, err
	}
	mailbox, err := nextMailbox(req, version, "Missing mailbox name.")
	if err != nil {
		return nil, err
	}
	identifier, err := nextString(req, "Missing identifier.")
	if err != nil {
		return nil, err
	}
	rights, err := nextString(req, "Missing access rights.")
	if err != nil {
		return nil, err
	}
	rm, rs, err := imap.NewRights(rights)
	if err != nil {
		return nil, req.Error(ErrInvalidArgument, "Invalid access rights.")
	}
	return &imap.SetACLArguments{
		Tag:          req.Tag,
		Mailbox:      mailbox,
		Identifier:   imap.RightsIdentifier(identifier),
		Modification: rm,
		Rights:       rs,
	}, nil
}

// ParseACL parses the arguments of the DELETEACL and LISTRIGHTS commands.
func ParseACL(req *imapwire.Request, version imap.ProtocolVersion) (*imap.ACLArguments, error) {
	if err := checkCount(req, "Missing mailbox name.", "Missing identifier."); err != nil {
		return nil, err
	}
	mailbox, err := nextMailbox(req, version, "Missing mailbox name.")
	if err != nil {
		return nil, err
	}
	identifier, err := nextString(req, "Missing identifier.")
	if err != nil {
		return nil, err
	}
	return &imap.ACLArguments{
		Tag:        req.Tag,
		Mailbox:    mailbox,
		Identifier: imap.RightsIdentifier(identifier),
	}, nil
}
