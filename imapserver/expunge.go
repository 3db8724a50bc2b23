package imapserver

import (
	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseExpunge parses the arguments of EXPUNGE, which takes none, and of
// UID EXPUNGE, which takes a UID set (RFC 4315).
func ParseExpunge(req *imapwire.Request) (*imap.ExpungeArguments, error) {
	if !req.UID {
		if err := expectEnd(req); err != nil {
			return nil, err
		}
		return &imap.ExpungeArguments{Tag: req.Tag}, nil
	}

	if err := checkCount(req, "Missing UID set."); err != nil {
		return nil, err
	}
	s, err := nextAtom(req, "Missing UID set.")
	if err != nil {
		return nil, err
	}
	uids, err := imap.ParseUIDSet(s)
	if err != nil {
		return nil, req.Error(ErrInvalidArgument, "Invalid UID set.")
	}
	return &imap.ExpungeArguments{Tag: req.Tag, UIDs: uids}, nil
}
