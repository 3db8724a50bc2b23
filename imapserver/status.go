package imapserver

import (
	"fmt"
	"strings"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseStatus parses the arguments of the STATUS command. RECENT is only
// accepted from IMAP4rev1 clients.
func ParseStatus(req *imapwire.Request, version imap.ProtocolVersion) (*imap.StatusArguments, error) {
	switch req.Len() {
	case 0:
		return nil, req.Error(ErrMissingArgument, "Missing mailbox name.")
	case 1:
		return nil, req.Error(ErrMissingArgument, "Missing status items.")
	}

	mailbox, err := nextMailbox(req, version, "Missing mailbox name.")
	if err != nil {
		return nil, err
	}
	l, err := nextList(req, "Missing status items.")
	if err != nil {
		return nil, err
	}
	if err := expectEnd(req); err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return nil, req.Error(ErrMissingArgument, "Missing status items.")
	}

	items := make([]imap.StatusItem, len(l))
	for i, s := range l {
		item := imap.StatusItem(strings.ToUpper(s))
		if !imap.StatusItemValid(item, version) {
			return nil, req.Error(ErrInvalidArgument, fmt.Sprintf("Unknown status item %v.", s))
		}
		items[i] = item
	}

	return &imap.StatusArguments{Tag: req.Tag, Mailbox: mailbox, Items: items}, nil
}
