package imapserver

import (
	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseList parses the arguments of the LIST and LSUB commands. The
// extended forms of RFC 5258 are not supported.
func ParseList(req *imapwire.Request, version imap.ProtocolVersion) (*imap.ListArguments, error) {
	if err := checkCount(req, "Missing reference name.", "Missing mailbox pattern."); err != nil {
		return nil, err
	}
	ref, err := nextMailbox(req, version, "Missing reference name.")
	if err != nil {
		return nil, err
	}
	pattern, err := nextMailbox(req, version, "Missing mailbox pattern.")
	if err != nil {
		return nil, err
	}
	return &imap.ListArguments{Tag: req.Tag, Reference: ref, Pattern: pattern}, nil
}
