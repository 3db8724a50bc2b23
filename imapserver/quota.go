package imapserver

import (
	"strconv"
	"strings"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseGetQuotaRoot parses the arguments of the GETQUOTAROOT command: a
// single mailbox name, decoded according to version.
func ParseGetQuotaRoot(req *imapwire.Request, version imap.ProtocolVersion) (*imap.QuotaArguments, error) {
	if err := checkCount(req, "Missing mailbox name."); err != nil {
		return nil, err
	}
	mailbox, err := nextMailbox(req, version, "Missing mailbox name.")
	if err != nil {
		return nil, err
	}
	return &imap.QuotaArguments{Tag: req.Tag, Name: mailbox}, nil
}

// ParseGetQuota parses the arguments of the GETQUOTA command: a single quota
// root. Quota roots are opaque and are not decoded.
func ParseGetQuota(req *imapwire.Request) (*imap.QuotaArguments, error) {
	if err := checkCount(req, "Missing quota root."); err != nil {
		return nil, err
	}
	root, err := nextString(req, "Missing quota root.")
	if err != nil {
		return nil, err
	}
	return &imap.QuotaArguments{Tag: req.Tag, Name: root}, nil
}

// ParseSetQuota parses the arguments of the SETQUOTA command: a quota root
// followed by a list of resource name and limit pairs.
func ParseSetQuota(req *imapwire.Request) (*imap.SetQuotaArguments, error) {
	switch req.Len() {
	case 0:
		return nil, req.Error(ErrMissingArgument, "Missing quota root.")
	case 1:
		return nil, req.Error(ErrMissingArgument, "Missing resource limits.")
	}

	root, err := nextString(req, "Missing quota root.")
	if err != nil {
		return nil, err
	}
	l, err := nextList(req, "Missing resource limits.")
	if err != nil {
		return nil, err
	}
	if err := expectEnd(req); err != nil {
		return nil, err
	}
	if len(l)%2 != 0 {
		return nil, req.Error(ErrInvalidArgument, "Missing resource limit.")
	}

	limits := make(map[imap.QuotaResourceType]int64, len(l)/2)
	for i := 0; i < len(l); i += 2 {
		resource := imap.QuotaResourceType(strings.ToUpper(l[i]))
		limit, err := strconv.ParseInt(l[i+1], 10, 64)
		if err != nil || limit < 0 {
			return nil, req.Error(ErrInvalidArgument, "Invalid resource limit.")
		}
		limits[resource] = limit
	}

	return &imap.SetQuotaArguments{Tag: req.Tag, Root: root, Limits: limits}, nil
}
