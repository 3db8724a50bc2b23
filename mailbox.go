package imap

import (
	"strings"

	"github.com/emersion/go-imapproto/utf7"
)

// The primary mailbox, as defined in RFC 3501 section 5.1.
const InboxName = "INBOX"

// CanonicalMailboxName returns the canonical form of a mailbox name. Mailbox
// names can be case-sensitive or case-insensitive depending on the backend
// implementation. The special INBOX mailbox is case-insensitive.
func CanonicalMailboxName(name string) string {
	if strings.EqualFold(name, InboxName) {
		return InboxName
	}
	return name
}

// DecodeMailboxName converts a mailbox name received on the wire to its
// logical form.
//
// IMAP4rev1 clients send mailbox names in modified UTF-7. IMAP4rev2 clients
// send UTF-8, which is returned as-is. A name which isn't valid modified
// UTF-7 is returned unchanged.
func DecodeMailboxName(name string, version ProtocolVersion) string {
	if version != Rev1 || !strings.Contains(name, "&") {
		return name
	}
	decoded, err := utf7.Decode(name)
	if err != nil {
		return name
	}
	return decoded
}

// EncodeMailboxName converts a logical mailbox name to its wire form.
func EncodeMailboxName(name string, version ProtocolVersion) string {
	if version != Rev1 {
		return name
	}
	return utf7.Encode(name)
}

// MailboxArguments contains the arguments of commands which take a single
// mailbox name: CREATE, DELETE, SELECT, EXAMINE, SUBSCRIBE, UNSUBSCRIBE,
// GETACL and MYRIGHTS.
type MailboxArguments struct {
	Tag     string
	Mailbox string
}

func (args *MailboxArguments) CommandTag() string { return args.Tag }

// RenameArguments contains the arguments of the RENAME command.
type RenameArguments struct {
	Tag     string
	Mailbox string
	NewName string
}

func (args *RenameArguments) CommandTag() string { return args.Tag }

// ListArguments contains the arguments of the LIST and LSUB commands.
type ListArguments struct {
	Tag       string
	Reference string
	Pattern   string
}

func (args *ListArguments) CommandTag() string { return args.Tag }
