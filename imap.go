// Package imap contains the types shared by the IMAP command receiver and the
// command argument parsers.
//
// IMAP4rev1 is defined in RFC 3501, IMAP4rev2 is defined in RFC 9051.
package imap

import (
	"fmt"
	"strings"
)

// ProtocolVersion is the IMAP protocol revision spoken on a connection.
//
// The version is negotiated once per connection and changes how some
// arguments are decoded, most notably mailbox names.
type ProtocolVersion int

const (
	Rev1 ProtocolVersion = 1 + iota // RFC 3501
	Rev2                            // RFC 9051
)

// String implements fmt.Stringer.
func (v ProtocolVersion) String() string {
	switch v {
	case Rev1:
		return string(CapIMAP4rev1)
	case Rev2:
		return string(CapIMAP4rev2)
	default:
		panic(fmt.Errorf("imap: unknown protocol version %d", int(v)))
	}
}

// Flag is a message flag.
//
// Message flags are defined in RFC 9051 section 2.3.2.
type Flag string

const (
	// System flags
	FlagSeen     Flag = "\\Seen"
	FlagAnswered Flag = "\\Answered"
	FlagFlagged  Flag = "\\Flagged"
	FlagDeleted  Flag = "\\Deleted"
	FlagDraft    Flag = "\\Draft"

	// Widely used flags
	FlagForwarded Flag = "$Forwarded"
	FlagMDNSent   Flag = "$MDNSent" // Message Disposition Notification sent
	FlagJunk      Flag = "$Junk"
	FlagNotJunk   Flag = "$NotJunk"
	FlagPhishing  Flag = "$Phishing"
	FlagImportant Flag = "$Important" // RFC 8457
)

var systemFlags = []Flag{FlagSeen, FlagAnswered, FlagFlagged, FlagDeleted, FlagDraft}

// CanonicalFlag returns the canonical form of a flag. System flags are
// case-insensitive.
func CanonicalFlag(s string) Flag {
	for _, f := range systemFlags {
		if strings.EqualFold(s, string(f)) {
			return f
		}
	}
	return Flag(s)
}

// Arguments is implemented by the parsed arguments of every command.
type Arguments interface {
	// CommandTag returns the tag of the command the arguments belong to.
	CommandTag() string
}

// NoArguments is the result of parsing a command which takes no arguments,
// e.g. NOOP or CAPABILITY.
type NoArguments struct {
	Tag string
}

func (args *NoArguments) CommandTag() string { return args.Tag }
