package imap

import (
	"strings"
)

// Cap represents an IMAP capability.
type Cap string

// Registered capabilities understood by the command parsers.
//
// See: https://www.iana.org/assignments/imap-capabilities/
const (
	CapIMAP4rev1 Cap = "IMAP4rev1" // RFC 3501
	CapIMAP4rev2 Cap = "IMAP4rev2" // RFC 9051

	CapAuthPlain Cap = "AUTH=PLAIN"

	CapStartTLS      Cap = "STARTTLS"
	CapLoginDisabled Cap = "LOGINDISABLED"

	// Folded in IMAP4rev2
	CapNamespace    Cap = "NAMESPACE"     // RFC 2342
	CapUnselect     Cap = "UNSELECT"      // RFC 3691
	CapUIDPlus      Cap = "UIDPLUS"       // RFC 4315
	CapEnable       Cap = "ENABLE"        // RFC 5161
	CapIdle         Cap = "IDLE"          // RFC 2177
	CapSASLIR       Cap = "SASL-IR"       // RFC 4959
	CapLiteralMinus Cap = "LITERAL-"      // RFC 7888
	CapStatusSize   Cap = "STATUS=SIZE"   // RFC 8438
	CapListStatus   Cap = "LIST-STATUS"   // RFC 5819
	CapListExtended Cap = "LIST-EXTENDED" // RFC 5258

	CapACL         Cap = "ACL"         // RFC 4314
	CapLiteralPlus Cap = "LITERAL+"    // RFC 7888
	CapQuota       Cap = "QUOTA"       // RFC 9208
	CapQuotaSet    Cap = "QUOTASET"    // RFC 9208
	CapUTF8Accept  Cap = "UTF8=ACCEPT" // RFC 6855
	CapUTF8Only    Cap = "UTF8=ONLY"   // RFC 6855
)

var imap4rev2Caps = CapSet{
	CapNamespace:    {},
	CapUnselect:     {},
	CapUIDPlus:      {},
	CapEnable:       {},
	CapIdle:         {},
	CapSASLIR:       {},
	CapListExtended: {},
	CapListStatus:   {},
	CapLiteralMinus: {},
	CapStatusSize:   {},
}

// AuthCap returns the capability name for an SASL authentication mechanism.
func AuthCap(mechanism string) Cap {
	return Cap("AUTH=" + mechanism)
}

// QuotaResourceCap returns the capability name advertising support for a
// QUOTA resource type.
func QuotaResourceCap(t QuotaResourceType) Cap {
	return Cap("QUOTA=RES-" + string(t))
}

// CapSet is a set of capabilities.
type CapSet map[Cap]struct{}

func (set CapSet) has(c Cap) bool {
	_, ok := set[c]
	return ok
}

// Has checks whether a capability is supported.
//
// Some capabilities are implied by others, as such Has may return true even if
// the capability is not in the map.
func (set CapSet) Has(c Cap) bool {
	if set.has(c) {
		return true
	}

	if set.has(CapIMAP4rev2) && imap4rev2Caps.has(c) {
		return true
	}

	if c == CapLiteralMinus && set.has(CapLiteralPlus) {
		return true
	}
	if c == CapUTF8Accept && set.has(CapUTF8Only) {
		return true
	}

	return false
}

// AuthMechanisms returns the list of supported SASL mechanisms for
// authentication.
func (set CapSet) AuthMechanisms() []string {
	var l []string
	for c := range set {
		if !strings.HasPrefix(string(c), "AUTH=") {
			continue
		}
		mech := strings.TrimPrefix(string(c), "AUTH=")
		l = append(l, mech)
	}
	return l
}

// QuotaResourceTypes returns the list of supported QUOTA resource types.
func (set CapSet) QuotaResourceTypes() []QuotaResourceType {
	var l []QuotaResourceType
	for c := range set {
		if !strings.HasPrefix(string(c), "QUOTA=RES-") {
			continue
		}
		t := strings.TrimPrefix(string(c), "QUOTA=RES-")
		l = append(l, QuotaResourceType(t))
	}
	return l
}

// ProtocolVersion returns the protocol revision a client enabling these
// capabilities switches to.
//
// A connection starts in IMAP4rev1 and moves to IMAP4rev2 once the client
// sends "ENABLE IMAP4rev2".
func (set CapSet) ProtocolVersion() ProtocolVersion {
	if set.has(CapIMAP4rev2) {
		return Rev2
	}
	return Rev1
}
