package imapserver

import (
	"sort"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

func (c *Conn) handleCapability() error {
	caps := c.availableCaps()
	return c.Untagged(func(enc *imapwire.Encoder) {
		enc.Atom("CAPABILITY")
		for _, name := range caps {
			enc.SP().Atom(string(name))
		}
	})
}

// availableCaps returns the capabilities to advertise, IMAP4rev1 first and
// the rest sorted.
func (c *Conn) availableCaps() []imap.Cap {
	var caps []imap.Cap
	for name := range c.server.options.Caps {
		if name != imap.CapIMAP4rev1 && name != imap.CapStartTLS {
			caps = append(caps, name)
		}
	}
	if c.canStartTLS() {
		caps = append(caps, imap.CapStartTLS)
	}
	sort.Slice(caps, func(i, j int) bool {
		return caps[i] < caps[j]
	})
	return append([]imap.Cap{imap.CapIMAP4rev1}, caps...)
}
