package imapserver

import (
	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// ParseEnable parses the arguments of the ENABLE command. Capability names
// are kept as sent.
func ParseEnable(req *imapwire.Request) (*imap.EnableArguments, error) {
	if req.Len() == 0 {
		return nil, req.Error(ErrMissingArgument, "Missing capability.")
	}
	args := &imap.EnableArguments{Tag: req.Tag}
	for req.Len() > 0 {
		c, err := nextAtom(req, "Missing capability.")
		if err != nil {
			return nil, err
		}
		args.Caps = append(args.Caps, imap.Cap(c))
	}
	return args, nil
}

// handleEnable only knows about IMAP4rev2. Other capabilities are silently
// ignored, as allowed by RFC 5161.
func (c *Conn) handleEnable(args *imap.EnableArguments) error {
	enabled := imap.CapSet{}
	if args.Has(imap.CapIMAP4rev2) && c.server.options.Caps.Has(imap.CapIMAP4rev2) {
		enabled[imap.CapIMAP4rev2] = struct{}{}
	}
	if enabled.ProtocolVersion() == imap.Rev2 {
		c.version = imap.Rev2
	}

	return c.Untagged(func(enc *imapwire.Encoder) {
		enc.Atom("ENABLED")
		for name := range enabled {
			enc.SP().Atom(string(name))
		}
	})
}
