package imap

import (
	"strings"
)

// LoginArguments contains the arguments of the LOGIN command.
type LoginArguments struct {
	Tag      string
	Username string
	Password string
}

func (args *LoginArguments) CommandTag() string { return args.Tag }

// AuthenticateArguments contains the arguments of the AUTHENTICATE command.
type AuthenticateArguments struct {
	Tag       string
	Mechanism string // upper-cased
	// InitialResponse is the SASL initial response (RFC 4959). It is nil if
	// the client didn't send one, and non-nil but empty if the client sent
	// "=".
	InitialResponse []byte
}

func (args *AuthenticateArguments) CommandTag() string { return args.Tag }

// EnableArguments contains the arguments of the ENABLE command.
type EnableArguments struct {
	Tag  string
	Caps []Cap
}

func (args *EnableArguments) CommandTag() string { return args.Tag }

// Has reports whether the client asked to enable c. Capability names are
// case-insensitive.
func (args *EnableArguments) Has(c Cap) bool {
	for _, enabled := range args.Caps {
		if strings.EqualFold(string(enabled), string(c)) {
			return true
		}
	}
	return false
}
