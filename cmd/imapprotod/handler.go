package main

import (
	"errors"

	"github.com/emersion/go-sasl"
	"github.com/rs/zerolog"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapserver"
	"github.com/emersion/go-imapproto/imapwire"
	"github.com/emersion/go-imapproto/permission"
)

var errInvalidCredentials = errors.New("invalid credentials")

// handler logs every parsed command and accepts it. It keeps no mailbox
// state; quota requests are answered from the configured limits.
type handler struct {
	log      zerolog.Logger
	username string
	password string
	quota    map[imap.QuotaResourceType]int64
	caps     imap.CapSet
}

func newHandler(log zerolog.Logger, cfg *config) *handler {
	return &handler{
		log:      log,
		username: cfg.Username,
		password: cfg.Password,
		quota:    cfg.Quota,
		caps:     cfg.caps(),
	}
}

func (h *handler) Handle(conn *imapserver.Conn, cmd imapwire.Command, args imap.Arguments) error {
	ev := h.log.Debug().
		Str("remote", conn.NetConn().RemoteAddr().String()).
		Str("tag", args.CommandTag()).
		Str("command", cmd.String()).
		Str("version", conn.Version().String())
	if perm, ok := permission.ForCommand(cmd); ok {
		ev = ev.Str("permission", perm.Name())
	}
	ev.Msg("command")

	switch args := args.(type) {
	case *imap.LoginArguments:
		return h.login(conn, args.Username, args.Password)
	case *imap.QuotaArguments:
		if cmd == imapwire.CommandGetQuotaRoot {
			return h.getQuotaRoot(conn, args.Name)
		}
		return h.getQuota(conn, args.Name)
	case *imap.SetQuotaArguments:
		return &imap.Error{
			Type: imap.StatusResponseTypeNo,
			Code: imap.ResponseCodeNoPerm,
			Text: "Quota limits are read-only",
		}
	case *imap.AppendArguments:
		h.logAppend(args)
	}
	return nil
}

func (h *handler) NewSASLServer(conn *imapserver.Conn, mech string) (sasl.Server, error) {
	if mech != sasl.Plain {
		return nil, &imap.Error{
			Type: imap.StatusResponseTypeNo,
			Text: "SASL mechanism not supported",
		}
	}
	return sasl.NewPlainServer(func(identity, username, password string) error {
		if identity != "" && identity != username {
			return errors.New("cannot impersonate")
		}
		return h.checkCredentials(conn, username, password)
	}), nil
}

func (h *handler) login(conn *imapserver.Conn, username, password string) error {
	if err := h.checkCredentials(conn, username, password); err != nil {
		return &imap.Error{
			Type: imap.StatusResponseTypeNo,
			Code: imap.ResponseCodeAuthenticationFailed,
			Text: "Invalid credentials",
			Err:  err,
		}
	}
	return nil
}

func (h *handler) checkCredentials(conn *imapserver.Conn, username, password string) error {
	if username != h.username || password != h.password {
		h.log.Warn().
			Str("remote", conn.NetConn().RemoteAddr().String()).
			Str("username", username).
			Msg("authentication failed")
		return errInvalidCredentials
	}

	h.log.Info().
		Str("remote", conn.NetConn().RemoteAddr().String()).
		Str("username", username).
		Msg("authenticated")
	return nil
}

// All mailboxes share the single quota root "".
func (h *handler) getQuotaRoot(conn *imapserver.Conn, mailbox string) error {
	err := conn.Untagged(func(enc *imapwire.Encoder) {
		enc.Atom("QUOTAROOT").SP().Mailbox(mailbox).SP().String("")
	})
	if err != nil {
		return err
	}
	return h.writeQuota(conn, "")
}

func (h *handler) getQuota(conn *imapserver.Conn, root string) error {
	if root != "" {
		return &imap.Error{
			Type: imap.StatusResponseTypeNo,
			Code: imap.ResponseCodeNonExistent,
			Text: "No such quota root",
		}
	}
	return h.writeQuota(conn, root)
}

func (h *handler) writeQuota(conn *imapserver.Conn, root string) error {
	resources := sortedQuotaResources(h.caps)
	if len(resources) == 0 {
		return nil
	}
	return conn.Untagged(func(enc *imapwire.Encoder) {
		enc.Atom("QUOTA").SP().String(root).SP()
		enc.List(len(resources), func(i int) {
			t := resources[i]
			enc.Atom(string(t)).SP().Number64(0).SP().Number64(h.quota[t])
		})
	})
}

func (h *handler) logAppend(args *imap.AppendArguments) {
	ev := h.log.Info().
		Str("mailbox", args.Mailbox).
		Int("size", len(args.Message))

	hdr, err := args.Header()
	if err != nil {
		ev.Err(err).Msg("append with malformed header")
		return
	}
	if subject, err := hdr.Subject(); err == nil {
		ev = ev.Str("subject", subject)
	}
	if from, err := hdr.AddressList("From"); err == nil && len(from) > 0 {
		ev = ev.Str("from", from[0].Address)
	}
	ev.Msg("append")
}
