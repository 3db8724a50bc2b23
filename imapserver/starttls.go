package imapserver

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/emersion/go-imapproto"
)

const tlsHandshakeTimeout = 30 * time.Second

func (c *Conn) canStartTLS() bool {
	_, isTLS := c.NetConn().(*tls.Conn)
	return c.server.options.TLSConfig != nil && !isTLS
}

// handleStartTLS answers STARTTLS and upgrades the connection. The tagged OK
// is written here, before the handshake. A failed handshake leaves the
// connection unusable and is returned as a plain error.
func (c *Conn) handleStartTLS(tag string) error {
	switch {
	case c.server.options.TLSConfig == nil:
		return &imap.Error{
			Type: imap.StatusResponseTypeNo,
			Code: imap.ResponseCodeCannot,
			Text: "STARTTLS not supported",
		}
	case !c.canStartTLS():
		return &imap.Error{
			Type: imap.StatusResponseTypeBad,
			Text: "TLS is already active",
		}
	}

	// No cleartext response may follow the OK
	enc := newResponseEncoder(c)
	defer enc.end()

	ok := &imap.StatusResponse{
		Type: imap.StatusResponseTypeOK,
		Text: "Begin TLS negotiation now",
	}
	if err := writeStatusResp(enc.Encoder, tag, ok); err != nil {
		return err
	}

	rawConn := c.NetConn()
	var plain net.Conn = rawConn
	if pipelined := c.receiver.TakeBuffered(); len(pipelined) > 0 {
		plain = startTLSConn{
			Conn: rawConn,
			r:    io.MultiReader(bytes.NewReader(pipelined), rawConn),
		}
	}

	tlsConn := tls.Server(plain, c.server.options.TLSConfig)
	ctx, cancel := context.WithTimeout(context.Background(), tlsHandshakeTimeout)
	defer cancel()
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		metricTLSHandshakes.WithLabelValues("error").Inc()
		return fmt.Errorf("TLS handshake: %w", err)
	}
	metricTLSHandshakes.WithLabelValues("ok").Inc()

	c.mutex.Lock()
	c.conn = tlsConn
	c.mutex.Unlock()
	c.bw.Reset(tlsConn)
	return nil
}

// startTLSConn replays bytes read ahead of the handshake.
type startTLSConn struct {
	net.Conn
	r io.Reader
}

func (conn startTLSConn) Read(b []byte) (int, error) {
	return conn.r.Read(b)
}
