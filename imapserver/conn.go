package imapserver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

var internalServerErrorResp = &imap.StatusResponse{
	Type: imap.StatusResponseTypeNo,
	Code: imap.ResponseCodeServerBug,
	Text: "Internal server error",
}

const readBufferSize = 4096

// Conn is an IMAP connection.
type Conn struct {
	conn     net.Conn
	server   *Server
	bw       *bufio.Writer
	encMutex sync.Mutex
	mutex    sync.Mutex

	receiver *imapwire.Receiver
	buf      []byte
	version  imap.ProtocolVersion
	logout   bool
}

func newConn(c net.Conn, server *Server) *Conn {
	return &Conn{
		conn:     c,
		server:   server,
		bw:       bufio.NewWriter(c),
		receiver: imapwire.NewReceiver(&server.options.Receiver),
		buf:      make([]byte, readBufferSize),
		version:  imap.Rev1,
	}
}

// NetConn returns the underlying connection.
func (c *Conn) NetConn() net.Conn {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.conn
}

// Version returns the protocol version in use on the connection.
func (c *Conn) Version() imap.ProtocolVersion {
	return c.version
}

// Untagged writes an untagged response. f writes the response data after
// "* ", the line ending is added.
func (c *Conn) Untagged(f func(enc *imapwire.Encoder)) error {
	enc := newResponseEncoder(c)
	defer enc.end()
	enc.Atom("*").SP()
	f(enc.Encoder)
	return enc.CRLF()
}

func (c *Conn) serve() {
	defer func() {
		if v := recover(); v != nil {
			c.server.logger().Printf("panic serving %v: %v\n%s", c.conn.RemoteAddr(), v, debug.Stack())
		}

		c.NetConn().Close()
	}()

	metricConnection.Inc()

	err := c.writeStatusResp("", &imap.StatusResponse{
		Type: imap.StatusResponseTypeOK,
		Text: "IMAP server ready",
	})
	if err != nil {
		c.server.logger().Printf("failed to write greeting: %v", err)
		return
	}

	for !c.logout {
		n, err := c.conn.Read(c.buf)
		if n > 0 {
			if err := c.feed(c.buf[:n]); err != nil {
				c.server.logger().Printf("closing connection from %v: %v", c.conn.RemoteAddr(), err)
				return
			}
		}
		if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
			return
		} else if err != nil {
			c.server.logger().Printf("failed to read from %v: %v", c.conn.RemoteAddr(), err)
			return
		}
	}
}

// feed passes received data to the receiver and handles the resulting
// commands in order.
func (c *Conn) feed(chunk []byte) error {
	for {
		reqs, err := c.receiver.Feed(chunk)
		chunk = nil

		for _, req := range reqs {
			if err := c.handle(req); err != nil {
				return err
			}
			if c.logout {
				return nil
			}
		}

		if err != nil {
			var imapErr *imap.Error
			if !errors.As(err, &imapErr) {
				return err
			}
			metricSyntaxErrors.WithLabelValues(errorClass(err)).Inc()
			if err := c.writeStatusResp(imapErr.Tag, imapErr.StatusResponse()); err != nil {
				return err
			}
			if imapErr.Fatal() {
				return imapErr
			}
			continue
		}

		if c.receiver.State() != imapwire.StateAwaitingContinuation {
			if len(reqs) > 0 && c.receiver.Buffered() > 0 {
				continue // stopped after a command which read raw input
			}
			return nil
		}
		metricContinuations.Inc()
		if err := c.writeContReq("Ready for literal data"); err != nil {
			return err
		}
		c.receiver.Continue()
	}
}

func (c *Conn) handle(req *imapwire.Request) error {
	start := time.Now()

	args, err := ParseArguments(req, c.version)
	if err != nil {
		metricSyntaxErrors.WithLabelValues(errorClass(err)).Inc()
	} else {
		err = c.execute(req.Tag, req.Command, args)
	}

	var (
		resp    *imap.StatusResponse
		result  string
		imapErr *imap.Error
	)
	if errors.As(err, &imapErr) {
		resp = imapErr.StatusResponse()
		result = strings.ToLower(string(imapErr.Type))
	} else if err != nil {
		c.server.logger().Printf("handling %v command: %v", req.Command, err)
		resp = internalServerErrorResp
		result = "error"
	} else {
		resp = &imap.StatusResponse{
			Type: imap.StatusResponseTypeOK,
			Text: fmt.Sprintf("%v completed", req.Command),
		}
		result = "ok"
	}
	metricCommands.WithLabelValues(strings.ToLower(req.Command.String()), result).Observe(float64(time.Since(start)) / float64(time.Second))

	if req.Command == imapwire.CommandStartTLS && (err == nil || imapErr == nil) {
		return err // answered before the handshake
	}
	return c.writeStatusResp(req.Tag, resp)
}

func (c *Conn) execute(tag string, cmd imapwire.Command, args imap.Arguments) error {
	switch cmd {
	case imapwire.CommandCapability:
		return c.handleCapability()
	case imapwire.CommandLogout:
		return c.handleLogout()
	case imapwire.CommandStartTLS:
		return c.handleStartTLS(tag)
	case imapwire.CommandEnable:
		return c.handleEnable(args.(*imap.EnableArguments))
	case imapwire.CommandIdle:
		return c.handleIdle()
	case imapwire.CommandAuthenticate:
		return c.handleAuthenticate(args.(*imap.AuthenticateArguments))
	}

	if c.server.options.Handler == nil {
		return &imap.Error{
			Type: imap.StatusResponseTypeNo,
			Code: imap.ResponseCodeCannot,
			Text: "Command not supported",
		}
	}
	return c.server.options.Handler.Handle(c, cmd, args)
}

func (c *Conn) handleLogout() error {
	c.logout = true
	return c.writeStatusResp("", &imap.StatusResponse{
		Type: imap.StatusResponseTypeBye,
		Text: "Logging out",
	})
}

// readLine reads a raw line which isn't a command from the client.
func (c *Conn) readLine() ([]byte, error) {
	line, ok, err := c.receiver.ReadLine(nil)
	for !ok && err == nil {
		n, readErr := c.conn.Read(c.buf)
		if n == 0 && readErr != nil {
			return nil, readErr
		}
		line, ok, err = c.receiver.ReadLine(c.buf[:n])
	}
	return line, err
}

func (c *Conn) writeStatusResp(tag string, statusResp *imap.StatusResponse) error {
	enc := newResponseEncoder(c)
	defer enc.end()
	return writeStatusResp(enc.Encoder, tag, statusResp)
}

func writeStatusResp(enc *imapwire.Encoder, tag string, statusResp *imap.StatusResponse) error {
	if tag == "" {
		tag = "*"
	}
	enc.Atom(tag).SP().Atom(string(statusResp.Type)).SP()
	if statusResp.Code != "" {
		enc.Atom(fmt.Sprintf("[%v]", statusResp.Code)).SP()
	}
	enc.Text(statusResp.Text)
	return enc.CRLF()
}

func (c *Conn) writeContReq(text string) error {
	enc := newResponseEncoder(c)
	defer enc.end()
	return enc.Atom("+").SP().Text(text).CRLF()
}

type responseEncoder struct {
	*imapwire.Encoder
	conn *Conn
}

func newResponseEncoder(conn *Conn) *responseEncoder {
	conn.encMutex.Lock() // released by responseEncoder.end
	enc := imapwire.NewEncoder(conn.bw)
	enc.Version = conn.version
	return &responseEncoder{
		Encoder: enc,
		conn:    conn,
	}
}

func (enc *responseEncoder) end() {
	if enc.Encoder == nil {
		panic("imapserver: responseEncoder.end called twice")
	}
	enc.Encoder = nil
	enc.conn.encMutex.Unlock()
}

func newClientBugError(text string) error {
	return &imap.Error{
		Type: imap.StatusResponseTypeBad,
		Code: imap.ResponseCodeClientBug,
		Text: text,
	}
}
