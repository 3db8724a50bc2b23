// Package imapserver parses IMAP commands and serves them to a Handler.
//
// The command argument parsers (ParseArguments and the Parse* functions) are
// pure and can be used on their own with an imapwire.Receiver. Server is a
// thin transport around them: it owns the connection, the literal
// continuation sub-protocol and the protocol version, and hands typed
// arguments to the Handler.
package imapserver

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/emersion/go-sasl"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

type Logger interface {
	Printf(format string, args ...interface{})
}

// Handler executes commands.
type Handler interface {
	// Handle executes a command whose arguments have been parsed
	// successfully. Returning nil sends a tagged OK response. An *imap.Error
	// is sent as the tagged status response. Any other error results in an
	// internal server error.
	//
	// CAPABILITY, LOGOUT, ENABLE, STARTTLS, IDLE and AUTHENTICATE are
	// handled by the server itself.
	Handle(conn *Conn, cmd imapwire.Command, args imap.Arguments) error
}

// SASLHandler is implemented by handlers supporting the AUTHENTICATE
// command. Mechanisms must also be advertised in Options.Caps.
type SASLHandler interface {
	NewSASLServer(conn *Conn, mech string) (sasl.Server, error)
}

// Options contains server options.
type Options struct {
	Handler Handler
	// Logger is a logger to print error messages. If nil, log.Default is
	// used.
	Logger Logger
	// Capabilities advertised by the server. IMAP4rev1 is always included.
	Caps imap.CapSet
	// Limits applied to incoming commands.
	Receiver imapwire.ReceiverOptions
	// TLS configuration for STARTTLS. If nil, STARTTLS is not supported.
	TLSConfig *tls.Config
}

// Server is an IMAP server.
type Server struct {
	options Options

	mutex     sync.Mutex
	listeners map[net.Listener]struct{}
	conns     map[*Conn]struct{}
	closed    bool
}

// New creates a new server.
func New(options *Options) *Server {
	srv := &Server{
		options:   *options,
		listeners: make(map[net.Listener]struct{}),
		conns:     make(map[*Conn]struct{}),
	}
	if srv.options.Caps == nil {
		srv.options.Caps = imap.CapSet{}
	}
	srv.options.Caps[imap.CapIMAP4rev1] = struct{}{}
	return srv
}

func (s *Server) logger() Logger {
	if s.options.Logger == nil {
		return log.Default()
	}
	return s.options.Logger
}

// Serve accepts incoming connections on the listener ln.
func (s *Server) Serve(ln net.Listener) error {
	s.mutex.Lock()
	ok := !s.closed
	if ok {
		s.listeners[ln] = struct{}{}
	}
	s.mutex.Unlock()
	if !ok {
		return errClosed
	}

	defer func() {
		s.mutex.Lock()
		delete(s.listeners, ln)
		s.mutex.Unlock()
	}()

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if ne, ok := err.(net.Error); ok && ne.Temporary() {
			if delay == 0 {
				delay = 5 * time.Millisecond
			} else {
				delay *= 2
			}
			if max := 1 * time.Second; delay > max {
				delay = max
			}
			s.logger().Printf("accept error (retrying in %v): %v", delay, err)
			time.Sleep(delay)
			continue
		} else if errors.Is(err, net.ErrClosed) {
			return nil
		} else if err != nil {
			return fmt.Errorf("accept error: %w", err)
		}

		delay = 0
		go s.ServeConn(conn)
	}
}

// ServeConn serves a single connection. It returns once the connection is
// closed.
func (s *Server) ServeConn(conn net.Conn) {
	c := newConn(conn, s)

	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		conn.Close()
		return
	}
	s.conns[c] = struct{}{}
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		delete(s.conns, c)
		s.mutex.Unlock()
	}()

	c.serve()
}

// Close immediately closes all active listeners and connections.
func (s *Server) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return errClosed
	}
	s.closed = true

	var err error
	for ln := range s.listeners {
		if closeErr := ln.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	for c := range s.conns {
		c.NetConn().Close()
	}
	return err
}

var errClosed = errors.New("imapserver: server closed")
