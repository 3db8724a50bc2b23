package imapwire

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/emersion/go-imapproto"
)

const (
	DefaultMaxLineLength  = 8192
	DefaultMaxLiteralSize = 64 * 1024 * 1024
)

// ReceiverState describes what a Receiver expects next.
type ReceiverState int

const (
	StateAwaitingTag ReceiverState = 1 + iota
	StateAwaitingCommand
	StateAwaitingArgument
	StateAwaitingLiteralBytes
	StateAwaitingContinuation
)

// String implements fmt.Stringer.
func (state ReceiverState) String() string {
	switch state {
	case StateAwaitingTag:
		return "awaiting tag"
	case StateAwaitingCommand:
		return "awaiting command"
	case StateAwaitingArgument:
		return "awaiting argument"
	case StateAwaitingLiteralBytes:
		return "awaiting literal bytes"
	case StateAwaitingContinuation:
		return "awaiting continuation"
	default:
		panic(fmt.Errorf("imapwire: unknown receiver state %d", int(state)))
	}
}

// ReceiverOptions contains options for a Receiver.
type ReceiverOptions struct {
	// MaxLineLength is the maximum length of a command, literal data
	// excluded. Defaults to DefaultMaxLineLength.
	MaxLineLength int
	// MaxLiteralSize is the maximum size of a single literal. Defaults to
	// DefaultMaxLiteralSize.
	MaxLiteralSize int64
}

// argState is the sub-state of StateAwaitingArgument.
type argState int

const (
	argIdle         argState = iota // between tokens
	argAtom                         // inside an atom
	argQuoted                       // inside a quoted string
	argQuotedEscape                 // after a backslash in a quoted string
	argLiteralSize                  // after "{"
	argLiteralPlus                  // after "{n+"
	argLiteralEnd                   // after "}", expecting CRLF
	argLiteralLF                    // after "}" CR, expecting LF
)

// Receiver turns a stream of bytes sent by a client into commands.
//
// The stream can be fragmented arbitrarily: feeding the chunks one by one
// produces the same requests as feeding the whole stream at once. A Receiver
// belongs to a single connection and must not be used concurrently.
type Receiver struct {
	maxLineLength  int
	maxLiteralSize int64

	state ReceiverState
	arg   argState

	// Input received but not processed yet
	pending []byte

	tag     string
	cmd     Command
	uid     bool
	tokens  []Token
	buf     []byte // value of the token being read
	lineLen int
	afterCR bool

	literalSize      int64
	literalNonSync   bool
	literalDigits    int
	literalTooLarge  bool
	literalOverflow  bool
	literalRemaining int64

	// Resynchronization after an error
	skipLine    bool
	skipLiteral int64
}

// NewReceiver creates a new receiver. opts may be nil.
func NewReceiver(opts *ReceiverOptions) *Receiver {
	if opts == nil {
		opts = &ReceiverOptions{}
	}
	r := &Receiver{
		maxLineLength:  opts.MaxLineLength,
		maxLiteralSize: opts.MaxLiteralSize,
	}
	if r.maxLineLength <= 0 {
		r.maxLineLength = DefaultMaxLineLength
	}
	if r.maxLiteralSize <= 0 {
		r.maxLiteralSize = DefaultMaxLiteralSize
	}
	r.reset()
	return r
}

// State returns the current state of the receiver.
func (r *Receiver) State() ReceiverState {
	return r.state
}

// Buffered returns the number of bytes fed but not processed yet.
func (r *Receiver) Buffered() int {
	return len(r.pending)
}

// LiteralRemaining returns the number of literal bytes still expected. It is
// only meaningful in StateAwaitingLiteralBytes and StateAwaitingContinuation.
func (r *Receiver) LiteralRemaining() int64 {
	return r.literalRemaining
}

// Continue acknowledges a synchronizing literal. It must be called in
// StateAwaitingContinuation, once the continuation request has been sent to
// the client. The next call to Feed consumes the literal data.
func (r *Receiver) Continue() {
	if r.state != StateAwaitingContinuation {
		panic("imapwire: Receiver.Continue called while not awaiting a continuation")
	}
	r.state = StateAwaitingLiteralBytes
	if r.literalRemaining == 0 {
		r.endLiteral()
	}
}

// Feed processes a chunk of data received from the client and returns the
// requests completed by it.
//
// Feed stops at the first error: the requests completed before the error are
// returned alongside it. Feed also stops when a synchronizing literal is
// announced, leaving the receiver in StateAwaitingContinuation, and after a
// command followed by something else than commands: raw lines for IDLE and
// AUTHENTICATE, which the caller reads with ReadLine, or a TLS handshake for
// STARTTLS, see TakeBuffered. In all cases the unprocessed input
// stays buffered and Feed(nil) resumes processing.
//
// Errors are *imap.Error values. A command error has a tag and leaves the
// receiver usable: the rest of the offending line is discarded. An error
// without a tag is fatal to the connection.
func (r *Receiver) Feed(chunk []byte) ([]*Request, error) {
	r.pending = append(r.pending, chunk...)

	var (
		reqs []*Request
		err  error
		i    int
	)
	for i < len(r.pending) && r.state != StateAwaitingContinuation {
		if r.skipLiteral > 0 {
			n := min64(r.skipLiteral, int64(len(r.pending)-i))
			r.skipLiteral -= n
			i += int(n)
			continue
		}

		if r.state == StateAwaitingLiteralBytes {
			n := int(min64(r.literalRemaining, int64(len(r.pending)-i)))
			r.buf = append(r.buf, r.pending[i:i+n]...)
			r.literalRemaining -= int64(n)
			i += n
			if r.literalRemaining == 0 {
				r.endLiteral()
			}
			continue
		}

		b := r.pending[i]
		i++

		if r.skipLine {
			if b == '\n' {
				r.skipLine = false
			}
			continue
		}

		var req *Request
		req, err = r.step(b)
		if req != nil {
			reqs = append(reqs, req)
		}
		if err != nil || (req != nil && req.Command.switchesInput()) {
			break
		}
	}

	r.pending = r.pending[:copy(r.pending, r.pending[i:])]
	return reqs, err
}

// ReadLine consumes a raw line from the input, without its line ending. It
// is used for the client responses of AUTHENTICATE and for the end of IDLE,
// which aren't commands. It must only be called between commands, typically
// right after Feed returned such a command. ok is false if no complete line
// has been received yet.
func (r *Receiver) ReadLine(chunk []byte) (line []byte, ok bool, err error) {
	if r.state != StateAwaitingTag || len(r.buf) > 0 {
		panic("imapwire: Receiver.ReadLine called in the middle of a command")
	}

	r.pending = append(r.pending, chunk...)
	i := bytes.IndexByte(r.pending, '\n')
	if i < 0 {
		if len(r.pending) > r.maxLineLength {
			r.pending = r.pending[:0]
			r.skipLine = true
			return nil, false, newSyntaxError("", ErrLineTooLong, "Line too long.")
		}
		return nil, false, nil
	}

	line = bytes.TrimSuffix(r.pending[:i], []byte("\r"))
	line = append([]byte(nil), line...)
	r.pending = r.pending[:copy(r.pending, r.pending[i+1:])]
	if len(line) > r.maxLineLength {
		return nil, false, newSyntaxError("", ErrLineTooLong, "Line too long.")
	}
	return line, true, nil
}

// TakeBuffered removes and returns the input fed but not processed yet. It
// must only be called between commands. After STARTTLS, the returned bytes
// belong to the TLS handshake.
func (r *Receiver) TakeBuffered() []byte {
	if r.state != StateAwaitingTag || len(r.buf) > 0 {
		panic("imapwire: Receiver.TakeBuffered called in the middle of a command")
	}
	b := append([]byte(nil), r.pending...)
	r.pending = r.pending[:0]
	return b
}

func (r *Receiver) reset() {
	r.state = StateAwaitingTag
	r.arg = argIdle
	r.tag = ""
	r.cmd = 0
	r.uid = false
	r.tokens = nil
	r.buf = r.buf[:0]
	r.lineLen = 0
	r.afterCR = false
	r.literalRemaining = 0
}

// fail aborts the current command. If atBoundary is false, the rest of the
// line is discarded.
func (r *Receiver) fail(class error, text string, atBoundary bool) *imap.Error {
	err := newSyntaxError(r.tag, class, text)
	r.reset()
	r.skipLine = !atBoundary
	return err
}

func (r *Receiver) step(b byte) (*Request, error) {
	if r.afterCR {
		r.afterCR = false
		if b != '\n' {
			return nil, r.fail(ErrInvalidLineEnding, "Expected LF after CR.", false)
		}
		return r.endOfLine()
	}

	r.lineLen++
	if r.lineLen > r.maxLineLength {
		return nil, r.fail(ErrLineTooLong, "Line too long.", b == '\n')
	}

	switch r.state {
	case StateAwaitingTag:
		return r.stepTag(b)
	case StateAwaitingCommand:
		return r.stepCommand(b)
	case StateAwaitingArgument:
		return r.stepArgument(b)
	default:
		panic(fmt.Errorf("imapwire: unexpected receiver state %v", r.state))
	}
}

func (r *Receiver) stepTag(b byte) (*Request, error) {
	switch {
	case b == ' ':
		if len(r.buf) == 0 {
			return nil, r.fail(ErrMalformedTag, "Missing tag.", false)
		}
		r.tag = string(r.buf)
		r.buf = r.buf[:0]
		r.state = StateAwaitingCommand
	case b == '\r':
		r.afterCR = true
	case b == '\n':
		return r.endOfLine()
	case IsTagChar(b):
		r.buf = append(r.buf, b)
	default:
		return nil, r.fail(ErrMalformedTag, "Invalid tag.", false)
	}
	return nil, nil
}

func (r *Receiver) stepCommand(b byte) (*Request, error) {
	switch {
	case b == ' ':
		if err := r.finishCommand(false); err != nil {
			return nil, err
		}
	case b == '\r':
		r.afterCR = true
	case b == '\n':
		return r.endOfLine()
	case IsAtomChar(b):
		r.buf = append(r.buf, b)
	default:
		return nil, r.fail(ErrUnknownCommand, "Invalid command.", false)
	}
	return nil, nil
}

func (r *Receiver) finishCommand(atBoundary bool) error {
	if len(r.buf) == 0 {
		return r.fail(ErrMissingCommand, "Missing command.", atBoundary)
	}
	name := string(r.buf)
	r.buf = r.buf[:0]

	if !r.uid && strings.EqualFold(name, "UID") {
		r.uid = true
		return nil
	}

	cmd, ok := LookupCommand(name)
	if !ok || (r.uid && !cmd.AllowsUID()) {
		return r.fail(ErrUnknownCommand, "Unknown command.", atBoundary)
	}
	r.cmd = cmd
	r.state = StateAwaitingArgument
	return nil
}

func (r *Receiver) stepArgument(b byte) (*Request, error) {
	switch r.arg {
	case argIdle:
		switch {
		case b == ' ':
			// skip
		case b == '\r':
			r.afterCR = true
		case b == '\n':
			return r.endOfLine()
		case b == '"':
			r.arg = argQuoted
		case b == '{':
			r.literalSize = 0
			r.literalDigits = 0
			r.literalNonSync = false
			r.literalTooLarge = false
			r.literalOverflow = false
			r.arg = argLiteralSize
		case b == '(':
			r.tokens = append(r.tokens, Token{Kind: TokenListStart})
		case b == ')':
			r.tokens = append(r.tokens, Token{Kind: TokenListEnd})
		case IsAtomChar(b):
			r.buf = append(r.buf, b)
			r.arg = argAtom
		default:
			return nil, r.fail(ErrInvalidAtom, "Invalid character in argument.", false)
		}
	case argAtom:
		switch {
		case b == ' ':
			r.finishAtom()
		case b == '(':
			r.finishAtom()
			r.tokens = append(r.tokens, Token{Kind: TokenListStart})
		case b == ')':
			r.finishAtom()
			r.tokens = append(r.tokens, Token{Kind: TokenListEnd})
		case b == '\r':
			r.finishAtom()
			r.afterCR = true
		case b == '\n':
			r.finishAtom()
			return r.endOfLine()
		case IsAtomChar(b):
			r.buf = append(r.buf, b)
		default:
			return nil, r.fail(ErrInvalidAtom, "Invalid character in atom.", false)
		}
	case argQuoted:
		switch b {
		case '\\':
			r.arg = argQuotedEscape
		case '"':
			r.tokens = append(r.tokens, Token{Kind: TokenQuoted, Value: r.takeBuf()})
			r.arg = argIdle
		case '\r', '\n':
			return nil, r.fail(ErrUnterminatedQuote, "Unterminated quoted string.", b == '\n')
		case 0:
			return nil, r.fail(ErrInvalidAtom, "Invalid character in quoted string.", false)
		default:
			r.buf = append(r.buf, b)
		}
	case argQuotedEscape:
		// Only the quote and the backslash can be escaped
		switch b {
		case '"', '\\':
			r.buf = append(r.buf, b)
			r.arg = argQuoted
		case '\r', '\n':
			return nil, r.fail(ErrUnterminatedQuote, "Unterminated quoted string.", b == '\n')
		default:
			return nil, r.fail(ErrInvalidAtom, "Invalid escape in quoted string.", false)
		}
	case argLiteralSize:
		switch {
		case '0' <= b && b <= '9':
			r.literalDigits++
			d := int64(b - '0')
			if r.literalSize > (math.MaxInt64-d)/10 {
				r.literalOverflow = true
				r.literalSize = math.MaxInt64
			} else if !r.literalOverflow {
				r.literalSize = r.literalSize*10 + d
			}
			if r.literalSize > r.maxLiteralSize {
				r.literalTooLarge = true
			}
		case b == '+' && r.literalDigits > 0:
			r.literalNonSync = true
			r.arg = argLiteralPlus
		case b == '}' && r.literalDigits > 0:
			r.arg = argLiteralEnd
		default:
			return nil, r.fail(ErrInvalidLiteral, "Invalid literal size.", b == '\n')
		}
	case argLiteralPlus:
		if b != '}' {
			return nil, r.fail(ErrInvalidLiteral, "Invalid literal size.", b == '\n')
		}
		r.arg = argLiteralEnd
	case argLiteralEnd:
		switch b {
		case '\r':
			r.arg = argLiteralLF
		case '\n':
			return r.beginLiteral()
		default:
			return nil, r.fail(ErrInvalidLiteral, "Expected CRLF after literal size.", false)
		}
	case argLiteralLF:
		if b != '\n' {
			return nil, r.fail(ErrInvalidLiteral, "Expected CRLF after literal size.", false)
		}
		return r.beginLiteral()
	default:
		panic(fmt.Errorf("imapwire: unexpected argument state %d", int(r.arg)))
	}
	return nil, nil
}

func (r *Receiver) beginLiteral() (*Request, error) {
	if r.literalTooLarge {
		nonSync, size, overflow := r.literalNonSync, r.literalSize, r.literalOverflow
		text := fmt.Sprintf("Literal exceeds the maximum size of %v bytes.", r.maxLiteralSize)
		// A client doesn't send a synchronizing literal until it gets a
		// continuation request, so the command ends here. A non-synchronizing
		// literal is on its way and is discarded with the rest of its line.
		err := r.fail(ErrLiteralTooLarge, text, !nonSync)
		if nonSync && !overflow {
			r.skipLiteral = size
		}
		return nil, err
	}

	r.buf = r.buf[:0]
	r.literalRemaining = r.literalSize
	if r.literalNonSync {
		r.state = StateAwaitingLiteralBytes
		if r.literalRemaining == 0 {
			r.endLiteral()
		}
	} else {
		r.state = StateAwaitingContinuation
	}
	return nil, nil
}

func (r *Receiver) endLiteral() {
	r.tokens = append(r.tokens, Token{Kind: TokenLiteral, Value: r.takeBuf()})
	r.state = StateAwaitingArgument
	r.arg = argIdle
}

func (r *Receiver) finishAtom() {
	r.tokens = append(r.tokens, Token{Kind: TokenAtom, Value: r.takeBuf()})
	r.arg = argIdle
}

func (r *Receiver) takeBuf() []byte {
	v := make([]byte, len(r.buf))
	copy(v, r.buf)
	r.buf = r.buf[:0]
	return v
}

func (r *Receiver) endOfLine() (*Request, error) {
	switch r.state {
	case StateAwaitingTag:
		if len(r.buf) == 0 {
			// Blank line
			r.lineLen = 0
			return nil, nil
		}
		r.tag = string(r.buf)
		return nil, r.fail(ErrMissingCommand, "Missing command.", true)
	case StateAwaitingCommand:
		if err := r.finishCommand(true); err != nil {
			return nil, err
		}
		if r.state == StateAwaitingCommand { // "UID" alone
			return nil, r.fail(ErrMissingCommand, "Missing command.", true)
		}
	}

	req := &Request{
		Tag:     r.tag,
		Command: r.cmd,
		UID:     r.uid,
		Tokens:  r.tokens,
	}
	r.reset()
	return req, nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
