package imap

import (
	"bufio"
	"bytes"
	"time"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-message/textproto"
)

// AppendArguments contains the arguments of the APPEND command.
type AppendArguments struct {
	Tag     string
	Mailbox string
	Flags   []Flag
	Time    time.Time // zero if not specified
	Message []byte
}

func (args *AppendArguments) CommandTag() string { return args.Tag }

// Header parses the header of the appended message.
//
// The command parsers don't look into the message, a malformed header only
// surfaces here.
func (args *AppendArguments) Header() (mail.Header, error) {
	br := bufio.NewReader(bytes.NewReader(args.Message))
	h, err := textproto.ReadHeader(br)
	if err != nil {
		return mail.Header{}, err
	}
	return mail.Header{Header: message.Header{Header: h}}, nil
}
