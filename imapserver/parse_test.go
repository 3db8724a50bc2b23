package imapserver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapserver"
	"github.com/emersion/go-imapproto/imapwire"
)

var parseArgumentsTests = []struct {
	in      string
	version imap.ProtocolVersion
	args    imap.Arguments
}{
	{
		in:   "a NOOP\r\n",
		args: &imap.NoArguments{Tag: "a"},
	},
	{
		in:   "a LOGIN alice \"pass word\"\r\n",
		args: &imap.LoginArguments{Tag: "a", Username: "alice", Password: "pass word"},
	},
	{
		in:   "a authenticate plain\r\n",
		args: &imap.AuthenticateArguments{Tag: "a", Mechanism: "PLAIN"},
	},
	{
		in:   "a AUTHENTICATE PLAIN AGFsaWNlAHBhc3M=\r\n",
		args: &imap.AuthenticateArguments{Tag: "a", Mechanism: "PLAIN", InitialResponse: []byte("\x00alice\x00pass")},
	},
	{
		in:   "a AUTHENTICATE EXTERNAL =\r\n",
		args: &imap.AuthenticateArguments{Tag: "a", Mechanism: "EXTERNAL", InitialResponse: []byte{}},
	},
	{
		in:   "a ENABLE IMAP4rev2 CONDSTORE\r\n",
		args: &imap.EnableArguments{Tag: "a", Caps: []imap.Cap{"IMAP4rev2", "CONDSTORE"}},
	},
	{
		in:      "a SELECT &ZeVnLIqe-\r\n",
		version: imap.Rev1,
		args:    &imap.MailboxArguments{Tag: "a", Mailbox: "日本語"},
	},
	{
		in:      "a CREATE \"Entwürfe\"\r\n",
		version: imap.Rev2,
		args:    &imap.MailboxArguments{Tag: "a", Mailbox: "Entwürfe"},
	},
	{
		in:   "a MYRIGHTS INBOX\r\n",
		args: &imap.MailboxArguments{Tag: "a", Mailbox: "INBOX"},
	},
	{
		in:   "a RENAME old \"new name\"\r\n",
		args: &imap.RenameArguments{Tag: "a", Mailbox: "old", NewName: "new name"},
	},
	{
		in:   "a LIST \"\" %\r\n",
		args: &imap.ListArguments{Tag: "a", Reference: "", Pattern: "%"},
	},
	{
		in:   "a LSUB ~/Mail/ *\r\n",
		args: &imap.ListArguments{Tag: "a", Reference: "~/Mail/", Pattern: "*"},
	},
	{
		in:      "a STATUS INBOX (messages RECENT)\r\n",
		version: imap.Rev1,
		args: &imap.StatusArguments{
			Tag:     "a",
			Mailbox: "INBOX",
			Items:   []imap.StatusItem{imap.StatusItemNumMessages, imap.StatusItemNumRecent},
		},
	},
	{
		in:   "a EXPUNGE\r\n",
		args: &imap.ExpungeArguments{Tag: "a"},
	},
	{
		in:   "a UID EXPUNGE 3:1,7,10:*\r\n",
		args: &imap.ExpungeArguments{Tag: "a", UIDs: imap.UIDSet{{Start: 1, Stop: 3}, {Start: 7, Stop: 7}, {Start: 10, Stop: 0}}},
	},
	{
		in:   "a GETQUOTA \"\"\r\n",
		args: &imap.QuotaArguments{Tag: "a"},
	},
	{
		in: "a SETACL INBOX Fred +rwx\r\n",
		args: &imap.SetACLArguments{
			Tag:          "a",
			Mailbox:      "INBOX",
			Identifier:   "Fred",
			Modification: imap.RightModificationAdd,
			Rights:       "rwx",
		},
	},
	{
		in:   "a DELETEACL INBOX anyone\r\n",
		args: &imap.ACLArguments{Tag: "a", Mailbox: "INBOX", Identifier: imap.RightsIdentifierAnyone},
	},
	{
		in:   "a LISTRIGHTS INBOX Fred\r\n",
		args: &imap.ACLArguments{Tag: "a", Mailbox: "INBOX", Identifier: "Fred"},
	},
}

func TestParseArguments(t *testing.T) {
	for _, tc := range parseArgumentsTests {
		version := tc.version
		if version == 0 {
			version = imap.Rev2
		}
		args, err := imapserver.ParseArguments(newRequest(t, tc.in), version)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.args, args, tc.in)
	}
}

func TestParseArguments_allCommands(t *testing.T) {
	for _, cmd := range imapwire.Commands() {
		req := &imapwire.Request{Tag: "a", Command: cmd}
		assert.NotPanics(t, func() {
			imapserver.ParseArguments(req, imap.Rev2)
		}, cmd.String())
	}
}

var parseArgumentsErrorTests = []struct {
	in      string
	version imap.ProtocolVersion
	class   error
	text    string
}{
	{in: "a NOOP x\r\n", class: imapserver.ErrTooManyArguments, text: "Too many arguments."},
	{in: "a LOGIN alice\r\n", class: imapserver.ErrMissingArgument, text: "Missing password."},
	{in: "a LOGIN\r\n", class: imapserver.ErrMissingArgument, text: "Missing username."},
	{in: "a AUTHENTICATE\r\n", class: imapserver.ErrMissingArgument, text: "Missing authentication mechanism."},
	{in: "a AUTHENTICATE \"PLAIN\"\r\n", class: imapserver.ErrInvalidArgument, text: "Expected an atom, found quoted string."},
	{in: "a AUTHENTICATE PLAIN !!!\r\n", class: imapserver.ErrInvalidArgument, text: "Invalid initial response."},
	{in: "a AUTHENTICATE PLAIN a b\r\n", class: imapserver.ErrTooManyArguments},
	{in: "a ENABLE\r\n", class: imapserver.ErrMissingArgument, text: "Missing capability."},
	{in: "a SELECT\r\n", class: imapserver.ErrMissingArgument, text: "Missing mailbox name."},
	{in: "a DELETE a b\r\n", class: imapserver.ErrTooManyArguments},
	{in: "a RENAME old\r\n", class: imapserver.ErrMissingArgument, text: "Missing new mailbox name."},
	{in: "a LIST \"\"\r\n", class: imapserver.ErrMissingArgument, text: "Missing mailbox pattern."},
	{in: "a LIST (SUBSCRIBED) \"\" *\r\n", class: imapserver.ErrTooManyArguments},
	{in: "a STATUS INBOX\r\n", class: imapserver.ErrMissingArgument, text: "Missing status items."},
	{in: "a STATUS INBOX ()\r\n", class: imapserver.ErrMissingArgument, text: "Missing status items."},
	{in: "a STATUS INBOX (RECENT)\r\n", version: imap.Rev2, class: imapserver.ErrInvalidArgument, text: "Unknown status item RECENT."},
	{in: "a STATUS INBOX (FOO)\r\n", class: imapserver.ErrInvalidArgument, text: "Unknown status item FOO."},
	{in: "a UID EXPUNGE\r\n", class: imapserver.ErrMissingArgument, text: "Missing UID set."},
	{in: "a UID EXPUNGE 0\r\n", class: imapserver.ErrInvalidArgument, text: "Invalid UID set."},
	{in: "a EXPUNGE 1\r\n", class: imapserver.ErrTooManyArguments},
	{in: "a SETACL INBOX Fred\r\n", class: imapserver.ErrMissingArgument, text: "Missing access rights."},
	{in: "a SETACL INBOX Fred rwz\r\n", class: imapserver.ErrInvalidArgument, text: "Invalid access rights."},
	{in: "a DELETEACL INBOX\r\n", class: imapserver.ErrMissingArgument, text: "Missing identifier."},
}

func TestParseArguments_errors(t *testing.T) {
	for _, tc := range parseArgumentsErrorTests {
		version := tc.version
		if version == 0 {
			version = imap.Rev1
		}
		_, err := imapserver.ParseArguments(newRequest(t, tc.in), version)
		requireBad(t, err, "a", tc.class, tc.text)
	}
}

func TestParseAppend(t *testing.T) {
	msg := "From: Fred Foobar <foobar@Blurdybloop.example>\r\nSubject: afternoon meeting\r\n\r\nHello Joe\r\n"
	req := newRequest(t, "A003 APPEND saved-messages (\\seen $Forwarded) \"05-Mar-2024 14:30:00 +0100\" {89+}\r\n"+msg+"\r\n")

	args, err := imapserver.ParseAppend(req, imap.Rev1)
	require.NoError(t, err)
	assert.Equal(t, "A003", args.Tag)
	assert.Equal(t, "saved-messages", args.Mailbox)
	assert.Equal(t, []imap.Flag{imap.FlagSeen, imap.FlagForwarded}, args.Flags)
	assert.True(t, time.Date(2024, time.March, 5, 13, 30, 0, 0, time.UTC).Equal(args.Time))
	assert.Equal(t, msg, string(args.Message))

	h, err := args.Header()
	require.NoError(t, err)
	assert.Equal(t, "afternoon meeting", h.Get("Subject"))
	from, err := h.AddressList("From")
	require.NoError(t, err)
	require.Len(t, from, 1)
	assert.Equal(t, "foobar@Blurdybloop.example", from[0].Address)
}

func TestParseAppend_minimal(t *testing.T) {
	args, err := imapserver.ParseAppend(newRequest(t, "a APPEND INBOX {2}\r\nhi\r\n"), imap.Rev2)
	require.NoError(t, err)
	assert.Equal(t, &imap.AppendArguments{Tag: "a", Mailbox: "INBOX", Message: []byte("hi")}, args)
}

func TestParseAppend_errors(t *testing.T) {
	tests := []struct {
		in    string
		class error
		text  string
	}{
		{"a APPEND\r\n", imapserver.ErrMissingArgument, "Missing mailbox name."},
		{"a APPEND INBOX\r\n", imapserver.ErrMissingArgument, "Missing message literal."},
		{"a APPEND INBOX (\\Seen)\r\n", imapserver.ErrMissingArgument, "Missing message literal."},
		{"a APPEND INBOX (\\Seen\r\n", imapserver.ErrInvalidArgument, "Missing ')'."},
		{"a APPEND INBOX (\\Seen {2+}\r\nhi\r\n", imapserver.ErrInvalidArgument, "Invalid flag."},
		{"a APPEND INBOX (\\Seen)) {2+}\r\nhi\r\n", imapserver.ErrInvalidArgument, "Expected message literal, found ')'."},
		{"a APPEND INBOX (\"\\Seen\") {2+}\r\nhi\r\n", imapserver.ErrInvalidArgument, "Invalid flag."},
		{"a APPEND INBOX \"yesterday\" {2+}\r\nhi\r\n", imapserver.ErrInvalidArgument, "Invalid date-time."},
		{"a APPEND INBOX hello\r\n", imapserver.ErrInvalidArgument, "Expected message literal, found atom."},
		{"a APPEND INBOX {2+}\r\nhi extra\r\n", imapserver.ErrTooManyArguments, "Too many arguments."},
	}
	for _, tc := range tests {
		_, err := imapserver.ParseAppend(newRequest(t, tc.in), imap.Rev2)
		requireBad(t, err, "a", tc.class, tc.text)
	}
}
