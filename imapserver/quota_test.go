package imapserver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapserver"
)

func TestParseGetQuotaRoot(t *testing.T) {
	req := newRequest(t, "A142 GETQUOTAROOT INBOX\r\n")
	args, err := imapserver.ParseGetQuotaRoot(req, imap.Rev2)
	require.NoError(t, err)
	assert.Equal(t, &imap.QuotaArguments{Tag: "A142", Name: "INBOX"}, args)
}

func TestParseGetQuotaRoot_chunked(t *testing.T) {
	reqs := receive(t, "A142 GETQ", "UOTAROOT INBOX\r\n")
	require.Len(t, reqs, 1)
	args, err := imapserver.ParseGetQuotaRoot(reqs[0], imap.Rev2)
	require.NoError(t, err)
	assert.Equal(t, &imap.QuotaArguments{Tag: "A142", Name: "INBOX"}, args)
}

func TestParseGetQuotaRoot_version(t *testing.T) {
	tests := []struct {
		in      string
		version imap.ProtocolVersion
		name    string
	}{
		{"A1 GETQUOTAROOT &ZeVnLIqe-\r\n", imap.Rev1, "日本語"},
		{"A1 GETQUOTAROOT &ZeVnLIqe-\r\n", imap.Rev2, "&ZeVnLIqe-"},
		{"A1 GETQUOTAROOT \"Entw&APw-rfe\"\r\n", imap.Rev1, "Entwürfe"},
		{"A1 GETQUOTAROOT \"Entwürfe\"\r\n", imap.Rev2, "Entwürfe"},
		{"A1 GETQUOTAROOT {12+}\r\nEntw&APw-rfe\r\n", imap.Rev1, "Entwürfe"},
		// Malformed modified UTF-7 is passed through
		{"A1 GETQUOTAROOT &Jjo!\r\n", imap.Rev1, "&Jjo!"},
		{"A1 GETQUOTAROOT Inbox\r\n", imap.Rev1, "Inbox"},
	}
	for _, tc := range tests {
		req := newRequest(t, tc.in)
		args, err := imapserver.ParseGetQuotaRoot(req, tc.version)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.name, args.Name, "%q with %v", tc.in, tc.version)
		assert.Equal(t, "A1", args.Tag)
	}
}

func TestParseGetQuotaRoot_errors(t *testing.T) {
	tests := []struct {
		in    string
		class error
		text  string
	}{
		{"A1 GETQUOTAROOT\r\n", imapserver.ErrMissingArgument, "Missing mailbox name."},
		{"A1 GETQUOTAROOT INBOX Sent\r\n", imapserver.ErrTooManyArguments, "Too many arguments."},
		{"A1 GETQUOTAROOT ()\r\n", imapserver.ErrTooManyArguments, "Too many arguments."},
		{"A1 GETQUOTAROOT (\r\n", imapserver.ErrInvalidArgument, "Expected a string, found '('."},
		{"A1 GETQUOTAROOT {2+}\r\n\xff\xfe\r\n", imapserver.ErrInvalidArgument, "Invalid UTF-8 string."},
		{"A1 GETQUOTAROOT \"\xff\xfe\"\r\n", imapserver.ErrInvalidArgument, "Invalid UTF-8 string."},
	}
	for _, tc := range tests {
		for _, version := range []imap.ProtocolVersion{imap.Rev1, imap.Rev2} {
			_, err := imapserver.ParseGetQuotaRoot(newRequest(t, tc.in), version)
			requireBad(t, err, "A1", tc.class, tc.text)
		}
	}
}

func TestParseGetQuota(t *testing.T) {
	tests := []struct {
		in   string
		args *imap.QuotaArguments
	}{
		{"A142 GETQUOTA \"my funky mailbox\"\r\n", &imap.QuotaArguments{Tag: "A142", Name: "my funky mailbox"}},
		{"A1 GETQUOTA {5}\r\nroot1\r\n", &imap.QuotaArguments{Tag: "A1", Name: "root1"}},
		{"A1 GETQUOTA {5}\r\nr\"\\\r\n\r\n", &imap.QuotaArguments{Tag: "A1", Name: "r\"\\\r\n"}},
		{"A1 GETQUOTA \"\"\r\n", &imap.QuotaArguments{Tag: "A1", Name: ""}},
		// Quota roots are not decoded
		{"A1 GETQUOTA &ZeVnLIqe-\r\n", &imap.QuotaArguments{Tag: "A1", Name: "&ZeVnLIqe-"}},
	}
	for _, tc := range tests {
		args, err := imapserver.ParseGetQuota(newRequest(t, tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.args, args, tc.in)
	}
}

func TestParseGetQuota_errors(t *testing.T) {
	_, err := imapserver.ParseGetQuota(newRequest(t, "A142 GETQUOTA\r\n"))
	requireBad(t, err, "A142", imapserver.ErrMissingArgument, "Missing quota root.")

	_, err = imapserver.ParseGetQuota(newRequest(t, "A142 GETQUOTA root1 root2\r\n"))
	requireBad(t, err, "A142", imapserver.ErrTooManyArguments, "Too many arguments.")

	_, err = imapserver.ParseGetQuota(newRequest(t, "A142 GETQUOTA {1+}\r\nx \"y\" z\r\n"))
	requireBad(t, err, "A142", imapserver.ErrTooManyArguments, "Too many arguments.")

	_, err = imapserver.ParseGetQuota(newRequest(t, "A142 GETQUOTA )\r\n"))
	requireBad(t, err, "A142", imapserver.ErrInvalidArgument, "Expected a string, found ')'.")
}

func TestParseSetQuota(t *testing.T) {
	args, err := imapserver.ParseSetQuota(newRequest(t, "A1 SETQUOTA \"\" (storage 512 MESSAGE 1000)\r\n"))
	require.NoError(t, err)
	assert.Equal(t, &imap.SetQuotaArguments{
		Tag:  "A1",
		Root: "",
		Limits: map[imap.QuotaResourceType]int64{
			imap.QuotaResourceStorage: 512,
			imap.QuotaResourceMessage: 1000,
		},
	}, args)

	args, err = imapserver.ParseSetQuota(newRequest(t, "A1 SETQUOTA root ()\r\n"))
	require.NoError(t, err)
	assert.Empty(t, args.Limits)

	tests := []struct {
		in    string
		class error
		text  string
	}{
		{"A1 SETQUOTA\r\n", imapserver.ErrMissingArgument, "Missing quota root."},
		{"A1 SETQUOTA root\r\n", imapserver.ErrMissingArgument, "Missing resource limits."},
		{"A1 SETQUOTA root STORAGE\r\n", imapserver.ErrInvalidArgument, "Expected a list, found atom."},
		{"A1 SETQUOTA root (STORAGE)\r\n", imapserver.ErrInvalidArgument, "Missing resource limit."},
		{"A1 SETQUOTA root (STORAGE -1)\r\n", imapserver.ErrInvalidArgument, "Invalid resource limit."},
		{"A1 SETQUOTA root (STORAGE 1\r\n", imapserver.ErrInvalidArgument, "Missing ')'."},
		{"A1 SETQUOTA root (STORAGE 1) x\r\n", imapserver.ErrTooManyArguments, "Too many arguments."},
	}
	for _, tc := range tests {
		_, err := imapserver.ParseSetQuota(newRequest(t, tc.in))
		requireBad(t, err, "A1", tc.class, tc.text)
	}
}
