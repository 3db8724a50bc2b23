package imap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emersion/go-imapproto"
)

func TestDecodeMailboxName(t *testing.T) {
	tests := []struct {
		name    string
		version imap.ProtocolVersion
		want    string
	}{
		{"&ZeVnLIqe-", imap.Rev1, "日本語"},
		{"INBOX/&ZeVnLIqe-", imap.Rev1, "INBOX/日本語"},
		{"Sent", imap.Rev1, "Sent"},
		{"&-", imap.Rev1, "&"},
		{"&Jjo!", imap.Rev1, "&Jjo!"},
		{"&ZeVnLIqe-", imap.Rev2, "&ZeVnLIqe-"},
		{"日本語", imap.Rev2, "日本語"},
	}
	for _, tc := range tests {
		got := imap.DecodeMailboxName(tc.name, tc.version)
		assert.Equalf(t, tc.want, got, "DecodeMailboxName(%q, %v)", tc.name, tc.version)
	}
}

func TestEncodeMailboxName(t *testing.T) {
	assert.Equal(t, "&ZeVnLIqe-", imap.EncodeMailboxName("日本語", imap.Rev1))
	assert.Equal(t, "&-", imap.EncodeMailboxName("&", imap.Rev1))
	assert.Equal(t, "INBOX", imap.EncodeMailboxName("INBOX", imap.Rev1))
	assert.Equal(t, "日本語", imap.EncodeMailboxName("日本語", imap.Rev2))

	name := "~peter/mail/台北/日本語"
	assert.Equal(t, name, imap.DecodeMailboxName(imap.EncodeMailboxName(name, imap.Rev1), imap.Rev1))
}

func TestCanonicalMailboxName(t *testing.T) {
	assert.Equal(t, imap.InboxName, imap.CanonicalMailboxName("inbox"))
	assert.Equal(t, imap.InboxName, imap.CanonicalMailboxName("InBoX"))
	assert.Equal(t, "Archive", imap.CanonicalMailboxName("Archive"))
	assert.Equal(t, "inbox/child", imap.CanonicalMailboxName("inbox/child"))
}
