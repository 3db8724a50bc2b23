package utf7_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersion/go-imapproto/utf7"
)

var encode = []struct {
	in  string
	out string
}{
	{"", ""},
	{"INBOX", "INBOX"},
	{"&", "&-"},
	{"a&b&c", "a&-b&-c"},
	{"\x19", "&ABk-"},
	{"Entwürfe", "Entw&APw-rfe"},
	{"~peter/mail/台北/日本語", "~peter/mail/&U,BTFw-/&ZeVnLIqe-"},
	{"\U0001f60a", "&2D3eCg-"},
	{"&ÿ&", "&-&AP8-&-"},

	// Invalid UTF-8 is replaced
	{"\xff", "&,,0-"},
}

func TestEncoder(t *testing.T) {
	for _, test := range encode {
		out := utf7.Encode(test.in)
		assert.Equalf(t, test.out, out, "UTF7Encode(%+q)", test.in)
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, test := range encode {
		if test.in == "\xff" {
			continue
		}
		out, err := utf7.Decode(utf7.Encode(test.in))
		require.NoErrorf(t, err, "UTF7Decode(UTF7Encode(%+q))", test.in)
		assert.Equal(t, test.in, out)
	}
}
