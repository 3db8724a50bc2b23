package utf7_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"

	"github.com/emersion/go-imapproto/utf7"
)

func TestDecode(t *testing.T) {
	tests := map[string]string{
		"":                                "",
		"INBOX":                           "INBOX",
		"&-":                              "&",
		"a&-b&-c":                         "a&b&c",
		"&ABk-":                           "\x19",
		"ABk-":                            "ABk-",
		"&Jjo-":                           "☺",
		"test&Jjo-test":                   "test☺test",
		"&-&AP8-&-":                       "&ÿ&",
		"&2AHcNw-":                        "\U00010437",
		"&ZeVnLIqe-":                      "日本語",
		"~peter/mail/&U,BTFw-/&ZeVnLIqe-": "~peter/mail/台北/日本語",
		"abc &- &AP8A,wD,- &- xyz":        "abc & ÿÿÿ & xyz",
	}
	for in, want := range tests {
		out, err := utf7.Decode(in)
		require.NoErrorf(t, err, "Decode(%+q)", in)
		assert.Equalf(t, want, out, "Decode(%+q)", in)
	}
}

func TestDecode_long(t *testing.T) {
	prefix := strings.Repeat("a", 100)
	out, err := utf7.Decode(prefix + " &2D3eCg- &2D3eCw-")
	require.NoError(t, err)
	assert.Equal(t, prefix+" \U0001f60a \U0001f60b", out)

	out, err = utf7.Decode("0 &MEIwQjBCMEIwQjBCMEIwQjBCMEIwQjBCMEI- 0")
	require.NoError(t, err)
	assert.Equal(t, "0 "+strings.Repeat("あ", 13)+" 0", out)
}

func TestDecode_invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"control character", "abc\n"},
		{"DEL", "abc\x7Fxyz"},
		{"non-ASCII", "М"},
		{"base64 alphabet", "&/+8-"},
		{"space in base64", "&ZeVnLIqe -"},
		{"CRLF in base64", "&ZeVn\r\nLIqe-"},
		{"padding", "&AAAAHw=-"},
		{"one byte short", "&2ADc-"},
		{"odd size", "&YQ-"},
		{"unfinished shift", "&Jjo"},
		{"unfinished shift before ASCII", "&Jjo!"},
		{"unfinished shift at end", "abc&Jjo"},
		{"adjacent shifts", "&U,BTFw-&ZeVnLIqe-"},
		{"encoded ASCII", "&AGE-"},
		{"encoded ampersand", "&ACY-"},
		{"lone high surrogate", "&2AA-"},
		{"lone low surrogate", "&3AA-"},
		{"high surrogate and ASCII", "&2AAAQQ-"},
		{"swapped surrogates", "&3ADYAA-"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := utf7.Decode(tc.in)
			assert.ErrorIs(t, err, utf7.ErrInvalidUTF7)
		})
	}
}

func TestDecoder_chunked(t *testing.T) {
	dec := utf7.Encoding.NewDecoder()
	var sb strings.Builder
	w := transform.NewWriter(&sb, dec)
	for _, chunk := range []string{"~peter/mail/&U,", "BTFw-/&Ze", "VnLIqe-"} {
		_, err := w.Write([]byte(chunk))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	assert.Equal(t, "~peter/mail/台北/日本語", sb.String())
}
