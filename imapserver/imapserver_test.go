package imapserver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersion/go-imapproto"
	"github.com/emersion/go-imapproto/imapwire"
)

// receive turns raw client input into requests, acknowledging synchronizing
// literals.
func receive(t *testing.T, chunks ...string) []*imapwire.Request {
	t.Helper()

	r := imapwire.NewReceiver(nil)
	var reqs []*imapwire.Request
	for _, chunk := range chunks {
		b := []byte(chunk)
		for {
			l, err := r.Feed(b)
			require.NoError(t, err)
			reqs = append(reqs, l...)
			b = nil
			if r.State() != imapwire.StateAwaitingContinuation {
				break
			}
			r.Continue()
		}
	}
	return reqs
}

func newRequest(t *testing.T, in string) *imapwire.Request {
	t.Helper()

	reqs := receive(t, in)
	require.Len(t, reqs, 1)
	return reqs[0]
}

func requireBad(t *testing.T, err error, tag string, class error, text string) {
	t.Helper()

	var imapErr *imap.Error
	require.True(t, errors.As(err, &imapErr), "expected *imap.Error, got %v", err)
	assert.Equal(t, tag, imapErr.Tag)
	assert.Equal(t, imap.StatusResponseTypeBad, imapErr.Type)
	assert.ErrorIs(t, err, class)
	if text != "" {
		assert.Equal(t, text, imapErr.Text)
	}
}
