package imap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersion/go-imapproto"
)

func TestNewRights(t *testing.T) {
	tests := []struct {
		in     string
		mod    imap.RightModification
		rights imap.RightSet
	}{
		{"", imap.RightModificationReplace, ""},
		{"lrs", imap.RightModificationReplace, "lrs"},
		{"+wi", imap.RightModificationAdd, "wi"},
		{"-a", imap.RightModificationRemove, "a"},
		{"kxte", imap.RightModificationReplace, "kxte"},
	}
	for _, tc := range tests {
		mod, rights, err := imap.NewRights(tc.in)
		require.NoErrorf(t, err, "NewRights(%q)", tc.in)
		assert.Equal(t, tc.mod, mod)
		assert.Equal(t, tc.rights, rights)
	}

	_, _, err := imap.NewRights("lrz")
	assert.Error(t, err)
	_, _, err = imap.NewRights("+-l")
	assert.Error(t, err)
}
