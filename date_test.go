package imap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedDateTime = time.Date(2009, time.November, 2, 23, 0, 0, 0, time.FixedZone("", -6*60*60))

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"02-Nov-2009 23:00:00 -0600", true},
		{" 2-Nov-2009 23:00:00 -0600", true},
		{"2-Nov-2009 23:00:00 -0600", true},

		{"", false},
		{"10-Nov-2009", false},
		{"  2-Nov-2009 23:00:00 -0600", false},
		{"2-Nov-2009 23:00 -0600", false},
		{"abc10-Nov-2009 23:00:00 -0600123", false},
		{"2-Foo-2009 23:00:00 -0600", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			out, err := ParseDateTime(tc.in)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, out.Equal(expectedDateTime), "got %v", out)
		})
	}
}
