package imap

import (
	"fmt"
	"time"
)

// DateTimeLayout is the layout of the date-time rule, without the
// surrounding quotes. See RFC 9051 section 9.
const DateTimeLayout = "2-Jan-2006 15:04:05 -0700"

// ParseDateTime parses an IMAP date-time, as used by APPEND.
//
// The day is either two digits or one digit preceded by a space
// (date-day-fixed). Single digits without the space are accepted as well.
func ParseDateTime(s string) (time.Time, error) {
	v := s
	if len(v) > 0 && v[0] == ' ' {
		v = v[1:]
	}
	t, err := time.Parse(DateTimeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("imap: invalid date-time %q", s)
	}
	return t, nil
}
