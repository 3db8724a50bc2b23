package imap

import (
	"fmt"
	"strconv"
	"strings"
)

// UIDRange is a single uid or uid-range value. Zero represents "*", which is
// safe because UIDs are non-zero. Start <= Stop, except for "n:*" where
// Stop is zero.
type UIDRange struct {
	Start, Stop uint32
}

// parseUID parses a single non-zero UID or "*".
func parseUID(v string) (uint32, error) {
	if v == "*" {
		return 0, nil
	}
	if n, err := strconv.ParseUint(v, 10, 32); err == nil && v != "" && v[0] != '0' {
		return uint32(n), nil
	}
	return 0, fmt.Errorf("imap: bad UID %q", v)
}

func parseUIDRange(v string) (UIDRange, error) {
	var (
		r   UIDRange
		err error
	)
	sep := strings.IndexByte(v, ':')
	if sep < 0 {
		r.Start, err = parseUID(v)
		r.Stop = r.Start
		return r, err
	}
	if r.Start, err = parseUID(v[:sep]); err != nil {
		return r, err
	}
	if r.Stop, err = parseUID(v[sep+1:]); err != nil {
		return r, err
	}
	if (r.Stop < r.Start && r.Stop != 0) || r.Start == 0 {
		r.Start, r.Stop = r.Stop, r.Start
	}
	return r, nil
}

// Contains reports whether the non-zero UID q is in the range. The dynamic
// range "n:*" contains all q >= n.
func (r UIDRange) Contains(q uint32) bool {
	return r.Start != 0 && r.Start <= q && (q <= r.Stop || r.Stop == 0)
}

// String returns the range as a uid or uid-range string.
func (r UIDRange) String() string {
	num := func(n uint32) string {
		if n == 0 {
			return "*"
		}
		return strconv.FormatUint(uint64(n), 10)
	}
	if r.Start == r.Stop {
		return num(r.Start)
	}
	return num(r.Start) + ":" + num(r.Stop)
}

// UIDSet is a set of UIDs, as sent by a client in the uid-set rule. The
// ranges are kept in the order they were sent.
type UIDSet []UIDRange

// ParseUIDSet parses a comma-separated list of UIDs and UID ranges.
func ParseUIDSet(s string) (UIDSet, error) {
	if s == "" {
		return nil, fmt.Errorf("imap: empty UID set")
	}
	var set UIDSet
	for _, v := range strings.Split(s, ",") {
		r, err := parseUIDRange(v)
		if err != nil {
			return nil, err
		}
		set = append(set, r)
	}
	return set, nil
}

// Contains reports whether the non-zero UID q is in the set.
func (set UIDSet) Contains(q uint32) bool {
	for _, r := range set {
		if r.Contains(q) {
			return true
		}
	}
	return false
}

// Dynamic reports whether the set refers to "*".
func (set UIDSet) Dynamic() bool {
	for _, r := range set {
		if r.Start == 0 || r.Stop == 0 {
			return true
		}
	}
	return false
}

func (set UIDSet) String() string {
	l := make([]string, len(set))
	for i, r := range set {
		l[i] = r.String()
	}
	return strings.Join(l, ",")
}

// ExpungeArguments contains the arguments of the EXPUNGE and UID EXPUNGE
// commands. UIDs is nil for a plain EXPUNGE.
type ExpungeArguments struct {
	Tag  string
	UIDs UIDSet
}

func (args *ExpungeArguments) CommandTag() string { return args.Tag }
