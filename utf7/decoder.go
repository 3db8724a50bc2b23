package utf7

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

type decoder struct {
	// ascii is false right after a base64 section, where another base64
	// section isn't allowed to start.
	ascii bool
}

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for i := 0; i < len(src); i++ {
		ch := src[i]

		if ch < min || ch > max { // Illegal code point in ASCII mode
			return nDst, nSrc, ErrInvalidUTF7
		}

		if ch != '&' {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nSrc++
			dst[nDst] = ch
			nDst++
			d.ascii = true
			continue
		}

		// Find the end of the base64 or "&-" segment
		start := i + 1
		for i++; i < len(src) && src[i] != '-'; i++ {
			if src[i] == '\r' || src[i] == '\n' {
				return nDst, nSrc, ErrInvalidUTF7
			}
		}

		if i == len(src) { // Implicit shift ("&...")
			if atEOF {
				return nDst, nSrc, ErrInvalidUTF7
			}
			return nDst, nSrc, transform.ErrShortSrc
		}

		var b []byte
		ascii := true
		if i == start { // Escape sequence "&-"
			b = []byte{'&'}
		} else { // Control or non-ASCII code points in base64
			if !d.ascii { // Null shift ("&...-&...-")
				return nDst, nSrc, ErrInvalidUTF7
			}
			b = decode(src[start:i])
			ascii = false
		}

		if len(b) == 0 { // Bad encoding
			return nDst, nSrc, ErrInvalidUTF7
		}
		if nDst+len(b) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		nSrc = i + 1
		nDst += copy(dst[nDst:], b)
		d.ascii = ascii
	}

	return nDst, nSrc, nil
}

func (d *decoder) Reset() {
	d.ascii = true
}

// decode converts a modified base64 string of UTF-16BE code units to UTF-8.
// It returns nil if the input is invalid.
func decode(b64data []byte) []byte {
	b := make([]byte, b64.DecodedLen(len(b64data)))
	n, err := b64.Decode(b, b64data)
	if err != nil || n%2 == 1 {
		return nil
	}
	b = b[:n]

	var out []byte
	for i := 0; i < n; i += 2 {
		r := rune(b[i])<<8 | rune(b[i+1])
		if utf16.IsSurrogate(r) {
			if i += 2; i == n {
				return nil
			}
			r2 := rune(b[i])<<8 | rune(b[i+1])
			if r = utf16.DecodeRune(r, r2); r == repl {
				return nil
			}
		} else if min <= r && r <= max {
			// Printable ASCII must not be base64-encoded
			return nil
		}
		out = utf8.AppendRune(out, r)
	}
	return out
}
