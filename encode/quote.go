package encode

import (
	"encoding/hex"
	"unicode/utf8"
)

// Quote returns v as a JSON string literal.  Control characters are escaped
// and invalid UTF-8 is replaced with U+FFFD.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		case '\u2028', '\u2029':
			// valid JSON, but not valid javascript
			ucs[0] = byte(r >> 8)
			ucs[1] = byte(r)
			cps = hex.AppendEncode(cps[:0], ucs)
			d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
		default:
			if r < 0x20 || r == 0x7f {
				ucs[0] = 0
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return append(d, '"')
}
