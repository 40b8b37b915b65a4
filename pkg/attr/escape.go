package attr

// Text attribute values are stored printable: every byte outside 32..126 and
// the backslash itself are rewritten as "\xHH" (lowercase hex, high nibble
// first). Values that are already clean are stored as-is, which keeps the
// common case allocation-free beyond the string conversion.

const hexDigits = "0123456789abcdef"

// validValueByte reports whether c may appear verbatim in a stored text
// value: printable ASCII excluding the escape delimiter.
func validValueByte(c byte) bool {
	return c >= 32 && c <= 126 && c != '\\'
}

// EscapeValue converts raw bytes into the escaped text form.
func EscapeValue(raw []byte) string {
	invalid := 0
	for _, c := range raw {
		if !validValueByte(c) {
			invalid++
		}
	}
	if invalid == 0 {
		return string(raw)
	}

	// Each escaped byte grows from 1 to 4 characters.
	out := make([]byte, 0, len(raw)+3*invalid)
	for _, c := range raw {
		if validValueByte(c) {
			out = append(out, c)
			continue
		}
		out = append(out, '\\', 'x', hexDigits[(c>>4)&0xf], hexDigits[c&0xf])
	}
	return string(out)
}

// UnescapeValue reverses EscapeValue. Malformed escape sequences are copied
// through verbatim rather than rejected.
func UnescapeValue(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x' {
			hi := hexNibble(s[i+2])
			lo := hexNibble(s[i+3])
			if hi >= 0 && lo >= 0 {
				out = append(out, byte(hi<<4|lo))
				i += 3
				continue
			}
		}
		out = append(out, s[i])
	}
	return out
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
