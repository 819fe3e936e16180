package constpool

import "fmt"

// decodeModifiedUTF8 decodes the JVM's modified UTF-8 encoding. It differs
// from standard UTF-8 in three ways: U+0000 is encoded as the two-byte
// sequence 0xC0 0x80 (a raw 0x00 byte never appears), supplementary code
// points are encoded as six bytes (two three-byte surrogate halves, CESU-8
// style), and four-byte sequences do not exist.
func decodeModifiedUTF8(b []byte) (string, error) {
	buf := make([]rune, 0, len(b))

	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == 0x00:
			return "", fmt.Errorf("raw NUL byte at offset %d", i)

		case c < 0x80:
			buf = append(buf, rune(c))
			i++

		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", fmt.Errorf("truncated two-byte sequence at offset %d", i)
			}
			buf = append(buf, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2

		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", fmt.Errorf("truncated three-byte sequence at offset %d", i)
			}
			r := rune(c&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			if r >= 0xD800 && r <= 0xDBFF {
				// High surrogate: must be followed by a three-byte low
				// surrogate, the pair combines into a supplementary code point.
				if i+5 >= len(b) || b[i+3] != 0xED || b[i+4]&0xF0 != 0xB0 || b[i+5]&0xC0 != 0x80 {
					return "", fmt.Errorf("unpaired high surrogate at offset %d", i)
				}
				lo := rune(0xD)<<12 | rune(b[i+4]&0x3F)<<6 | rune(b[i+5]&0x3F)
				buf = append(buf, 0x10000+(r-0xD800)<<10+(lo-0xDC00))
				i += 6
				continue
			}
			if r >= 0xDC00 && r <= 0xDFFF {
				return "", fmt.Errorf("unpaired low surrogate at offset %d", i)
			}
			buf = append(buf, r)
			i += 3

		default:
			return "", fmt.Errorf("invalid byte 0x%02x at offset %d", c, i)
		}
	}

	return string(buf), nil
}
