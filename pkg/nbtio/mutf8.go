package nbtio

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Strings on the wire use Java's modified UTF-8: NUL is written as two bytes
// and supplementary characters as a surrogate pair of three byte sequences.

func encodeMUTF8(s string) []byte {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r == 0:
			buf = append(buf, 0xC0, 0x80)
		case r < 0x80:
			buf = append(buf, byte(r))
		case r < 0x800:
			buf = append(buf, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			buf = appendMUTF8Unit(buf, uint16(r))
		default:
			r1, r2 := utf16.EncodeRune(r)
			buf = appendMUTF8Unit(buf, uint16(r1))
			buf = appendMUTF8Unit(buf, uint16(r2))
		}
	}
	return buf
}

func appendMUTF8Unit(buf []byte, u uint16) []byte {
	return append(buf, 0xE0|byte(u>>12), 0x80|byte((u>>6)&0x3F), 0x80|byte(u&0x3F))
}

func decodeMUTF8(data []byte) (string, error) {
	units := make([]uint16, 0, len(data))
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b < 0x80:
			units = append(units, uint16(b))
			i++
		case b&0xE0 == 0xC0:
			if i+1 >= len(data) || data[i+1]&0xC0 != 0x80 {
				return "", errors.Errorf("nbtio: malformed string at byte %d", i)
			}
			units = append(units, uint16(b&0x1F)<<6|uint16(data[i+1]&0x3F))
			i += 2
		case b&0xF0 == 0xE0:
			if i+2 >= len(data) || data[i+1]&0xC0 != 0x80 || data[i+2]&0xC0 != 0x80 {
				return "", errors.Errorf("nbtio: malformed string at byte %d", i)
			}
			units = append(units, uint16(b&0x0F)<<12|uint16(data[i+1]&0x3F)<<6|uint16(data[i+2]&0x3F))
			i += 3
		default:
			return "", errors.Errorf("nbtio: malformed string at byte %d", i)
		}
	}
	runes := utf16.Decode(units)
	buf := make([]byte, 0, len(runes))
	for _, r := range runes {
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf), nil
}
