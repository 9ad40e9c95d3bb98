package nbt

import (
	"strconv"
	"strings"
)

// Format renders t in the stringified NBT notation, with compound keys sorted.
func Format(t Tag) string {
	var sb strings.Builder
	writeTag(&sb, t)
	return sb.String()
}

func writeTag(sb *strings.Builder, t Tag) {
	switch t := t.(type) {
	case nil, End:
		sb.WriteString("END")
	case Byte:
		sb.WriteString(strconv.Itoa(int(int8(t))))
		sb.WriteByte('b')
	case Short:
		sb.WriteString(strconv.Itoa(int(t)))
		sb.WriteByte('s')
	case Int:
		sb.WriteString(strconv.Itoa(int(t)))
	case Long:
		sb.WriteString(strconv.FormatInt(int64(t), 10))
		sb.WriteByte('L')
	case Float:
		sb.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 32))
		sb.WriteByte('f')
	case Double:
		sb.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 64))
		sb.WriteByte('d')
	case String:
		sb.WriteString(strconv.Quote(string(t)))
	case ByteArray:
		sb.WriteString("[B;")
		for i, v := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(int8(v))))
			sb.WriteByte('B')
		}
		sb.WriteByte(']')
	case IntArray:
		sb.WriteString("[I;")
		for i, v := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(v)))
		}
		sb.WriteByte(']')
	case LongArray:
		sb.WriteString("[L;")
		for i, v := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(v, 10))
			sb.WriteByte('L')
		}
		sb.WriteByte(']')
	case *List:
		sb.WriteByte('[')
		for i := 0; i < t.Len(); i++ {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeTag(sb, t.Get(i))
		}
		sb.WriteByte(']')
	case Tree:
		sb.WriteByte('{')
		for i, k := range t.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeKey(sb, k)
			sb.WriteByte(':')
			writeTag(sb, t.Get(k))
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("?")
	}
}

func writeKey(sb *strings.Builder, k string) {
	if k != "" && strings.IndexFunc(k, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' || r == '.' || r == '+')
	}) < 0 {
		sb.WriteString(k)
		return
	}
	sb.WriteString(strconv.Quote(k))
}
