package wire

import (
	"strconv"
	"strings"
)

// FieldKey builds the synthetic key for field number n under prefix,
// e.g. FieldKey(StringPrefix, 3) == "string_3".
func FieldKey(prefix string, n uint32) string {
	return prefix + strconv.FormatUint(uint64(n), 10)
}

// ParseFieldKey splits a synthetic key into its prefix and field number.
func ParseFieldKey(key string) (prefix string, n uint32, ok bool) {
	i := strings.LastIndexByte(key, '_')
	if i < 0 || i == len(key)-1 {
		return "", 0, false
	}
	prefix = key[:i+1]
	switch prefix {
	case IntPrefix, StringPrefix, SubMessagePrefix, BytesPrefix, FloatPrefix, DoublePrefix:
	default:
		return "", 0, false
	}
	v, err := strconv.ParseUint(key[i+1:], 10, 32)
	if err != nil {
		return "", 0, false
	}
	return prefix, uint32(v), true
}

// keyFor returns the synthetic key for a decoded value.
func keyFor(field uint32, typ WireType, v Node) string {
	switch typ {
	case VarintType:
		return FieldKey(IntPrefix, field)
	case Fixed32Type:
		return FieldKey(FloatPrefix, field)
	case Fixed64Type:
		return FieldKey(DoublePrefix, field)
	case BytesType:
		switch v.kind {
		case StringKind:
			return FieldKey(StringPrefix, field)
		case ObjectKind:
			return FieldKey(SubMessagePrefix, field)
		default:
			return FieldKey(BytesPrefix, field)
		}
	}
	return "field_" + strconv.FormatUint(uint64(field), 10)
}

// IsPrintableText reports whether b is non-empty and every byte is an ASCII
// graphic character or ASCII whitespace (space, \t, \n, \f, \r). Such
// bytes are always valid UTF-8.
func IsPrintableText(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c >= 0x21 && c <= 0x7e {
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\f', '\r':
			continue
		}
		return false
	}
	return true
}
