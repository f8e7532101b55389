package wire

import "bytes"

// Decode parses b as a protobuf message and returns the generic tree.
//
// Decoding is best-effort. It reads tags from offset 0 until the buffer is
// exhausted or a tag or value cannot be read; whatever was decoded up to that
// point is returned. Decode never fails and never returns nil.
func Decode(b []byte) *Object {
	o, _ := DecodeStrict(b)
	return o
}

// DecodeStrict is Decode, but also reports the field-level error that stopped
// decoding of the root message: a malformed value varint, a truncated
// fixed-width or length-delimited payload, or a group wire type. The
// returned *Object holds every field decoded before the failure.
//
// A malformed or truncated tag, an unknown wire type and field number 0 are
// end-of-message conditions, not errors; they stop decoding silently.
func DecodeStrict(b []byte) (*Object, error) {
	return decodeMessage(b, 0)
}

func decodeMessage(b []byte, depth int) (*Object, error) {
	obj := NewObject()
	p := b
	for len(p) > 0 {
		off := len(b) - len(p)
		field, typ, o, err := ReadTagBytes(p)
		if err != nil {
			break
		}
		v, o, err := readValue(typ, o, depth)
		if err != nil {
			return obj, &DecodeError{Offset: off, Field: field, Depth: depth, Err: err}
		}
		obj.Add(keyFor(field, typ, v), v)
		p = o
	}
	return obj, nil
}

func readValue(typ WireType, b []byte, depth int) (Node, []byte, error) {
	switch typ {
	case VarintType:
		u, o, err := ReadVarintBytes(b)
		if err != nil {
			return Node{}, b, err
		}
		return Uint(u), o, nil
	case Fixed64Type:
		f, o, err := ReadFixed64Bytes(b)
		if err != nil {
			return Node{}, b, err
		}
		return Float64(f), o, nil
	case Fixed32Type:
		f, o, err := ReadFixed32Bytes(b)
		if err != nil {
			return Node{}, b, err
		}
		return Float32(f), o, nil
	case BytesType:
		payload, o, err := ReadLengthDelimitedBytes(b)
		if err != nil {
			return Node{}, b, err
		}
		return classify(payload, depth), o, nil
	default:
		return Node{}, b, WireTypeError{Type: typ}
	}
}

// classify infers the category of a length-delimited payload. The order is
// fixed: printable text, then a nested message that decodes cleanly to at
// least one field, then raw bytes.
func classify(payload []byte, depth int) Node {
	if IsPrintableText(payload) {
		return String(string(payload))
	}
	if depth < MaxDepth {
		sub, err := decodeMessage(payload, depth+1)
		if err == nil && sub.Len() > 0 {
			return ObjectNode(sub)
		}
	}
	return ByteMap(bytes.Clone(payload))
}
