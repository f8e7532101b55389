package wire

import (
	"encoding/json"
	"math"
	"strconv"
)

// MarshalJSON renders the tree as a JSON object with keys in wire order.
//
// Raw payloads up to 32 bytes render as {"0":b0,"1":b1,...}; longer ones as
// {"length":n,"preview":[b0,...,b31]}. Non-finite floats render as null.
func (o *Object) MarshalJSON() ([]byte, error) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	writeObjectJSON(bb, o)
	return bb.Copy(), nil
}

// MarshalJSON renders a single Node; see (*Object).MarshalJSON.
func (n Node) MarshalJSON() ([]byte, error) {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	writeNodeJSON(bb, n)
	return bb.Copy(), nil
}

func writeObjectJSON(buf *ByteBuffer, o *Object) {
	buf.WriteByte('{')
	first := true
	o.Range(func(k string, v Node) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeJSONString(buf, k)
		buf.WriteByte(':')
		writeNodeJSON(buf, v)
		return true
	})
	buf.WriteByte('}')
}

func writeNodeJSON(buf *ByteBuffer, n Node) {
	switch n.kind {
	case UintKind:
		buf.b = strconv.AppendUint(buf.b, n.u, 10)
	case Float32Kind:
		buf.b = appendJSONFloat(buf.b, n.f, 32)
	case Float64Kind:
		buf.b = appendJSONFloat(buf.b, n.f, 64)
	case StringKind:
		writeJSONString(buf, n.s)
	case ObjectKind:
		writeObjectJSON(buf, n.obj)
	case ArrayKind:
		buf.WriteByte('[')
		for i, e := range n.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeNodeJSON(buf, e)
		}
		buf.WriteByte(']')
	case ByteMapKind:
		buf.WriteByte('{')
		for i, c := range n.raw {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.b = strconv.AppendInt(buf.b, int64(i), 10)
			buf.WriteString(`":`)
			buf.b = strconv.AppendUint(buf.b, uint64(c), 10)
		}
		buf.WriteByte('}')
	case BytesKind:
		buf.WriteString(`{"length":`)
		buf.b = strconv.AppendInt(buf.b, int64(len(n.raw)), 10)
		buf.WriteString(`,"preview":[`)
		for i, c := range preview(n.raw) {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.b = strconv.AppendUint(buf.b, uint64(c), 10)
		}
		buf.WriteString("]}")
	default:
		buf.WriteString("null")
	}
}

func writeJSONString(buf *ByteBuffer, s string) {
	js, _ := json.Marshal(s)
	buf.Write(js)
}

// appendJSONFloat formats like encoding/json: plain notation for ordinary
// magnitudes, exponent form outside [1e-6, 1e21).
func appendJSONFloat(b []byte, f float64, bits int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(b, "null"...)
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	return strconv.AppendFloat(b, f, format, -1, bits)
}

func preview(b []byte) []byte {
	if len(b) > previewLen {
		return b[:previewLen]
	}
	return b
}
