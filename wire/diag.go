package wire

import (
	"encoding/hex"
	"strconv"
)

// Diag renders the tree in an indented, human-oriented notation:
//
//	{
//	  int_1: 150
//	  string_2: "testing"
//	  bytes_3: h'0a0b'
//	  bytes_4: h'000102...'(40 bytes)
//	  int_5: [1, 2, 3]
//	}
//
// Floats carry an f32/f64 suffix so the wire width stays visible.
func Diag(o *Object) string {
	bb := GetByteBuffer()
	defer PutByteBuffer(bb)
	diagObject(bb, o, 0)
	return string(bb.Bytes())
}

func diagObject(buf *ByteBuffer, o *Object, depth int) {
	if o.Len() == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteByte('{')
	o.Range(func(k string, v Node) bool {
		buf.indent(depth + 1)
		buf.WriteString(k)
		buf.WriteString(": ")
		diagNode(buf, v, depth+1)
		return true
	})
	buf.indent(depth)
	buf.WriteByte('}')
}

func diagNode(buf *ByteBuffer, n Node, depth int) {
	switch n.kind {
	case UintKind:
		buf.WriteString(strconv.FormatUint(n.u, 10))
	case Float32Kind:
		buf.WriteString(strconv.FormatFloat(n.f, 'g', -1, 32))
		buf.WriteString("f32")
	case Float64Kind:
		buf.WriteString(strconv.FormatFloat(n.f, 'g', -1, 64))
		buf.WriteString("f64")
	case StringKind:
		buf.WriteString(strconv.Quote(n.s))
	case ObjectKind:
		diagObject(buf, n.obj, depth)
	case ArrayKind:
		buf.WriteByte('[')
		for i, e := range n.arr {
			if i > 0 {
				buf.WriteString(", ")
			}
			diagNode(buf, e, depth)
		}
		buf.WriteByte(']')
	case ByteMapKind, BytesKind:
		buf.WriteString("h'")
		p := preview(n.raw)
		d := make([]byte, hex.EncodedLen(len(p)))
		hex.Encode(d, p)
		buf.Write(d)
		if len(n.raw) > len(p) {
			buf.WriteString("...'(")
			buf.WriteString(strconv.Itoa(len(n.raw)))
			buf.WriteString(" bytes)")
		} else {
			buf.WriteByte('\'')
		}
	default:
		buf.WriteString("<invalid>")
	}
}
