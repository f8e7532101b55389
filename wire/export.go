package wire

import (
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"
)

// treeEncMode encodes exported trees. Map keys are sorted so the same tree
// always produces the same bytes.
var treeEncMode cbor.EncMode

func init() {
	var err error
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCoreDeterministic,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsEmpty,
	}
	treeEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create tree CBOR encoder mode: %v", err))
	}
}

// Native converts the tree to plain Go values with the same shape as the
// JSON rendering: map[string]any, []any, uint64, float32, float64, string.
func (o *Object) Native() map[string]any {
	out := make(map[string]any, o.Len())
	o.Range(func(k string, v Node) bool {
		out[k] = v.Native()
		return true
	})
	return out
}

// Native converts n to plain Go values; see (*Object).Native.
func (n Node) Native() any {
	switch n.kind {
	case UintKind:
		return n.u
	case Float32Kind:
		return float32(n.f)
	case Float64Kind:
		return n.f
	case StringKind:
		return n.s
	case ObjectKind:
		return n.obj.Native()
	case ArrayKind:
		out := make([]any, len(n.arr))
		for i, e := range n.arr {
			out[i] = e.Native()
		}
		return out
	case ByteMapKind:
		out := make(map[string]any, len(n.raw))
		for i, c := range n.raw {
			out[strconv.Itoa(i)] = uint64(c)
		}
		return out
	case BytesKind:
		p := preview(n.raw)
		pv := make([]any, len(p))
		for i, c := range p {
			pv[i] = uint64(c)
		}
		return map[string]any{"length": uint64(len(n.raw)), "preview": pv}
	}
	return nil
}

// MarshalCBOR encodes the tree as CBOR with deterministic key order.
func MarshalCBOR(o *Object) ([]byte, error) {
	return treeEncMode.Marshal(o.Native())
}

// AppendMsgpack appends the tree to b as MessagePack, keeping wire key order.
func AppendMsgpack(b []byte, o *Object) []byte {
	b = msgp.AppendMapHeader(b, uint32(o.Len()))
	o.Range(func(k string, v Node) bool {
		b = msgp.AppendString(b, k)
		b = appendNodeMsgpack(b, v)
		return true
	})
	return b
}

func appendNodeMsgpack(b []byte, n Node) []byte {
	switch n.kind {
	case UintKind:
		return msgp.AppendUint64(b, n.u)
	case Float32Kind:
		return msgp.AppendFloat32(b, float32(n.f))
	case Float64Kind:
		return msgp.AppendFloat64(b, n.f)
	case StringKind:
		return msgp.AppendString(b, n.s)
	case ObjectKind:
		return AppendMsgpack(b, n.obj)
	case ArrayKind:
		b = msgp.AppendArrayHeader(b, uint32(len(n.arr)))
		for _, e := range n.arr {
			b = appendNodeMsgpack(b, e)
		}
		return b
	case ByteMapKind:
		b = msgp.AppendMapHeader(b, uint32(len(n.raw)))
		for i, c := range n.raw {
			b = msgp.AppendString(b, strconv.Itoa(i))
			b = msgp.AppendUint8(b, c)
		}
		return b
	case BytesKind:
		p := preview(n.raw)
		b = msgp.AppendMapHeader(b, 2)
		b = msgp.AppendString(b, "length")
		b = msgp.AppendInt(b, len(n.raw))
		b = msgp.AppendString(b, "preview")
		b = msgp.AppendArrayHeader(b, uint32(len(p)))
		for _, c := range p {
			b = msgp.AppendUint8(b, c)
		}
		return b
	}
	return msgp.AppendNil(b)
}
