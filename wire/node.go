package wire

import "math"

// Kind identifies the variant held by a Node.
type Kind uint8

// Node kinds
const (
	InvalidKind Kind = iota

	UintKind    // varint
	Float32Kind // fixed32
	Float64Kind // fixed64
	StringKind  // printable text
	ObjectKind  // nested message
	ArrayKind   // repeated key
	ByteMapKind // raw payload up to 32 bytes
	BytesKind   // raw payload over 32 bytes, rendered as length + preview
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case UintKind:
		return "uint"
	case Float32Kind:
		return "float32"
	case Float64Kind:
		return "float64"
	case StringKind:
		return "string"
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	case ByteMapKind:
		return "bytemap"
	case BytesKind:
		return "bytes"
	default:
		return "<invalid>"
	}
}

// Node is one value of the generic tree. The zero Node is invalid and
// every accessor on it reports ok == false.
type Node struct {
	kind Kind
	u    uint64
	f    float64
	s    string
	obj  *Object
	arr  []Node
	raw  []byte
}

// Uint returns a varint Node.
func Uint(v uint64) Node { return Node{kind: UintKind, u: v} }

// Float32 returns a fixed32 Node.
func Float32(v float32) Node { return Node{kind: Float32Kind, f: float64(v)} }

// Float64 returns a fixed64 Node.
func Float64(v float64) Node { return Node{kind: Float64Kind, f: v} }

// String returns a text Node.
func String(s string) Node { return Node{kind: StringKind, s: s} }

// ObjectNode returns a nested message Node.
func ObjectNode(o *Object) Node { return Node{kind: ObjectKind, obj: o} }

// Array returns an array Node holding vs.
func Array(vs ...Node) Node { return Node{kind: ArrayKind, arr: vs} }

// ByteMap returns a Node for a short raw payload. Payloads longer than
// 32 bytes are turned into a byte descriptor instead.
func ByteMap(b []byte) Node {
	if len(b) > byteMapLimit {
		return ByteDescriptor(b)
	}
	return Node{kind: ByteMapKind, raw: b}
}

// ByteDescriptor returns a length + preview Node for a raw payload.
func ByteDescriptor(b []byte) Node { return Node{kind: BytesKind, raw: b} }

// Kind reports the variant held by n.
func (n Node) Kind() Kind { return n.kind }

// IsValid reports whether n holds a value.
func (n Node) IsValid() bool { return n.kind != InvalidKind }

// AsUint returns the varint value.
func (n Node) AsUint() (uint64, bool) {
	if n.kind != UintKind {
		return 0, false
	}
	return n.u, true
}

// AsInt64 returns the varint value as int64. Values above math.MaxInt64
// are reported as absent rather than wrapped.
func (n Node) AsInt64() (int64, bool) {
	if n.kind != UintKind || n.u > math.MaxInt64 {
		return 0, false
	}
	return int64(n.u), true
}

// AsFloat64 returns a numeric value widened to float64. Varints convert too.
func (n Node) AsFloat64() (float64, bool) {
	switch n.kind {
	case Float32Kind, Float64Kind:
		return n.f, true
	case UintKind:
		return float64(n.u), true
	}
	return 0, false
}

// AsString returns the text value.
func (n Node) AsString() (string, bool) {
	if n.kind != StringKind {
		return "", false
	}
	return n.s, true
}

// AsObject returns the nested message.
func (n Node) AsObject() (*Object, bool) {
	if n.kind != ObjectKind || n.obj == nil {
		return nil, false
	}
	return n.obj, true
}

// AsArray returns the elements collected under a repeated key.
func (n Node) AsArray() ([]Node, bool) {
	if n.kind != ArrayKind {
		return nil, false
	}
	return n.arr, true
}

// AsBytes returns the raw payload of a byte map or byte descriptor.
func (n Node) AsBytes() ([]byte, bool) {
	if n.kind != ByteMapKind && n.kind != BytesKind {
		return nil, false
	}
	return n.raw, true
}

// Get looks up key when n is an object. Arrays are not searched.
func (n Node) Get(key string) (Node, bool) {
	o, ok := n.AsObject()
	if !ok {
		return Node{}, false
	}
	return o.Get(key)
}

// Len returns the number of elements of an array or entries of an object,
// the payload length for raw kinds and 1 for scalars.
func (n Node) Len() int {
	switch n.kind {
	case InvalidKind:
		return 0
	case ArrayKind:
		return len(n.arr)
	case ObjectKind:
		return n.obj.Len()
	case ByteMapKind, BytesKind:
		return len(n.raw)
	}
	return 1
}

// Objects returns the object elements of n: the object itself, or the
// object members of an array. Non-object elements are skipped.
func (n Node) Objects() []*Object {
	switch n.kind {
	case ObjectKind:
		if n.obj != nil {
			return []*Object{n.obj}
		}
	case ArrayKind:
		out := make([]*Object, 0, len(n.arr))
		for _, e := range n.arr {
			if o, ok := e.AsObject(); ok {
				out = append(out, o)
			}
		}
		return out
	}
	return nil
}

// Strings returns the text elements of n: the string itself, or the
// string members of an array.
func (n Node) Strings() []string {
	switch n.kind {
	case StringKind:
		return []string{n.s}
	case ArrayKind:
		out := make([]string, 0, len(n.arr))
		for _, e := range n.arr {
			if s, ok := e.AsString(); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
