// Package wire decodes protobuf wire-format bytes without a descriptor.
//
// The decoder walks a buffer tag by tag and builds a generic tree of Nodes keyed by
// synthetic field names derived from the field number and the inferred category of
// each value:
//
//	int_<n>         varint
//	string_<n>      length-delimited, printable UTF-8
//	subMesssage_<n> length-delimited, re-parses as a non-empty message
//	bytes_<n>       length-delimited, anything else
//	float_<n>       fixed32
//	double_<n>      fixed64
//
// The subMesssage spelling is part of the key format and is relied upon by consumers.
//
// This package defines two "families" of functions:
//   - ReadXxxBytes() reads one wire primitive from a []byte and returns the remaining bytes.
//   - Decode() / DecodeStrict() turn a whole message into an *Object.
//
// Type inference is heuristic. The same bytes can be a valid string, a valid nested
// message and a valid blob at once; the classification order in Decode is fixed and
// misclassification is an accepted outcome.
package wire

// WireType is the 3-bit suffix of a field tag.
type WireType uint8

// Protobuf wire types
const (
	VarintType     WireType = 0
	Fixed64Type    WireType = 1
	BytesType      WireType = 2
	StartGroupType WireType = 3 // deprecated, unsupported
	EndGroupType   WireType = 4 // deprecated, unsupported
	Fixed32Type    WireType = 5
)

// String implements fmt.Stringer
func (t WireType) String() string {
	switch t {
	case VarintType:
		return "varint"
	case Fixed64Type:
		return "fixed64"
	case BytesType:
		return "bytes"
	case StartGroupType:
		return "start_group"
	case EndGroupType:
		return "end_group"
	case Fixed32Type:
		return "fixed32"
	default:
		return "<invalid>"
	}
}

// Synthetic key prefixes.
const (
	IntPrefix        = "int_"
	StringPrefix     = "string_"
	SubMessagePrefix = "subMesssage_"
	BytesPrefix      = "bytes_"
	FloatPrefix      = "float_"
	DoublePrefix     = "double_"
)

const (
	// MaxDepth bounds nested message re-parsing. Payloads nested deeper are
	// kept as bytes instead of being decoded.
	MaxDepth = 10000

	// byteMapLimit is the largest payload rendered as an offset->byte map.
	byteMapLimit = 32

	// previewLen is the number of leading bytes kept in a byte descriptor.
	previewLen = 32

	// maxVarintShift is the accumulated shift at which a varint is rejected.
	maxVarintShift = 64

	tagTypeMask  = 0x07
	tagTypeShift = 3
)
