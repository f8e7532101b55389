package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// ReadVarintBytes reads a base-128 varint and returns the remaining bytes.
// It fails with ErrVarintOverflow once the continuation bit is still set
// after 64 bits of shift, and with ErrShortBytes when b ends mid-varint.
func ReadVarintBytes(b []byte) (v uint64, o []byte, err error) {
	var shift uint
	for i := 0; i < len(b); i++ {
		c := b[i]
		v |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return v, b[i+1:], nil
		}
		shift += 7
		if shift >= maxVarintShift {
			return 0, b, ErrVarintOverflow
		}
	}
	return 0, b, ErrShortBytes
}

// ReadTagBytes reads a field tag and splits it into field number and wire type.
// Unknown wire types produce a WireTypeError; field number 0 or a number that
// does not fit in 32 bits produces ErrFieldNumber.
// Group wire types are returned as-is; they fail later when their value is read.
func ReadTagBytes(b []byte) (field uint32, typ WireType, o []byte, err error) {
	tag, o, err := ReadVarintBytes(b)
	if err != nil {
		return 0, 0, b, err
	}
	typ = WireType(tag & tagTypeMask)
	if typ > Fixed32Type {
		return 0, 0, b, WireTypeError{Type: typ}
	}
	num := tag >> tagTypeShift
	if num == 0 || num > math.MaxUint32 {
		return 0, 0, b, ErrFieldNumber
	}
	return uint32(num), typ, o, nil
}

// ReadFixed32Bytes reads a little-endian IEEE-754 float32.
func ReadFixed32Bytes(b []byte) (f float32, o []byte, err error) {
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, b, ErrShortBytes
	}
	return math.Float32frombits(v), b[n:], nil
}

// ReadFixed64Bytes reads a little-endian IEEE-754 float64.
func ReadFixed64Bytes(b []byte) (f float64, o []byte, err error) {
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, b, ErrShortBytes
	}
	return math.Float64frombits(v), b[n:], nil
}

// ReadLengthDelimitedBytes reads a varint length prefix and returns the
// payload it frames. The payload aliases b.
func ReadLengthDelimitedBytes(b []byte) (payload []byte, o []byte, err error) {
	sz, rest, err := ReadVarintBytes(b)
	if err != nil {
		return nil, b, err
	}
	if sz > uint64(len(rest)) {
		return nil, b, TruncatedError{Want: sz, Have: len(rest)}
	}
	return rest[:sz], rest[sz:], nil
}
