package wire

import (
	"errors"
	"strconv"
)

const resumableDefault = false

var (
	// ErrShortBytes is returned when the
	// slice being decoded ends in the
	// middle of a varint or fixed-width value
	ErrShortBytes error = errShort{}

	// ErrVarintOverflow is returned when a varint keeps its continuation
	// bit set past 64 bits of accumulated shift.
	ErrVarintOverflow error = errVarintOverflow{}

	// ErrFieldNumber is returned for a tag carrying field number 0 or a
	// number beyond 32 bits. Decode treats it as the end of the message;
	// oversized numbers are not truncated to 32 bits.
	ErrFieldNumber error = errors.New("wire: invalid field number")
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether
	// or not the error leaves the
	// rest of the buffer readable.
	Resumable() bool
}

// Resumable returns whether or not the error means that the stream of data is
// malformed and the information is unrecoverable.
func Resumable(e error) bool {
	var we Error
	if errors.As(e, &we) {
		return we.Resumable()
	}
	return resumableDefault
}

type errShort struct{}

func (e errShort) Error() string   { return "wire: too few bytes left to read value" }
func (e errShort) Resumable() bool { return false }

type errVarintOverflow struct{}

func (e errVarintOverflow) Error() string   { return "wire: varint exceeds 64 bits" }
func (e errVarintOverflow) Resumable() bool { return false }

// TruncatedError is returned when a length-delimited
// field claims more bytes than remain in the buffer.
type TruncatedError struct {
	Want uint64 // declared payload length
	Have int    // bytes remaining after the length prefix
}

// Error implements the error interface
func (t TruncatedError) Error() string {
	return "wire: length-delimited field needs " + strconv.FormatUint(t.Want, 10) +
		" bytes, " + strconv.Itoa(t.Have) + " remaining"
}

// Resumable is always 'false' for TruncatedErrors
func (t TruncatedError) Resumable() bool { return false }

// WireTypeError is returned when a tag names a wire
// type the decoder cannot read a value for.
type WireTypeError struct {
	Type WireType
}

// Error implements the error interface
func (w WireTypeError) Error() string {
	if w.Type == StartGroupType || w.Type == EndGroupType {
		return "wire: group wire type " + quoteStr(w.Type.String()) + " not supported"
	}
	return "wire: unknown wire type " + strconv.Itoa(int(w.Type))
}

// Resumable returns 'false' for WireTypeErrors; the length of a
// group cannot be known without decoding it.
func (w WireTypeError) Resumable() bool { return false }

// DecodeError locates a field-level failure inside a message.
type DecodeError struct {
	Offset int    // offset of the failing tag within its message
	Field  uint32 // field number of the failing tag
	Depth  int    // nesting depth of the message, 0 for the root
	Err    error
}

// Error implements the error interface
func (d *DecodeError) Error() string {
	out := d.Err.Error() + " at field " + strconv.FormatUint(uint64(d.Field), 10) +
		", offset " + strconv.Itoa(d.Offset)
	if d.Depth > 0 {
		out += ", depth " + strconv.Itoa(d.Depth)
	}
	return out
}

// Unwrap returns the cause.
func (d *DecodeError) Unwrap() error { return d.Err }

// Resumable reports the resumability of the cause.
func (d *DecodeError) Resumable() bool { return Resumable(d.Err) }

func quoteStr(s string) string { return strconv.Quote(s) }
