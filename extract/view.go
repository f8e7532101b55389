package extract

import (
	"time"

	"github.com/synadia-labs/protoprobe/wire"
)

// TimeLayout is the rendering of epoch seconds in extracted records (UTC).
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime renders epoch seconds with TimeLayout.
func FormatTime(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(TimeLayout)
}

func formatDate(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.DateOnly)
}

func intKey(n uint32) string   { return wire.FieldKey(wire.IntPrefix, n) }
func strKey(n uint32) string   { return wire.FieldKey(wire.StringPrefix, n) }
func msgKey(n uint32) string   { return wire.FieldKey(wire.SubMessagePrefix, n) }
func bytesKey(n uint32) string { return wire.FieldKey(wire.BytesPrefix, n) }
func fltKey(n uint32) string   { return wire.FieldKey(wire.FloatPrefix, n) }

// view answers lookups on a message by field number. Every lookup on a
// missing field, a field of another kind or a nil message yields the
// zero value or nil.
type view struct {
	o *wire.Object
}

func (v view) present() bool { return v.o != nil }

func (v view) msg(n uint32) view {
	o, _ := v.o.Object(msgKey(n))
	return view{o: o}
}

func (v view) str(n uint32) string {
	s, _ := v.o.String(strKey(n))
	return s
}

func (v view) optStr(n uint32) *string {
	s, ok := v.o.String(strKey(n))
	if !ok {
		return nil
	}
	return &s
}

func (v view) num(n uint32) int64 {
	i, _ := v.o.Int64(intKey(n))
	return i
}

func (v view) optNum(n uint32) *int64 {
	i, ok := v.o.Int64(intKey(n))
	if !ok {
		return nil
	}
	return &i
}

func (v view) flag(n uint32) bool {
	b, _ := v.o.Flag(intKey(n))
	return b
}

func (v view) optFlag(n uint32) *bool {
	b, ok := v.o.Flag(intKey(n))
	if !ok {
		return nil
	}
	return &b
}

// optFloat reads a fixed32 field.
func (v view) optFloat(n uint32) *float64 {
	f, ok := v.o.Float64(fltKey(n))
	if !ok {
		return nil
	}
	return &f
}

// seconds reads the epoch seconds of a Timestamp message at field n.
func (v view) seconds(n uint32) *int64 {
	s, ok := v.o.Seconds(msgKey(n))
	if !ok {
		return nil
	}
	return &s
}

// stamp reads a Timestamp at field n and returns its rendering and seconds.
func (v view) stamp(n uint32) (string, *int64) {
	s := v.seconds(n)
	if s == nil {
		return "", nil
	}
	return FormatTime(*s), s
}
