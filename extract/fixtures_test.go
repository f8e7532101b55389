package extract_test

import (
	"encoding/base64"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/synadia-labs/protoprobe/extract"
)

// pb builds protobuf fixtures field by field.
type pb []byte

func (m pb) str(n protowire.Number, s string) pb {
	b := protowire.AppendTag(m, n, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func (m pb) num(n protowire.Number, v uint64) pb {
	b := protowire.AppendTag(m, n, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func (m pb) msg(n protowire.Number, child pb) pb {
	b := protowire.AppendTag(m, n, protowire.BytesType)
	return protowire.AppendBytes(b, child)
}

func (m pb) raw(n protowire.Number, v []byte) pb {
	b := protowire.AppendTag(m, n, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func (m pb) f32(n protowire.Number, v float32) pb {
	b := protowire.AppendTag(m, n, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

// ts builds a Timestamp message with epoch seconds.
func ts(sec uint64) pb { return pb(nil).num(1, sec) }

func dataURI(m pb) []byte {
	return []byte(extract.DataURIPrefix + base64.StdEncoding.EncodeToString(m))
}

const (
	nov14 = 1700000000 // 2023-11-14 22:13:20 UTC
	dec14 = 1702592000 // 2023-12-14 22:13:20 UTC
)
