package benchmarks

import "google.golang.org/protobuf/encoding/protowire"

// Payloads shaped like the responses protoprobe is pointed at: a user
// record with nested team and plan messages, and a list of repeated rows.
var (
	smallMsg    = buildSmall()
	userMsg     = buildUser()
	repeatedMsg = buildRepeated(200)
	blobMsg     = buildBlob(4096)
)

func buildSmall() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 150)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, "testing")
	return b
}

func buildUser() []byte {
	var user []byte
	user = protowire.AppendTag(user, 1, protowire.BytesType)
	user = protowire.AppendString(user, "api-key-0123456789")
	user = protowire.AppendTag(user, 2, protowire.BytesType)
	user = protowire.AppendString(user, "Ada Lovelace")
	user = protowire.AppendTag(user, 3, protowire.BytesType)
	user = protowire.AppendString(user, "ada@example.com")
	user = protowire.AppendTag(user, 4, protowire.BytesType)
	user = protowire.AppendBytes(user, protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 1700000000))

	var plan []byte
	plan = protowire.AppendTag(plan, 2, protowire.BytesType)
	plan = protowire.AppendString(plan, "Pro")
	plan = protowire.AppendTag(plan, 7, protowire.Fixed32Type)
	plan = protowire.AppendFixed32(plan, 0x41200000)
	for i := uint64(0); i < 8; i++ {
		plan = protowire.AppendTag(plan, 9, protowire.VarintType)
		plan = protowire.AppendVarint(plan, i)
	}

	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, user)
	b = protowire.AppendTag(b, 6, protowire.BytesType)
	b = protowire.AppendBytes(b, plan)
	b = protowire.AppendTag(b, 7, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 0x3ff8000000000000)
	return b
}

func buildRepeated(n int) []byte {
	var b []byte
	for i := 0; i < n; i++ {
		var row []byte
		row = protowire.AppendTag(row, 1, protowire.VarintType)
		row = protowire.AppendVarint(row, uint64(i))
		row = protowire.AppendTag(row, 2, protowire.BytesType)
		row = protowire.AppendString(row, "team-entry")
		row = protowire.AppendTag(row, 3, protowire.VarintType)
		row = protowire.AppendVarint(row, uint64(i)*1000)
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, row)
	}
	return b
}

func buildBlob(n int) []byte {
	blob := make([]byte, n)
	for i := range blob {
		blob[i] = byte(i)
	}
	var b []byte
	b = protowire.AppendTag(b, 5, protowire.BytesType)
	return protowire.AppendBytes(b, blob)
}
