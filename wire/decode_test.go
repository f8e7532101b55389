package wire_test

import (
	"encoding/hex"
	"errors"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/synadia-labs/protoprobe/wire"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func mustJSON(t *testing.T, o *wire.Object) string {
	t.Helper()
	js, err := o.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	return string(js)
}

// TestDecodeVarintAndString covers the canonical example from the protobuf
// encoding guide: field 1 = 150, field 2 = "testing".
func TestDecodeVarintAndString(t *testing.T) {
	o := wire.Decode(mustHex(t, "089601120774657374696e67"))
	if got, want := mustJSON(t, o), `{"int_1":150,"string_2":"testing"}`; got != want {
		t.Fatalf("decode mismatch: got %s want %s", got, want)
	}
	if v, ok := o.Uint("int_1"); !ok || v != 150 {
		t.Fatalf("int_1 = %d, %v; want 150", v, ok)
	}
	if s, ok := o.String("string_2"); !ok || s != "testing" {
		t.Fatalf("string_2 = %q, %v; want testing", s, ok)
	}
}

func TestDecodeVarintValues(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 150, 300, 16383, 16384, 1 << 32, 1<<56 + 7, 1 << 62, math.MaxInt64}
	for _, v := range values {
		b := protowire.AppendTag(nil, 7, protowire.VarintType)
		b = protowire.AppendVarint(b, v)
		o, err := wire.DecodeStrict(b)
		if err != nil {
			t.Fatalf("DecodeStrict(%d) error: %v", v, err)
		}
		got, ok := o.Uint("int_7")
		if !ok || got != v {
			t.Fatalf("int_7 = %d, %v; want %d", got, ok, v)
		}
		i, ok := o.Int64("int_7")
		if !ok || uint64(i) != v {
			t.Fatalf("Int64(int_7) = %d, %v; want %d", i, ok, v)
		}
	}
}

func TestDecodeUint64AboveInt64(t *testing.T) {
	b := protowire.AppendTag(nil, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, math.MaxUint64)
	o := wire.Decode(b)
	if v, ok := o.Uint("int_1"); !ok || v != math.MaxUint64 {
		t.Fatalf("int_1 = %d, %v; want MaxUint64", v, ok)
	}
	if _, ok := o.Int64("int_1"); ok {
		t.Fatalf("Int64 should report absent for values above MaxInt64")
	}
}

func TestDecodePrintableStrings(t *testing.T) {
	cases := []string{"a", "hello world", "tab\tand\nnewline\r", "root.admin", "user@example.com", "{\"json\":1}", " "}
	for _, s := range cases {
		b := protowire.AppendTag(nil, 3, protowire.BytesType)
		b = protowire.AppendString(b, s)
		o := wire.Decode(b)
		got, ok := o.String("string_3")
		if !ok || got != s {
			t.Fatalf("string_3 = %q, %v; want %q (tree %s)", got, ok, s, mustJSON(t, o))
		}
	}
}

func TestDecodeRepeatedField(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want string
	}{
		{name: "single", hex: "2801", want: `{"int_5":1}`},
		{name: "two", hex: "28012802", want: `{"int_5":[1,2]}`},
		{name: "three", hex: "280128022803", want: `{"int_5":[1,2,3]}`},
		{name: "interleaved", hex: "2801120161280228" + "03", want: `{"int_5":[1,2,3],"string_2":"a"}`},
		{name: "repeated_messages", hex: "0a0208010a020802", want: `{"subMesssage_1":[{"int_1":1},{"int_1":2}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := wire.Decode(mustHex(t, c.hex))
			if got := mustJSON(t, o); got != c.want {
				t.Fatalf("got %s want %s", got, c.want)
			}
		})
	}
}

func TestDecodeRepeatedFieldKeepsFirstPosition(t *testing.T) {
	o := wire.Decode(mustHex(t, "28011201612802"))
	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "int_5" || keys[1] != "string_2" {
		t.Fatalf("keys = %v; want [int_5 string_2]", keys)
	}
	arr, ok := o.Array("int_5")
	if !ok || len(arr) != 2 {
		t.Fatalf("int_5 should be a two-element array, got %v", arr)
	}
}

// TestDecodeClassificationOrder pins the length-delimited precedence:
// printable text wins over a valid nested message, which wins over bytes.
func TestDecodeClassificationOrder(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want string
	}{
		// 0a 02 68 69 decodes as {string_1:"hi"}; 0x02 is not printable.
		{name: "nested", hex: "1a040a026869", want: `{"subMesssage_3":{"string_1":"hi"}}`},
		// " A" is printable even though 20 41 is also {int_4:65}.
		{name: "printable_wins", hex: "1a022041", want: `{"string_3":" A"}`},
		// ff 00 is neither text nor a message.
		{name: "bytemap", hex: "2202ff00", want: `{"bytes_4":{"0":255,"1":0}}`},
		// Empty payload: not text, empty message.
		{name: "empty", hex: "2200", want: `{"bytes_4":{}}`},
		// A nested message whose inner field is truncated is not a message.
		{name: "broken_nested", hex: "1a030a0561", want: `{"bytes_3":{"0":10,"1":5,"2":97}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := wire.Decode(mustHex(t, c.hex))
			if got := mustJSON(t, o); got != c.want {
				t.Fatalf("got %s want %s", got, c.want)
			}
		})
	}
}

func TestDecodeByteDescriptor(t *testing.T) {
	payload := make([]byte, 40)
	for i := range payload {
		payload[i] = 0xff
	}
	b := protowire.AppendTag(nil, 9, protowire.BytesType)
	b = protowire.AppendBytes(b, payload)
	o := wire.Decode(b)
	n, ok := o.Get("bytes_9")
	if !ok || n.Kind() != wire.BytesKind {
		t.Fatalf("bytes_9 kind = %v; want bytes", n.Kind())
	}
	raw, _ := n.AsBytes()
	if len(raw) != 40 {
		t.Fatalf("payload length = %d; want 40", len(raw))
	}
	js, _ := n.MarshalJSON()
	want := `{"length":40,"preview":[255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255,255]}`
	if string(js) != want {
		t.Fatalf("descriptor json = %s", js)
	}
}

func TestDecodeByteMapBoundary(t *testing.T) {
	for _, size := range []int{31, 32, 33} {
		payload := make([]byte, size)
		for i := range payload {
			payload[i] = 0xff
		}
		b := protowire.AppendTag(nil, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, payload)
		n, _ := wire.Decode(b).Get("bytes_2")
		want := wire.ByteMapKind
		if size > 32 {
			want = wire.BytesKind
		}
		if n.Kind() != want {
			t.Fatalf("size %d: kind = %v; want %v", size, n.Kind(), want)
		}
	}
}

func TestDecodeFixed(t *testing.T) {
	b := protowire.AppendTag(nil, 1, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, math.Float32bits(1.5))
	b = protowire.AppendTag(b, 2, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(2.25))
	o := wire.Decode(b)
	if got, want := mustJSON(t, o), `{"float_1":1.5,"double_2":2.25}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
	n, _ := o.Get("float_1")
	if n.Kind() != wire.Float32Kind {
		t.Fatalf("float_1 kind = %v", n.Kind())
	}
	if f, ok := o.Float64("double_2"); !ok || f != 2.25 {
		t.Fatalf("double_2 = %v, %v", f, ok)
	}
}

func TestDecodeTruncation(t *testing.T) {
	// int_1 = 1, then string_2 claims 5 bytes with only 2 left.
	b := mustHex(t, "080112056162")
	o := wire.Decode(b)
	if got, want := mustJSON(t, o), `{"int_1":1}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}

	o, err := wire.DecodeStrict(b)
	if o.Len() != 1 {
		t.Fatalf("strict decode should keep prior fields, got %s", mustJSON(t, o))
	}
	var de *wire.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if de.Offset != 2 || de.Field != 2 || de.Depth != 0 {
		t.Fatalf("unexpected location: %+v", de)
	}
	var te wire.TruncatedError
	if !errors.As(err, &te) || te.Want != 5 || te.Have != 2 {
		t.Fatalf("expected TruncatedError{5,2}, got %v", err)
	}
	if wire.Resumable(err) {
		t.Fatalf("truncation must not be resumable")
	}
}

func TestDecodeTruncatedFixed(t *testing.T) {
	_, err := wire.DecodeStrict(mustHex(t, "08010d0000"))
	if !errors.Is(err, wire.ErrShortBytes) {
		t.Fatalf("expected ErrShortBytes, got %v", err)
	}
}

func TestDecodeTrailingPartialTag(t *testing.T) {
	// A lone continuation byte where the next tag should be.
	o, err := wire.DecodeStrict(mustHex(t, "089601"+"80"))
	if err != nil {
		t.Fatalf("partial tag must stop silently, got %v", err)
	}
	if got, want := mustJSON(t, o), `{"int_1":150}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestDecodeGroupHalts(t *testing.T) {
	// int_1 = 1, start group on field 1, int_2 = 2
	o, err := wire.DecodeStrict(mustHex(t, "08010b1002"))
	if got, want := mustJSON(t, o), `{"int_1":1}`; got != want {
		t.Fatalf("got %s want %s", got, want)
	}
	var wte wire.WireTypeError
	if !errors.As(err, &wte) || wte.Type != wire.StartGroupType {
		t.Fatalf("expected group WireTypeError, got %v", err)
	}
	if wire.Decode(mustHex(t, "08010b1002")).Has("int_2") {
		t.Fatalf("decoding must halt at the group")
	}
}

func TestDecodeStopConditions(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want string
	}{
		{name: "field_zero", hex: "0801" + "00" + "1002", want: `{"int_1":1}`},
		{name: "wire_type_6", hex: "0801" + "0e" + "1002", want: `{"int_1":1}`},
		{name: "wire_type_7", hex: "0801" + "0f" + "1002", want: `{"int_1":1}`},
		{name: "field_above_32_bits", hex: "0801" + "808080808001" + "1002", want: `{"int_1":1}`},
		{name: "empty", hex: "", want: `{}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o, err := wire.DecodeStrict(mustHex(t, c.hex))
			if err != nil {
				t.Fatalf("tag-level stop must not report an error, got %v", err)
			}
			if got := mustJSON(t, o); got != c.want {
				t.Fatalf("got %s want %s", got, c.want)
			}
		})
	}
}

func TestDecodeVarintOverflow(t *testing.T) {
	b := mustHex(t, "0801"+"10"+"ffffffffffffffffff"+"ff01")
	o, err := wire.DecodeStrict(b)
	if !errors.Is(err, wire.ErrVarintOverflow) {
		t.Fatalf("expected ErrVarintOverflow, got %v", err)
	}
	if o.Len() != 1 {
		t.Fatalf("expected int_1 to survive, got %s", mustJSON(t, o))
	}
}

func TestDecodeNestedPath(t *testing.T) {
	ts := protowire.AppendTag(nil, 1, protowire.VarintType)
	ts = protowire.AppendVarint(ts, 1700000000)
	user := protowire.AppendTag(nil, 4, protowire.BytesType)
	user = protowire.AppendBytes(user, ts)
	root := protowire.AppendTag(nil, 1, protowire.BytesType)
	root = protowire.AppendBytes(root, user)

	o := wire.Decode(root)
	u, ok := o.Path("subMesssage_1")
	if !ok {
		t.Fatalf("missing subMesssage_1 in %s", mustJSON(t, o))
	}
	if sec, ok := u.Seconds("subMesssage_4"); !ok || sec != 1700000000 {
		t.Fatalf("Seconds = %d, %v", sec, ok)
	}
	if _, ok := o.Path("subMesssage_1", "subMesssage_9"); ok {
		t.Fatalf("Path should fail for a missing key")
	}
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	b := mustHex(t, "2202ff00")
	o := wire.Decode(b)
	b[2] = 0x00
	n, _ := o.Get("bytes_4")
	raw, _ := n.AsBytes()
	if raw[0] != 0xff {
		t.Fatalf("decoded payload aliases the input buffer")
	}
}

// TestDecodeDepthGuard nests field 1 past MaxDepth; the payload below the
// limit is kept as bytes instead of being decoded.
func TestDecodeDepthGuard(t *testing.T) {
	msg := protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 0)
	for i := 0; i < wire.MaxDepth+5; i++ {
		msg = protowire.AppendBytes(protowire.AppendTag(nil, 1, protowire.BytesType), msg)
	}

	cur := wire.Decode(msg)
	for depth := 0; depth < wire.MaxDepth; depth++ {
		next, ok := cur.Object("subMesssage_1")
		if !ok {
			t.Fatalf("object chain ends at depth %d, keys %v", depth, cur.Keys())
		}
		cur = next
	}
	if keys := cur.Keys(); len(keys) != 1 || keys[0] != "bytes_1" {
		t.Fatalf("keys at MaxDepth = %v, want [bytes_1]", keys)
	}
	n, _ := cur.Get("bytes_1")
	if n.Kind() != wire.ByteMapKind || n.Len() != 10 {
		t.Fatalf("bytes_1 = %v with %d bytes, want a 10 byte map", n.Kind(), n.Len())
	}
}
