package extract_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synadia-labs/protoprobe/extract"
	"github.com/synadia-labs/protoprobe/wire"
)

func TestUnwrap(t *testing.T) {
	msg := pb(nil).num(1, 150).str(2, "testing").num(3, 1)
	std := base64.StdEncoding.EncodeToString(msg)
	raw := base64.RawStdEncoding.EncodeToString(msg)

	cases := []struct {
		name string
		body []byte
	}{
		{name: "data_uri", body: dataURI(msg)},
		{name: "data_uri_trailing_newline", body: append(dataURI(msg), '\n')},
		{name: "bare_base64", body: []byte(std)},
		{name: "bare_base64_padded_whitespace", body: []byte("  " + std + "\r\n")},
		{name: "unpadded", body: []byte(raw)},
		{name: "binary", body: msg},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := extract.Unwrap(c.body)
			require.NoError(t, err)
			assert.Equal(t, []byte(msg), got)
		})
	}
}

func TestUnwrapShortUnpadded(t *testing.T) {
	cases := []struct {
		body string
		want []byte
	}{
		{body: "abc", want: []byte{0x69, 0xb7}},
		{body: "Zm9vYg", want: []byte("foob")},
		{body: "Zm9vYg==", want: []byte("foob")},
		{body: "QQ", want: []byte("A")},
	}
	for _, c := range cases {
		t.Run(c.body, func(t *testing.T) {
			got, err := extract.Unwrap([]byte(c.body))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestUnwrapInvalidBase64(t *testing.T) {
	_, err := extract.Unwrap([]byte(extract.DataURIPrefix + "!!not base64!!"))
	require.ErrorIs(t, err, extract.ErrUnwrap)

	// Alphabet-only text that is not valid base64 in either form.
	_, err = extract.Unwrap([]byte("abcde"))
	require.ErrorIs(t, err, extract.ErrUnwrap)

	_, err = extract.Unwrap([]byte("a"))
	require.ErrorIs(t, err, extract.ErrUnwrap)
}

func TestUnwrapEmpty(t *testing.T) {
	got, err := extract.Unwrap(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestDataURIMatchesDirectDecode checks that a data URI body yields the
// same tree as decoding the embedded bytes directly.
func TestDataURIMatchesDirectDecode(t *testing.T) {
	msg := pb(nil).msg(1, pb(nil).str(1, "key-abc").num(13, 1)).str(2, "root.admin")

	resp, err := extract.ParseAnalytics(dataURI(msg))
	require.NoError(t, err)
	require.True(t, resp.Success)

	want, err := wire.Decode(msg).MarshalJSON()
	require.NoError(t, err)
	got, err := resp.ParsedData.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}
