package extract

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
)

// DataURIPrefix marks a response body carrying base64-encoded protobuf.
const DataURIPrefix = "data:application/proto;base64,"

// ErrUnwrap is returned when a body that looks like base64 fails to decode.
var ErrUnwrap = errors.New("extract: cannot unwrap response body")

// Unwrap returns the protobuf bytes carried by a response body. The checks
// run in a fixed order:
//
//  1. a data:application/proto;base64, prefix is stripped and the rest
//     base64-decoded;
//  2. a body whose trimmed text is entirely base64 alphabet is decoded;
//  3. anything else is returned unchanged as raw binary.
//
// Both padded and unpadded standard base64 are accepted.
func Unwrap(body []byte) ([]byte, error) {
	if bytes.HasPrefix(body, []byte(DataURIPrefix)) {
		return decodeBase64(bytes.TrimSpace(body[len(DataURIPrefix):]))
	}
	if text := bytes.TrimSpace(body); isBase64Text(text) {
		return decodeBase64(text)
	}
	return body, nil
}

func decodeBase64(text []byte) ([]byte, error) {
	// The unpadded length bound is never smaller than the padded one.
	out := make([]byte, base64.RawStdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(out, text)
	if err == nil {
		return out[:n], nil
	}
	n, rawErr := base64.RawStdEncoding.Decode(out, text)
	if rawErr == nil {
		return out[:n], nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnwrap, err)
}

func isBase64Text(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '+', c == '/', c == '=':
		default:
			return false
		}
	}
	return true
}
