// Package extract turns decoded protobuf trees into typed records for the
// account, billing and analytics responses of the upstream API.
//
// Every Parse function accepts a raw response body (binary, bare base64 or
// a base64 data URI), decodes it with package wire and walks literal field
// numbers. Missing fields resolve to defaults. Only a missing anchor
// message is reported as an error, and an undecodable body produces a
// response with Success set to false instead of an error.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/synadia-labs/protoprobe/wire"
)

// ErrMissingAnchor is returned when the message a shape requires is absent.
var ErrMissingAnchor = errors.New("extract: missing anchor message")

// Status is embedded in every response. A response with Success false
// carries the failure in Error and the original body text in Raw.
// DecodeWarning is set when decoding stopped early but left a usable tree.
type Status struct {
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
	Raw           string `json:"raw,omitempty"`
	DecodeWarning string `json:"decode_warning,omitempty"`
}

// OK reports whether extraction produced a result worth reading.
func (s Status) OK() bool { return s.Success }

func (s *Status) fail(err error) {
	s.Success = false
	s.Error = err.Error()
}

// decodeBody unwraps and decodes body. The returned tree is nil exactly
// when the body could not be used at all.
func decodeBody(body []byte) (*wire.Object, Status) {
	b, err := Unwrap(body)
	if err != nil {
		return nil, failedStatus(body, err)
	}
	tree, err := wire.DecodeStrict(b)
	if err != nil {
		if tree.Len() == 0 {
			return nil, failedStatus(body, err)
		}
		return tree, Status{Success: true, DecodeWarning: err.Error()}
	}
	return tree, Status{Success: true}
}

func failedStatus(body []byte, err error) Status {
	return Status{
		Success: false,
		Error:   err.Error(),
		Raw:     strings.ToValidUTF8(string(body), "\uFFFD"),
	}
}

func missingAnchor(shape string, n uint32) error {
	return fmt.Errorf("%w: %s needs %s", ErrMissingAnchor, shape, msgKey(n))
}
