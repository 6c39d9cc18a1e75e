//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	"bytes"
	"encoding/json"
)

// UnmarshalStrict is like Unmarshal but keeps numbers as json.Number and
// fails on object keys that v does not declare.
func UnmarshalStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	return dec.Decode(v)
}

// MarshalIndent encodes a Go value as indented JSON.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}
