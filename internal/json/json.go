//go:build (linux || darwin || windows) && (amd64 || arm64)

package json

import (
	"github.com/bytedance/sonic"
)

var api = sonic.ConfigStd

// strict decodes numbers as json.Number and rejects unknown object keys.
var strict = sonic.Config{
	EscapeHTML:            true,
	SortMapKeys:           true,
	CompactMarshaler:      true,
	CopyString:            true,
	ValidateString:        true,
	UseNumber:             true,
	DisallowUnknownFields: true,
}.Froze()

// UnmarshalStrict is like Unmarshal but keeps numbers as json.Number and
// fails on object keys that v does not declare.
func UnmarshalStrict(data []byte, v any) error {
	return strict.Unmarshal(data, v)
}

// MarshalIndent encodes a Go value as indented JSON.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}
