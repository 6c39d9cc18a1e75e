package json

import (
	stdjson "encoding/json"
	"testing"
)

type strictTarget struct {
	Name string `json:"name"`
	Seed any    `json:"seed"`
}

func TestUnmarshalStrictKeepsNumbers(t *testing.T) {
	var got strictTarget
	if err := UnmarshalStrict([]byte(`{"name":"xxh64","seed":18446744073709551615}`), &got); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}

	n, ok := got.Seed.(stdjson.Number)
	if !ok {
		t.Fatalf("seed decoded as %T, want json.Number", got.Seed)
	}
	if n.String() != "18446744073709551615" {
		t.Fatalf("seed = %q, want the exact literal", n.String())
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	var got strictTarget
	if err := UnmarshalStrict([]byte(`{"name":"xxh64","sede":1}`), &got); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestMarshalIndent(t *testing.T) {
	got, err := MarshalIndent(map[string]int{"b": 2, "a": 1}, "", "  ")
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	const want = "{\n  \"a\": 1,\n  \"b\": 2\n}"
	if string(got) != want {
		t.Fatalf("marshal = %q, want %q", string(got), want)
	}
}
