package file

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	return path
}

func TestOpenReadsContent(t *testing.T) {
	path := writeTemp(t, []byte("alpha\nbeta\n"))

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	if got := f.Len(); got != 11 {
		t.Fatalf("len: got %d want 11", got)
	}
	if b := f.Bytes(); b != nil && !bytes.Equal(b, []byte("alpha\nbeta\n")) {
		t.Fatalf("bytes: got %q", b)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != "alpha\nbeta\n" {
		t.Fatalf("WriteTo: got %q", buf.String())
	}
}

func TestReadFile(t *testing.T) {
	want := bytes.Repeat([]byte("0123456789"), 1000)
	path := writeTemp(t, want)

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("ReadFile: content mismatch (%d bytes)", len(got))
	}
}

func TestReadFileEmpty(t *testing.T) {
	path := writeTemp(t, nil)

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadFile: got %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}
