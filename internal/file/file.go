package file

import (
	"bytes"
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

var (
	_ io.WriterTo = (*File)(nil)
	_ io.Closer   = (*File)(nil)
)

// File is a read-only file backed by a memory mapping (preferred) or a plain
// os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the file into memory when possible and falls back to os.Open.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// ReadFile returns the contents of the named file. The result does not alias
// the mapping.
func ReadFile(name string) ([]byte, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if b := f.Bytes(); b != nil {
		return bytes.Clone(b), nil
	}

	var buf bytes.Buffer
	buf.Grow(f.Len())
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteTo writes the file contents to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if f.mm != nil {
		return f.mm.WriteTo(w)
	}

	return io.Copy(w, f.os)
}

// Close releases the mapping or the descriptor.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Bytes exposes the mapped region, or nil for the os.File fallback. The slice
// is invalid after Close.
func (f *File) Bytes() []byte {
	if f.mm != nil {
		return f.mm.Bytes()
	}

	return nil
}

// Len returns the mapped length, or the file size for the os.File fallback.
func (f *File) Len() int {
	if f.mm != nil {
		return f.mm.Len()
	}

	info, err := f.os.Stat()
	if err != nil {
		return 0
	}

	return int(info.Size())
}
