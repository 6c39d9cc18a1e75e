// Package file reads files through a memory mapping when [mmapfile] can
// provide one, and through [os.File] otherwise.
//
// Config files and word lists are read once, start to end, so the package
// only exposes read access. Empty files cannot be mapped and always use the
// os.File path.
package file
