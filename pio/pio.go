// Package pio implements read-only access to files holding parquet pages.
//
// On unix systems files are memory mapped, which lets page readers decode
// values straight out of the page cache. On other systems the content of files
// is read into memory.
package pio

import (
	"fmt"
	"io"
	"os"
)

// File is a read-only view of the content of a file.
//
// The byte slice returned by Bytes must not be retained after the file is
// closed.
type File struct {
	name    string
	data    []byte
	release func([]byte) error
}

// Open opens the file at the given path.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := s.Size()
	if size != int64(int(size)) {
		return nil, fmt.Errorf("%s: file too large to be mapped: %d bytes", path, size)
	}

	file := &File{name: path}
	if size > 0 {
		if file.data, file.release, err = mmap(f, int(size)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return file, nil
}

// Name returns the path that the file was opened with.
func (f *File) Name() string { return f.name }

// Bytes returns the content of the file.
func (f *File) Bytes() []byte { return f.data }

// Size returns the size of the file in bytes.
func (f *File) Size() int64 { return int64(len(f.data)) }

// Reader returns a reader positioned at the beginning of the file.
func (f *File) Reader() io.Reader { return io.NewSectionReader(f, 0, f.Size()) }

// ReadAt satisfies the io.ReaderAt interface.
func (f *File) ReadAt(b []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%s: negative offset: %d", f.name, off)
	}
	if off >= f.Size() {
		return 0, io.EOF
	}
	n := copy(b, f.data[off:])
	if n < len(b) {
		return n, io.EOF
	}
	return n, nil
}

// Close releases the resources held by the file. Calling Close more than once
// is a no-op.
func (f *File) Close() error {
	data, release := f.data, f.release
	f.data, f.release = nil, nil
	if release != nil {
		return release(data)
	}
	return nil
}
