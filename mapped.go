package minqueue

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	minerrors "github.com/tamirms/minqueue/errors"
)

// WinnowFile winnows the contents of the file at path.
// It memory-maps the file read-only, hints sequential access to the kernel
// where supported, and unmaps before returning.
func WinnowFile(path string, k, w int, opts ...WinnowOption) ([]Fingerprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()
	return WinnowMapped(file, k, w, opts...)
}

// WinnowMapped winnows the contents of f by memory-mapping it.
// The caller is responsible for closing f.
func WinnowMapped(f *os.File, k, w int, opts ...WinnowOption) (fps []Fingerprint, err error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input file: %w", err)
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", minerrors.ErrNotRegularFile, f.Name())
	}
	if stat.Size() == 0 {
		// Zero-length mappings are rejected by mmap(2); still validate k and w.
		return Winnow(nil, k, w, opts...)
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap input file: %w", err)
	}
	defer func() {
		if uerr := mm.Unmap(); uerr != nil {
			err = errors.Join(err, fmt.Errorf("unmap input file: %w", uerr))
		}
	}()

	adviseSequential(mm)
	return Winnow(mm, k, w, opts...)
}
