//go:build linux

package minqueue

import "golang.org/x/sys/unix"

// adviseSequential hints to the kernel that the mapping will be read
// sequentially, enabling aggressive readahead.
// Best-effort: errors are silently ignored.
func adviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
