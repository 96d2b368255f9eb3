//go:build !minqueue_debug

package minqueue

// assertionsEnabled is false in regular builds: empty-queue queries return
// ErrEmptyQueue and invariants are not re-checked.
const assertionsEnabled = false
