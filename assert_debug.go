//go:build minqueue_debug

package minqueue

// assertionsEnabled turns empty-queue queries into panics and checks the
// monotone invariant after every insertion.
const assertionsEnabled = true
