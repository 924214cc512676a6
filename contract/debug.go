//go:build cpdebug

package contract

// Enabled reports whether precondition checks are compiled in.
const Enabled = true
