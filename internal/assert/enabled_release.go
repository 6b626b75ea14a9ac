//go:build !arraydebug

package assert

// Enabled reports whether debug assertions are compiled into this build.
const Enabled = false
