// Package assert provides debug-only runtime assertions for container
// invariants. Assertions cost nothing in regular builds: Enabled is a
// compile-time false, so the checks below fold away entirely. Building with
//
//	go build -tags arraydebug ./...
//
// turns them into panics with a formatted message. The tag-selected constant
// mirrors how build tags switch allocator implementations elsewhere.
package assert

import "fmt"

// Truef panics with the formatted message when cond is false and assertions
// are compiled in.
func Truef(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	panic(fmt.Sprintf(format, args...))
}
