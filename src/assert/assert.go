// Package assert is the kernel's misuse-detection primitive: one entry
// point, Require, used at every programming-error boundary the kernel
// defines (a nil task function or undersized stack passed to InitTask, a
// zero mask or both timer bits set passed to WaitForEvent, a wait issued
// from the idle task, InitRTOS called twice). These are contract
// violations, not conditions an application is expected to recover from.
package assert

import "fmt"

// AssertionError names the contract Require found violated. On the host
// build it is the panic value a recovering test observes; it exists so
// that value is typed and inspectable rather than an opaque string.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string { return e.Msg }

// Require halts if cond is false, formatting msg/args exactly as
// trust.Fatalf would. What "halts" means is build-specific: see
// require_sim.go and require_tinygo.go.
func Require(cond bool, msg string, args ...interface{}) {
	if cond {
		return
	}
	require(fmt.Sprintf(msg, args...))
}
