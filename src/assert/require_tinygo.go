//go:build tinygo

package assert

import "tinykernel/src/lib/trust"

// require halts the controller on the target build. There is no test
// runner to report an AssertionError to; trust.Fatalf logs the message
// and then spins forever with interrupts masked.
func require(msg string) {
	trust.Fatalf("assert: %s", msg)
}
