//go:build !tinygo

package assert

import "tinykernel/src/lib/trust"

// require panics with an AssertionError on the host build, so a violated
// contract surfaces as a reportable test failure instead of silently
// hanging the process. It also logs through trust at the error level, so
// a misuse caught outside a test still leaves a message on stdout.
func require(msg string) {
	trust.Errorf("assert: %s", msg)
	panic(&AssertionError{Msg: msg})
}
