//go:build tinygo

package kernel

import "runtime/interrupt"

// interruptState captures interrupt.State so the rest of the kernel never
// has to import runtime/interrupt directly.
type interruptState = interrupt.State

func disableInterrupts() interruptState {
	return interrupt.Disable()
}

func restoreInterrupts(state interruptState) {
	interrupt.Restore(state)
}
