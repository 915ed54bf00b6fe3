//go:build tinygo

package kernel

// startTaskGoroutines has nothing to do on the target build: a task's
// first activation is just an ordinary context switch into the stack frame
// stack.go already prepared, not a Go-level call that needs to be started.
func startTaskGoroutines() {}

// runIdleForever is the idle task's body on the target build: the boot
// flow that called InitRTOS becomes idle by looping loop() forever. Every
// other task's execution happens by the timer tick or an ISR switching the
// stack pointer out from under this loop and back again; there is no
// cooperative yield point here because there doesn't need to be one.
func runIdleForever(loop func()) {
	for {
		loop()
	}
}
