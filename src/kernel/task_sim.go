//go:build !tinygo

package kernel

import "runtime"

// startTaskGoroutines spawns one goroutine per application task, standing
// in for the hardware reality that every task's stack is already primed
// (see stack.go) and merely waiting for the scheduler to switch to it for
// the first time. Each goroutine blocks in parkSelf immediately, exactly
// where a real task would sit with an interrupted frame on its stack, until
// contextSwitch hands it its first run token.
func startTaskGoroutines() {
	for _, t := range theKernel.tasks[:MaxTasks] {
		if t == nil {
			continue
		}
		go runTaskGoroutine(t)
	}
}

// runTaskGoroutine waits for the task's first activation and then calls its
// entry point exactly once, matching the contract that a TaskFunc must
// never return: on this build that means the goroutine runs forever inside
// it, parking and resuming via WaitForEvent/SetEvent like any other call.
func runTaskGoroutine(t *Task) {
	firstEvent := parkSelf(t)
	t.taskFn(firstEvent)
}

// runIdleForever is the body of the idle task on the host build: it polls
// the active task and calls loop() on every pass it finds itself active,
// yielding the goroutine scheduler otherwise so a preempting task's
// goroutine gets to run. There is no separate idle goroutine; this runs on
// the same goroutine that called InitRTOS, matching the target build where
// idle is simply whatever keeps running when nothing else is due.
func runIdleForever(loop func()) {
	for {
		var isIdle bool
		withCriticalSection(func() {
			isIdle = theKernel.active == theKernel.idle
		})
		if isIdle {
			loop()
			continue
		}
		runtime.Gosched()
	}
}
