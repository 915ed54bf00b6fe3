// Package kernel implements a small preemptive, priority-based real-time
// scheduler for a single-core microcontroller: a fixed set of tasks, each
// with a priority class, suspended on events and timers rather than on
// arbitrary blocking calls, multiplexed over one CPU by a periodic timer
// tick and two system calls, SetEvent and WaitForEvent.
package kernel

import (
	"tinykernel/src/assert"
	"tinykernel/src/lib/trust"
)

// InitTask registers one application task. Must be called only from the
// setup callback passed to InitRTOS, once per task, before InitRTOS starts
// the timer and enters its idle loop.
//
// id must be in [0, MaxTasks). prioClass selects the task's ready queue;
// higher values run at higher priority. timeRoundRobin is the task's
// round-robin slice in ticks, or 0 to disable round-robin for it.
// startMask/startAll/startTimeout describe the condition under which the
// task first becomes due, exactly as for a later WaitForEvent call: startAll
// true requires every non-timer bit in startMask before the task is first
// scheduled, startAll false requires only one.
func InitTask(id TaskID, fn TaskFunc, prioClass uint8, timeRoundRobin Tick, stack []byte, startMask EventMask, startAll bool, startTimeout Tick) {
	assert.Require(fn != nil, "InitTask: task function must not be nil")
	assert.Require(len(stack) >= minStackBytes, "InitTask: stack too small")
	assert.Require(int(id) < MaxTasks, "InitTask: task id out of range")
	assert.Require(prioClass < NumPrioClasses, "InitTask: priority class out of range")
	assert.Require(startMask != 0, "InitTask: start mask must not be zero")

	t := &Task{
		id:             id,
		prioClass:      prioClass,
		taskFn:         fn,
		timeRoundRobin: timeRoundRobin,
		cntRoundRobin:  timeRoundRobin,
		stackArea:      stack,
		eventMask:      startMask,
		waitForAny:     !startAll,
		resumeC:        make(chan EventMask, 1),
	}
	t.stackPointer = prepareStack(stack, fn)

	switch {
	case startMask&EvtAbsoluteTimer != 0:
		theKernel.armAbsoluteTimer(t, startTimeout)
	case startMask&EvtDelayTimer != 0:
		armDelayTimer(t, startTimeout)
	}

	theKernel.tasks[id] = t
	theKernel.addSuspended(t)
}

// minStackBytes is a sanity floor on stack size, mirroring the "at least
// 50 bytes" assertion a hand-tuned AVR kernel uses to catch a task that
// will obviously overflow on first call.
const minStackBytes = 50

// InitRTOS is the kernel's entry point. It invokes setup (which is
// expected to call InitTask for every application task), synthesizes the
// idle task around loop, starts the periodic tick by calling
// enableTimerTick, and then becomes the idle task itself. It never
// returns.
func InitRTOS(setup func(), loop func(), enableTimerTick func()) {
	assert.Require(!theKernel.running, "InitRTOS: already initialized")
	theKernel.time = ^Tick(0)

	idle := &Task{
		id:         IdleTaskID,
		prioClass:  0,
		taskFn:     func(EventMask) {},
		eventMask:  0,
		waitForAny: false,
	}
	theKernel.idle = idle
	theKernel.tasks[IdleTaskID] = idle
	theKernel.active = idle

	setup()

	for _, t := range theKernel.suspended() {
		trust.Debugf("task %d registered, prio=%d, stack=%d bytes", t.id, t.prioClass, len(t.stackArea))
	}

	theKernel.running = true
	startTaskGoroutines()

	enableTimerTick()

	runIdleForever(loop)
}

// TaskExists reports whether idx names a task registered by InitTask (or
// the synthesized idle task). Unlike InitTask's assertions, this is meant
// to be called with an idx that has not already been validated — a diag
// server sitting on the far end of a serial link, decoding a TaskID byte
// out of an untrusted request frame, has no other way to ask "is this
// safe" before calling into the two accessors below.
func TaskExists(idx TaskID) bool {
	if int(idx) >= len(theKernel.tasks) {
		return false
	}
	var exists bool
	withCriticalSection(func() {
		exists = theKernel.tasks[idx] != nil
	})
	return exists
}

// GetTaskOverrunCounter reads task idx's saturating overrun counter. If
// doReset is true, the counter is cleared as part of the same critical
// section, so no overrun recorded between the read and the reset is lost.
//
// idx must already be known valid, e.g. via TaskExists — this is an
// internal-caller contract like InitTask's, not a boundary check, so a bad
// idx asserts rather than reporting an error.
func GetTaskOverrunCounter(idx TaskID, doReset bool) uint8 {
	var v uint8
	withCriticalSection(func() {
		assert.Require(int(idx) < len(theKernel.tasks) && theKernel.tasks[idx] != nil,
			"GetTaskOverrunCounter: unknown task id")
		t := theKernel.tasks[idx]
		v = t.cntOverrun
		if doReset {
			t.cntOverrun = 0
		}
	})
	return v
}

// GetStackReserve counts the leading sentinel bytes still unused in task
// idx's stack area — the high-water mark of how close that task has ever
// come to overflowing. idx must already be known valid; see
// GetTaskOverrunCounter.
func GetStackReserve(idx TaskID) uint16 {
	var reserve uint16
	withCriticalSection(func() {
		assert.Require(int(idx) < len(theKernel.tasks) && theKernel.tasks[idx] != nil,
			"GetStackReserve: unknown task id")
		reserve = stackReserve(theKernel.tasks[idx].stackArea)
	})
	return reserve
}
