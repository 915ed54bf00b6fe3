package kernel

import "tinykernel/src/assert"

// WaitForEvent suspends the calling task until mask is satisfied, or until
// the timer named in mask fires, whichever comes first: with EvtDelayTimer
// after at least timeout ticks, with EvtAbsoluteTimer when the task's due
// time, advanced by timeout, is reached. If mask holds neither timer bit,
// timeout is not used. If all is true, every non-timer bit in mask must be
// posted before the caller is released; otherwise any single bit in mask
// suffices. It returns the set of events
// that released the caller. Must never be called from the idle task.
func WaitForEvent(mask EventMask, all bool, timeout Tick) EventMask {
	assert.Require(mask != 0, "WaitForEvent: mask must not be zero")
	assert.Require(mask&EvtAbsoluteTimer == 0 || mask&EvtDelayTimer == 0,
		"WaitForEvent: absolute and delay timer bits are mutually exclusive")

	var caller *Task
	var mustPark bool
	withCriticalSection(func() {
		caller = theKernel.active
		assert.Require(!caller.isIdle(), "WaitForEvent: must not be called from the idle task")

		theKernel.removeFromReady(caller)

		switch {
		case mask&EvtAbsoluteTimer != 0:
			theKernel.armAbsoluteTimer(caller, timeout)
		case mask&EvtDelayTimer != 0:
			armDelayTimer(caller, timeout)
		}
		caller.eventMask = mask
		caller.waitForAny = !all
		caller.postedEventVec = 0

		theKernel.addSuspended(caller)
		theKernel.toSave = caller
		theKernel.active = theKernel.highestReady()

		mustPark = triggerSwitch(theKernel, caller)
	})
	if mustPark {
		return parkSelf(caller)
	}
	return 0
}

// Delay suspends the calling task for at least timeout ticks, equivalent
// to WaitForEvent(EvtDelayTimer, true, timeout).
func Delay(timeout Tick) {
	WaitForEvent(EvtDelayTimer, true, timeout)
}

// WaitForAny is a convenience over WaitForEvent for the common case of
// waiting for any one of several application events with no timeout.
func WaitForAny(mask EventMask) EventMask {
	return WaitForEvent(mask, false, 0)
}
