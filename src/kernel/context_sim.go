//go:build !tinygo

package kernel

// contextSwitch, on the host build, plays the role of the real stack-pointer
// swap by handing a buffered "run token" to the incoming task's goroutine.
// Every task other than idle spends essentially all of its time blocked
// receiving from its own resumeC, exactly at the point where the real
// kernel would have an interrupted or suspended stack frame; idle instead
// polls k.active in a tight loop, since its body is the application's
// loop() called repeatedly rather than a single blocking point.
//
// Sending on resumeC is safe to do unconditionally: it is always buffered
// (capacity 1) and, by construction, a task is never sent to twice before
// it next receives.
func contextSwitch(k *Kernel) {
	incoming := k.active
	if incoming == nil || incoming.isIdle() {
		return
	}
	var retval EventMask
	if incoming.postedEventVec != 0 {
		retval = incoming.postedEventVec
		incoming.postedEventVec = 0
	}
	incoming.resumeC <- retval
}

// parkSelf blocks the calling task until it is next made active, returning
// the synthesized retval delivered on first resume after a suspending call
// (zero if this is merely a resumed-after-preemption wakeup).
func parkSelf(t *Task) EventMask {
	t.lastRetval = <-t.resumeC
	return t.lastRetval
}
