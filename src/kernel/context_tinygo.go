//go:build tinygo

package kernel

// switchContext is the hand-written assembly primitive this package cannot
// express in Go: push the outgoing task's full callee-saved register set
// and SREG onto its own stack, record the resulting stack pointer through
// outSP, then pop the incoming task's frame — previously saved the same
// way, or synthesized by prepareStack for a task's first activation — back
// off inSP. outSP is nil the very first time the kernel activates a task
// (there is nothing to save into).
//
// There is deliberately no Go body here — swapping the live stack pointer
// out from under the current call frame is not an operation Go's calling
// convention or goroutine-managed stacks can express, any more than it
// could be expressed in portable C. switch_tinygo.s carries the real
// implementation, matching the source material's own convention for a
// primitive its compiler cannot generate (see joy/schedule.go's
// cpuSwitchTo).
//
//go:external
func switchContext(outSP *uintptr, inSP uintptr)

// contextSwitch adapts the kernel's task bookkeeping to the raw primitive
// above. It decides whether the incoming task's resume is a
// first-resume-after-suspend (postedEventVec != 0) and, if so, clears it
// here — the one place the contract in §4.7 permits that — stashing the
// value in lastRetval for taskEntryTrampoline or parkSelf to deliver. The
// value never travels through a CPU register across the switch: nothing
// downstream of switchContext's ret can be trusted to leave a register
// alone, so lastRetval is read back out of the Task struct instead.
func contextSwitch(k *Kernel) {
	out := k.toSave
	in := k.active
	if out == in {
		return
	}

	var retval EventMask
	if in.postedEventVec != 0 {
		retval = in.postedEventVec
		in.postedEventVec = 0
	}
	in.lastRetval = retval

	var outSP *uintptr
	if out != nil {
		outSP = &out.stackPointer
	}
	switchContext(outSP, in.stackPointer)
}

// parkSelf has no blocking left to do on the target build: switchContext
// above already performed the real stack swap, synchronously, and this
// call frame only resumes once the task is genuinely active again. It
// exists so wait.go and post.go share one code path across both builds,
// and to hand back the retval contextSwitch stashed on the way in.
func parkSelf(t *Task) EventMask {
	return t.lastRetval
}
