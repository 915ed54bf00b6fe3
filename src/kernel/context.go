package kernel

// contextSwitch transfers execution from the outgoing task (k.toSave, which
// may be nil the very first time the kernel starts a task) to the incoming
// one (k.active). It is the only place in the kernel that crosses between
// two tasks' private execution state, matching §4.7: the incoming task's
// saved context is restored unchanged if it was merely preempted, or has a
// return value synthesized into it — consumed from postedEventVec, which is
// cleared here and nowhere else — if this is its first resume after a
// suspending call.
//
// Callers must already hold the kernel's critical section; contextSwitch
// does not itself mask or unmask interrupts.
//
// Two architecture-specific implementations exist: context_tinygo.go
// declares the raw assembly primitive a real AVR port links in, and
// context_sim.go stands in for hardware on a regular host build by handing
// a logical "run token" between per-task goroutines. Both satisfy the same
// contract: after contextSwitch returns, k.active is the only task making
// forward progress until the next context switch.

// triggerSwitch runs the context-switch primitive and reports whether
// caller was the task just switched away from. It must be called from
// inside the kernel's critical section, but its result is only safe to act
// on — by calling parkSelf — after that section has been released:
// parkSelf blocks, and blocking while still holding the lock that every
// other task needs in order to ever reactivate caller would deadlock the
// host simulation.
func triggerSwitch(k *Kernel, caller *Task) bool {
	// Computed before contextSwitch, not after: on the tinygo build
	// contextSwitch does not return to this call site until caller itself
	// is resumed, by which point k.toSave reflects whatever the most
	// recent switch was, not the one caller triggered.
	switchedAway := caller != nil && !caller.isIdle() && caller == k.toSave
	contextSwitch(k)
	return switchedAway
}
