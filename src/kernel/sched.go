package kernel

import "tinykernel/src/assert"

// Kernel is the scheduler singleton. There is exactly one instance,
// constructed by InitRTOS and never destroyed; every field is mutated only
// from inside a critical section (see critical.go). ready and susp are
// fixed-capacity arrays sized from config, matching the data model's
// ready[P][M]/suspended[N] description: nothing here ever grows the heap.
type Kernel struct {
	tasks    [MaxTasks + 1]*Task
	idle     *Task
	ready    [NumPrioClasses][MaxTasksPerClass]*Task
	readyLen [NumPrioClasses]int
	susp     [MaxTasks]*Task
	suspLen  int
	active   *Task
	toSave   *Task
	time     Tick
	running  bool
}

// theKernel is the process-wide singleton described in §9's design note:
// one CPU, one scheduler, reached through module-level storage rather than
// threaded through every call.
var theKernel = &Kernel{}

// suspended returns the live suspended list as a slice over the backing
// array, for callers that only read it.
func (k *Kernel) suspended() []*Task {
	return k.susp[:k.suspLen]
}

// addSuspended appends t to the suspended list.
func (k *Kernel) addSuspended(t *Task) {
	assert.Require(k.suspLen < MaxTasks, "addSuspended: suspended list full")
	k.susp[k.suspLen] = t
	k.suspLen++
}

// readyAppend adds t to the tail of its priority class's ready queue.
func (k *Kernel) readyAppend(t *Task) {
	cls := t.prioClass
	assert.Require(k.readyLen[cls] < MaxTasksPerClass, "readyAppend: class %d full", cls)
	k.ready[cls][k.readyLen[cls]] = t
	k.readyLen[cls]++
}

// readyRemoveHead removes and returns the head of class cls, or nil if the
// class is empty.
func (k *Kernel) readyRemoveHead(cls uint8) *Task {
	n := k.readyLen[cls]
	if n == 0 {
		return nil
	}
	head := k.ready[cls][0]
	copy(k.ready[cls][:n-1], k.ready[cls][1:n])
	k.ready[cls][n-1] = nil
	k.readyLen[cls]--
	return head
}

// readyRotate moves the head of class cls to the tail, if the class holds
// more than one task. Used by round-robin expiry.
func (k *Kernel) readyRotate(cls uint8) {
	n := k.readyLen[cls]
	if n < 2 {
		return
	}
	head := k.ready[cls][0]
	copy(k.ready[cls][:n-1], k.ready[cls][1:n])
	k.ready[cls][n-1] = head
}

// removeFromReady removes t from wherever it sits in its class's ready
// queue. Used when a task is plucked out for suspension; t need not be the
// head.
func (k *Kernel) removeFromReady(t *Task) {
	cls := t.prioClass
	n := k.readyLen[cls]
	for i := 0; i < n; i++ {
		if k.ready[cls][i] == t {
			copy(k.ready[cls][i:n-1], k.ready[cls][i+1:n])
			k.ready[cls][n-1] = nil
			k.readyLen[cls]--
			return
		}
	}
}

// removeFromSuspended removes t from the suspended list.
func (k *Kernel) removeFromSuspended(t *Task) {
	for i := 0; i < k.suspLen; i++ {
		if k.susp[i] == t {
			copy(k.susp[i:k.suspLen-1], k.susp[i+1:k.suspLen])
			k.susp[k.suspLen-1] = nil
			k.suspLen--
			return
		}
	}
}

// highestReady returns the head of the highest non-empty priority class,
// or the idle task if every class is empty.
func (k *Kernel) highestReady() *Task {
	for cls := NumPrioClasses - 1; cls >= 0; cls-- {
		if k.readyLen[cls] > 0 {
			return k.ready[cls][0]
		}
	}
	return k.idle
}

// checkForTaskActivation is the scheduler core. It scans the suspended list
// for tasks whose resume condition is now satisfied, moves them to their
// ready class, and — if anything changed or forceRescan is set — re-picks
// the active task. It reports whether active/toSave were updated, in which
// case the caller must invoke the context-switch primitive.
func (k *Kernel) checkForTaskActivation(forceRescan bool) bool {
	released := false
	// Snapshot into a stack-resident array: release mutates k.susp, and
	// MaxTasks bounds how many entries there can ever be to copy.
	var snapshot [MaxTasks]*Task
	n := copy(snapshot[:], k.suspended())
	for _, t := range snapshot[:n] {
		if !taskIsReleased(t) {
			continue
		}
		t.eventMask = 0
		t.cntRoundRobin = t.timeRoundRobin
		k.removeFromSuspended(t)
		k.readyAppend(t)
		released = true
	}

	if !released && !forceRescan {
		return false
	}

	next := k.highestReady()
	if next == k.active {
		return false
	}
	k.toSave = k.active
	k.active = next
	return true
}

// taskIsReleased implements the release predicate: the condition under
// which a suspended task moves back to its ready class.
//
// The required != 0 guard on allNonTimerArrived is why Delay can call
// WaitForEvent(EvtDelayTimer, true, timeout) — all=true — and still wake
// on the timer bit alone: nonTimerBits(EvtDelayTimer) is 0, so
// allNonTimerArrived is false regardless of postedEventVec, and release
// falls through entirely to anyTimerArrived. Waiting on a pure timer mask
// with all=false takes the waitForAny branch instead, which releases on
// any posted bit; since only the timer bit can be posted to such a mask,
// the two are equivalent for a timer-only mask; all=true was kept because it
// reads, at the call site, as "wait for this one thing," matching how a
// delay is described everywhere else in this package. Don't drop the
// guard to "simplify" this predicate without re-checking Delay.
func taskIsReleased(t *Task) bool {
	if t.waitForAny {
		return t.postedEventVec != 0
	}
	required := nonTimerBits(t.eventMask)
	allNonTimerArrived := required != 0 && required&t.postedEventVec == required
	anyTimerArrived := t.eventMask&timerMask&t.postedEventVec != 0
	return allNonTimerArrived || anyTimerArrived
}
