package kernel

// TaskFunc is the entry point of a task. The kernel invokes it exactly once,
// passing the event vector that made the task active for the very first
// time (typically just a timer event). A TaskFunc must never return; on the
// target build a return is indistinguishable from falling off the guard
// frame planted at the base of the stack and resets the controller.
type TaskFunc func(firstEventVec EventMask)

// Task is one entry in the descriptor store: one per application task, plus
// the implicit idle slot. Everything here is either set once by InitTask (or
// synthesized by the kernel for idle) and never touched again by the
// application, or mutated exclusively by kernel code running with
// interrupts masked.
type Task struct {
	// Static, application-supplied fields.
	id             TaskID
	prioClass      uint8
	taskFn         TaskFunc
	timeDueAt      Tick
	timeRoundRobin Tick
	stackArea      []byte

	// Saved machine context. On the tinygo/avr build this is the real saved
	// stack pointer; on the host simulation it is unused bookkeeping.
	stackPointer uintptr

	// Dynamic fields, owned by the scheduler.
	cntDelay       Tick
	cntRoundRobin  Tick
	postedEventVec EventMask
	eventMask      EventMask
	waitForAny     bool
	cntOverrun     uint8

	// resumeC backs the host-side context-switch simulation; see
	// context_sim.go. It is nil on the tinygo build.
	resumeC chan EventMask

	// lastRetval is the most recent value delivered to this task on
	// first resume after a suspending call. On the tinygo build it is
	// written by contextSwitch and read by parkSelf and
	// taskEntryTrampoline; on the host build context_sim.go's
	// contextSwitch and parkSelf both handle it directly.
	lastRetval EventMask
}

// ID returns the task's slot index, IdleTaskID for the idle task.
func (t *Task) ID() TaskID { return t.id }

// PrioClass returns the task's static priority class.
func (t *Task) PrioClass() uint8 { return t.prioClass }

// isIdle reports whether t is the synthesized idle task.
func (t *Task) isIdle() bool { return t.id == IdleTaskID }
