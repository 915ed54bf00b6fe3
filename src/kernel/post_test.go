package kernel

import "testing"

func TestNonTimerBitsStripsReservedBits(t *testing.T) {
	in := EvtEvent00 | EvtEvent05 | EvtAbsoluteTimer | EvtDelayTimer
	want := EvtEvent00 | EvtEvent05
	if got := nonTimerBits(in); got != want {
		t.Errorf("nonTimerBits(%v): want %v, got %v", in, want, got)
	}
}

func TestSetEventIgnoresTimerBits(t *testing.T) {
	theKernel = &Kernel{}
	idle := &Task{id: IdleTaskID}
	theKernel.idle = idle
	theKernel.active = idle

	waiting := &Task{id: 0, prioClass: 0, eventMask: EvtAbsoluteTimer, waitForAny: true, resumeC: make(chan EventMask, 1)}
	setSuspended(theKernel, waiting)

	SetEvent(EvtAbsoluteTimer | EvtDelayTimer)

	if waiting.postedEventVec != 0 {
		t.Errorf("SetEvent posted a reserved timer bit: %v", waiting.postedEventVec)
	}
	select {
	case <-waiting.resumeC:
		t.Errorf("task was switched to though SetEvent carried no bit it was waiting on")
	default:
	}
}

func TestSetEventReleasesWaitingTaskAndSynthesizesRetval(t *testing.T) {
	theKernel = &Kernel{}
	idle := &Task{id: IdleTaskID}
	theKernel.idle = idle
	theKernel.active = idle

	waiting := &Task{id: 0, prioClass: 3, eventMask: EvtEvent02 | EvtEvent03, waitForAny: true, resumeC: make(chan EventMask, 1)}
	setSuspended(theKernel, waiting)

	SetEvent(EvtEvent03)

	select {
	case retval := <-waiting.resumeC:
		if retval != EvtEvent03 {
			t.Errorf("synthesized retval: want EvtEvent03 alone, got %v", retval)
		}
	default:
		t.Errorf("SetEvent did not release and switch to the waiting task")
	}
}

func TestSetEventZeroIsANoOp(t *testing.T) {
	theKernel = &Kernel{}
	idle := &Task{id: IdleTaskID}
	theKernel.idle = idle
	theKernel.active = idle

	waiting := &Task{id: 0, prioClass: 0, eventMask: EvtEvent00, waitForAny: true, resumeC: make(chan EventMask, 1)}
	setSuspended(theKernel, waiting)

	SetEvent(0)

	if waiting.postedEventVec != 0 {
		t.Errorf("SetEvent(0) posted something: %v", waiting.postedEventVec)
	}
	if theKernel.active != idle {
		t.Errorf("SetEvent(0) changed the active task")
	}
}

func TestHandleUserInterruptsPostFixedBits(t *testing.T) {
	theKernel = &Kernel{}
	idle := &Task{id: IdleTaskID}
	theKernel.idle = idle
	theKernel.active = idle

	// w1 sits one class above w0: after the first interrupt w0 is active,
	// and a release at w0's own priority would only queue behind it.
	w0 := &Task{id: 0, prioClass: 0, eventMask: EvtISRUser00, waitForAny: true, resumeC: make(chan EventMask, 1)}
	w1 := &Task{id: 1, prioClass: 1, eventMask: EvtISRUser01, waitForAny: true, resumeC: make(chan EventMask, 1)}
	setSuspended(theKernel, w0, w1)

	HandleUserInterrupt00()
	select {
	case retval := <-w0.resumeC:
		if retval != EvtISRUser00 {
			t.Errorf("user interrupt 0: want EvtISRUser00, got %v", retval)
		}
	default:
		t.Errorf("HandleUserInterrupt00 did not release its waiter")
	}

	HandleUserInterrupt01()
	select {
	case retval := <-w1.resumeC:
		if retval != EvtISRUser01 {
			t.Errorf("user interrupt 1: want EvtISRUser01, got %v", retval)
		}
	default:
		t.Errorf("HandleUserInterrupt01 did not release its waiter")
	}
}
