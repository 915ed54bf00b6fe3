package kernel

import (
	"testing"
	"time"
)

// waitUntilSuspended polls until task appears on the suspended list, for
// synchronizing with a goroutine that is about to call WaitForEvent.
func waitUntilSuspended(t *testing.T, task *Task) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		var found bool
		withCriticalSection(func() {
			for _, s := range theKernel.suspended() {
				if s == task {
					found = true
				}
			}
		})
		if found {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("task %d never reached the suspended list", task.id)
}

func TestWaitForEventRequiresAllBitsWhenAllIsTrue(t *testing.T) {
	theKernel = &Kernel{}
	idle := &Task{id: IdleTaskID}
	theKernel.idle = idle
	theKernel.active = idle

	caller := &Task{id: 0, prioClass: 1, resumeC: make(chan EventMask, 1)}
	theKernel.tasks[0] = caller
	theKernel.readyAppend(caller)
	theKernel.active = caller

	result := make(chan EventMask, 1)
	go func() {
		result <- WaitForEvent(EvtEvent00|EvtEvent01, true, 0)
	}()
	waitUntilSuspended(t, caller)

	SetEvent(EvtEvent00)
	select {
	case got := <-result:
		t.Fatalf("caller released with only one of two required bits posted, got %v", got)
	case <-time.After(20 * time.Millisecond):
	}

	SetEvent(EvtEvent01)
	select {
	case got := <-result:
		if got != EvtEvent00|EvtEvent01 {
			t.Errorf("WaitForEvent return value: want both bits set, got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("WaitForEvent never returned after both required bits were posted")
	}
}

func TestWaitForEventAnyBitWhenAllIsFalse(t *testing.T) {
	theKernel = &Kernel{}
	idle := &Task{id: IdleTaskID}
	theKernel.idle = idle
	theKernel.active = idle

	caller := &Task{id: 0, prioClass: 1, resumeC: make(chan EventMask, 1)}
	theKernel.tasks[0] = caller
	theKernel.readyAppend(caller)
	theKernel.active = caller

	result := make(chan EventMask, 1)
	go func() {
		result <- WaitForEvent(EvtEvent00|EvtEvent01, false, 0)
	}()
	waitUntilSuspended(t, caller)

	SetEvent(EvtEvent01)
	select {
	case got := <-result:
		if got != EvtEvent01 {
			t.Errorf("WaitForEvent return value: want just the posted bit, got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("WaitForEvent never returned though one of its any-bits was posted")
	}
}

func TestWaitForEventTimeoutReleasesViaDelayTimer(t *testing.T) {
	theKernel = &Kernel{}
	idle := &Task{id: IdleTaskID}
	theKernel.idle = idle
	theKernel.active = idle

	caller := &Task{id: 0, prioClass: 1, resumeC: make(chan EventMask, 1)}
	theKernel.tasks[0] = caller
	theKernel.readyAppend(caller)
	theKernel.active = caller

	result := make(chan EventMask, 1)
	go func() {
		result <- WaitForEvent(EvtEvent00|EvtDelayTimer, false, 3)
	}()
	waitUntilSuspended(t, caller)

	for i := 0; i < 4; i++ {
		theKernel.onTimerTick()
	}

	select {
	case got := <-result:
		if got&EvtDelayTimer == 0 {
			t.Errorf("WaitForEvent return value: want the delay timer bit set, got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("WaitForEvent never returned after its delay timer expired")
	}
}
