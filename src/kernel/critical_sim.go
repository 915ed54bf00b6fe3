//go:build !tinygo

package kernel

import "sync"

// On the host build, tasks are real goroutines (see context_sim.go), so
// unlike a single-threaded stand-in, the critical section here has to
// actually exclude concurrent access rather than just mark a no-op state.
// A single mutex plays the role interrupt masking plays on the target:
// only one flow of control ever touches kernel globals at a time.
type interruptState struct{}

var criticalLock sync.Mutex

func disableInterrupts() interruptState {
	criticalLock.Lock()
	return interruptState{}
}

func restoreInterrupts(_ interruptState) {
	criticalLock.Unlock()
}
