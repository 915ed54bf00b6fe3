//go:build tinygo

package kernel

import (
	"unsafe"

	"tinykernel/src/assert"
)

// registerFrameSize is the number of bytes switch_tinygo.s's save sequence
// pushes below the return address: r0, SREG, r1..r17, r28, r29.
const registerFrameSize = 21

// r1FrameOffset is where r1 lands within that frame, counting from its low
// (first-popped) end: r29, r28, r17..r2 (16 registers), r1, SREG, r0.
const r1FrameOffset = 2 + 16

// prepareStack paints stackArea with the sentinel pattern, then lays out
// the frame switchContext's restore sequence expects to find at the top: a
// return address into taskEntryTrampoline followed by registerFrameSize
// bytes of don't-care register state, except the byte standing in for r1,
// which must be zero. It also plants a guard return address at the base of
// the stack, so a task whose TaskFunc returns, or one that overflows all
// the way down, lands in stackGuardTrap instead of into whatever memory
// happens to follow the stack area.
//
// The very first activation of a task is therefore indistinguishable, at
// switchContext's level, from any later resume: the same shape of frame
// comes back either way, into Go code that reads the task's synthesized
// retval out of lastRetval rather than out of a register.
func prepareStack(stackArea []byte, entry TaskFunc) uintptr {
	assert.Require(len(stackArea) > 2+registerFrameSize+2, "prepareStack: stack too small for the initial frame")
	paintSentinel(stackArea)

	putReturnAddress(stackArea[0:2], funcPC(stackGuardTrap))

	top := len(stackArea) - 2
	putReturnAddress(stackArea[top:top+2], funcPC(taskEntryTrampoline))

	top -= registerFrameSize
	stackArea[top+r1FrameOffset] = 0

	return uintptr(unsafe.Pointer(&stackArea[top]))
}

func putReturnAddress(dst []byte, addr uintptr) {
	dst[0] = byte(addr >> 8)
	dst[1] = byte(addr)
}

// funcPC returns fn's entry address. Go gives no portable way to ask for
// this directly; the trick is the same one the runtime's own low-level
// code uses, reading the code pointer out of the first word of the func
// value's underlying funcval.
func funcPC(fn func()) uintptr {
	return **(**uintptr)(unsafe.Pointer(&fn))
}

// taskEntryTrampoline is where a task's very first activation resumes,
// per the return address prepareStack plants at the top of its stack.
// switchContext's restore sequence has no way to pass an argument to an
// arbitrary entry point in registers, so this reads the task and its
// first event vector out of the kernel's own bookkeeping instead — the
// same lastRetval field an ordinary resume delivers through.
func taskEntryTrampoline() {
	t := theKernel.active
	t.taskFn(t.lastRetval)
	stackGuardTrap()
}

// stackGuardTrap is where a task lands if its TaskFunc returns, or if it
// overflows its stack down to the guard word prepareStack planted at the
// base. Both are contract violations; TaskFunc's own doc comment says a
// return resets the controller, and this is that reset.
func stackGuardTrap() {
	assert.Require(false, "task function returned or stack overflowed")
}
