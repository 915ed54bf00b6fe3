package kernel

// EventMask is the 16-bit bitmask type shared by every event-related
// operation: the mask a task waits on, the events posted to it, and the
// vector passed to SetEvent.
type EventMask uint16

// General purpose events, posted explicitly via SetEvent. Bits 12 and 13
// are repurposed as EvtISRUser00/01 when the corresponding user interrupt
// is compiled in; see config.go.
const (
	EvtEvent00 EventMask = 0x0001 << 0
	EvtEvent01 EventMask = 0x0001 << 1
	EvtEvent02 EventMask = 0x0001 << 2
	EvtEvent03 EventMask = 0x0001 << 3
	EvtEvent04 EventMask = 0x0001 << 4
	EvtEvent05 EventMask = 0x0001 << 5
	EvtEvent06 EventMask = 0x0001 << 6
	EvtEvent07 EventMask = 0x0001 << 7
	EvtEvent08 EventMask = 0x0001 << 8
	EvtEvent09 EventMask = 0x0001 << 9
	EvtEvent10 EventMask = 0x0001 << 10
	EvtEvent11 EventMask = 0x0001 << 11
)

// EvtISRUser00 is posted by the optional application interrupt 0, when
// UserISR00Enabled is true. When that interrupt isn't compiled in, bit 12
// is an ordinary general purpose event, available to SetEvent callers.
const EvtISRUser00 EventMask = 0x0001 << 12

// EvtISRUser01 is the bit-13 counterpart of EvtISRUser00.
const EvtISRUser01 EventMask = 0x0001 << 13

// EvtAbsoluteTimer fires when a task's TimeDueAt matches the current tick.
// Only the timer tick handler ever sets this bit.
const EvtAbsoluteTimer EventMask = 0x0001 << 14

// EvtDelayTimer fires when a task's delay counter reaches zero. Only the
// timer tick handler ever sets this bit.
const EvtDelayTimer EventMask = 0x0001 << 15

// timerMask is the pair of bits SetEvent must never be allowed to set;
// they are system-generated only.
const timerMask = EvtAbsoluteTimer | EvtDelayTimer

// nonTimerBits strips the two reserved timer bits from a mask, leaving the
// application-defined and ISR-reserved event bits.
func nonTimerBits(m EventMask) EventMask {
	return m &^ timerMask
}
