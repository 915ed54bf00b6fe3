//go:build tinygo

package board

import (
	"device/avr"
	"runtime/interrupt"
	"time"

	"tinykernel/src/kernel"
)

// cpuHz is the crystal frequency this kernel's tinygo build assumes: the
// 16MHz ATmega328P-class part the source material itself targets.
const cpuHz = 16000000

// timer1Prescale and timer1Top program Timer1 in CTC mode (WGM12) to raise
// its compare-A interrupt every TickPeriod. At this clock and tick period
// /64 gives a compare value of 499, well inside Timer1's 16-bit range.
const timer1Prescale = 64
const ticksPerSecond = cpuHz / timer1Prescale
const timer1Top = uint16(ticksPerSecond*(TickPeriod/time.Microsecond)/1000000 - 1)

// EnableTimerTick programs Timer1 to fire its compare-A interrupt every
// TickPeriod and attaches timer1ISR to it, then unmasks interrupts
// globally. The actual call into kernel.OnTimerTick happens in timer1ISR,
// once the hardware has delivered the interrupt.
func EnableTimerTick() {
	avr.TCCR1A.Set(0)
	avr.TCCR1B.Set(avr.TCCR1B_WGM12 | avr.TCCR1B_CS11 | avr.TCCR1B_CS10)
	avr.OCR1A.Set(timer1Top)
	avr.TIMSK1.SetBits(avr.TIMSK1_OCIE1A)

	interrupt.New(avr.IRQ_TIMER1_COMPA, func(interrupt.Interrupt) {
		kernel.OnTimerTick()
	}).Enable()

	avr.Asm("sei")
}
