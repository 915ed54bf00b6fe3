//go:build !tinygo

package board

import (
	"time"

	"tinykernel/src/kernel"
)

// EnableTimerTick is the function value application code hands to
// kernel.InitRTOS on the host build. It starts a time.Ticker at TickPeriod
// and, on every firing, calls kernel.OnTimerTick from a dedicated goroutine
// standing in for the hardware timer interrupt.
func EnableTimerTick() {
	ticker := time.NewTicker(TickPeriod)
	go func() {
		for range ticker.C {
			kernel.OnTimerTick()
		}
	}()
}

// SimulateUserInterrupt00 lets a host-build test or demo stand in for the
// external event that would otherwise drive user interrupt 0 on real
// hardware, by calling kernel.HandleUserInterrupt00 directly.
func SimulateUserInterrupt00() {
	kernel.HandleUserInterrupt00()
}

// SimulateUserInterrupt01 is SimulateUserInterrupt00's bit-13 counterpart.
func SimulateUserInterrupt01() {
	kernel.HandleUserInterrupt01()
}
