// Package board supplies the small integration shims the kernel package
// treats as external collaborators: the timer-enable and user-interrupt-
// enable hooks an application passes to kernel.InitRTOS, and nothing else.
// The kernel never imports this package; it only calls the function values
// the application hands it.
package board

import "time"

// TickPeriod is the nominal interval between timer ticks, matching the
// ~2ms tick the source material's 8-bit target drives off a hardware timer
// at. The host build honors it with a time.Ticker; the target build would
// program a hardware timer/counter to the equivalent reload value.
const TickPeriod = 2 * time.Millisecond
