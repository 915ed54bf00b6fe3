//go:build tinygo

package trust

import "runtime/interrupt"

// halt masks interrupts and spins forever. There is nowhere further to
// report a fatal condition to on a bare-metal target; a watchdog, if
// configured, is the only way out.
func halt() {
	interrupt.Disable()
	for {
	}
}
