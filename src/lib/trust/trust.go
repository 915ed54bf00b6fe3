// Package trust is the kernel's leveled logger: one package-level mask
// controlling which categories of message are printed, and a handful of
// thin wrappers (Errorf, Warnf, Infof, Debugf, Statsf) that all funnel
// through a single dispatcher.
package trust

import "fmt"

// MaskLevel is a bitmask of enabled log categories.
type MaskLevel int

const (
	Nothing   MaskLevel = 0x0
	ErrorMask MaskLevel = 0x1
	WarnMask  MaskLevel = 0x2
	InfoMask  MaskLevel = 0x4
	DebugMask MaskLevel = 0x8
	StatsMask MaskLevel = 0x10
	fatalMask MaskLevel = 0x80
)

var level = fatalMask | StatsMask | ErrorMask | WarnMask | InfoMask | DebugMask

// SetLevel replaces the current mask (e.g. ErrorMask|DebugMask to silence
// everything else) and returns the previous one.
func SetLevel(mask MaskLevel) MaskLevel {
	if mask&0x1f == 0 {
		fmt.Println(" WARN: trust.SetLevel is turning off log messages")
	}
	r := level & 0x1f
	level = (mask & 0x1f) | fatalMask
	return r
}

// Level returns the current mask.
func Level() MaskLevel {
	return level
}

func logf(l MaskLevel, format string, params ...interface{}) {
	if level&l == 0 {
		return
	}
	start := 0
	switch {
	case l&ErrorMask > 0:
		fmt.Print("ERROR: ")
	case l&WarnMask > 0:
		fmt.Print(" WARN: ")
	case l&InfoMask > 0:
		fmt.Print(" INFO: ")
	case l&DebugMask > 0:
		fmt.Print("DEBUG: ")
	case l&StatsMask > 0:
		category, ok := params[0].(string)
		if !ok {
			category = "unknown"
		}
		fmt.Printf("STATS[%s]: ", category)
		start = 1
	case l&fatalMask > 0:
		fmt.Print("FATAL: ")
	}
	if len(format) == 0 {
		format = "\n"
	} else if format[len(format)-1] != '\n' {
		format += "\n"
	}
	fmt.Printf(format, params[start:]...)
}

// Fatalf logs at the unmaskable fatal level and then halts. On the tinygo
// build that means looping forever with interrupts masked; on the host
// build it panics so tests can observe the failure.
func Fatalf(format string, params ...interface{}) {
	logf(fatalMask, format, params...)
	halt()
}

func Errorf(format string, params ...interface{}) { logf(ErrorMask, format, params...) }
func Warnf(format string, params ...interface{})  { logf(WarnMask, format, params...) }
func Infof(format string, params ...interface{})  { logf(InfoMask, format, params...) }
func Debugf(format string, params ...interface{}) { logf(DebugMask, format, params...) }

// Statsf logs at the stats level, tagging the message with category so a
// log consumer can group related counters together.
func Statsf(category string, format string, params ...interface{}) {
	logf(StatsMask, format, append([]interface{}{category}, params...)...)
}
