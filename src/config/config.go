// Package config holds the kernel's build-time sizing: how many tasks
// exist, how many priority classes they're spread over, how wide the tick
// counter is, and which optional features are compiled in. It is the
// single point of truth a real-time kernel this small would otherwise
// scatter across preprocessor defines.
package config

const (
	// MaxTasks is the number of application task slots. The kernel
	// reserves one additional, implicit slot for the idle task.
	MaxTasks = 16

	// NumPrioClasses is the number of distinct priority classes. Class
	// NumPrioClasses-1 is the highest priority; class 0 the lowest that an
	// application task may request (the idle task runs below all of them).
	NumPrioClasses = 8

	// MaxTasksPerClass bounds how many tasks may share one priority class.
	MaxTasksPerClass = MaxTasks

	// RoundRobinSupported compiles the round-robin slice/rotation logic in
	// or out. RTuinOS-derived kernels of this size usually leave it on.
	RoundRobinSupported = true

	// UserISR00Enabled and UserISR01Enabled compile in the two optional
	// application interrupt hooks that post a fixed event bit.
	UserISR00Enabled = true
	UserISR01Enabled = true

	// TickWidthBits documents the width of the Tick type used throughout
	// the kernel; it exists for diagnostics and tests that want to reason
	// about wraparound without hardcoding 16.
	TickWidthBits = 16
)

// Settings captures the sizing actually compiled into the running kernel.
// It exists for diagnostics and for tests that want to assert on the
// build's shape without hardcoding the constants above a second time.
type Settings struct {
	MaxTasks            int
	NumPrioClasses      int
	MaxTasksPerClass    int
	RoundRobinSupported bool
	UserISR00Enabled    bool
	UserISR01Enabled    bool
	TickWidthBits       int
}

// Current returns the Settings matching the constants this package was
// built with.
func Current() Settings {
	return Settings{
		MaxTasks:            MaxTasks,
		NumPrioClasses:      NumPrioClasses,
		MaxTasksPerClass:    MaxTasksPerClass,
		RoundRobinSupported: RoundRobinSupported,
		UserISR00Enabled:    UserISR00Enabled,
		UserISR01Enabled:    UserISR01Enabled,
		TickWidthBits:       TickWidthBits,
	}
}
