package kernel

import "tinykernel/src/config"

// MaxTasks, NumPrioClasses and the feature toggles are the kernel's own
// build-time sizing knobs, held centrally in package config; the kernel
// package aliases them so the rest of this package, and its tests, can
// refer to them unqualified, exactly as the scheduler's algorithms are
// specified against N, P and M rather than against a config.* selector.
const (
	MaxTasks            = config.MaxTasks
	NumPrioClasses      = config.NumPrioClasses
	MaxTasksPerClass    = config.MaxTasksPerClass
	RoundRobinSupported = config.RoundRobinSupported
	UserISR00Enabled    = config.UserISR00Enabled
	UserISR01Enabled    = config.UserISR01Enabled
)

// TaskID identifies a task slot in the descriptor store. Valid application
// task IDs are 0..MaxTasks-1; IdleTaskID names the synthesized idle slot.
type TaskID uint8

// IdleTaskID is the implicit last slot, synthesized by the kernel rather
// than configured by the application.
const IdleTaskID TaskID = MaxTasks

// noTaskID marks "no task" in contexts where a zero value would otherwise
// be confused with TaskID 0.
const noTaskID TaskID = 0xff
