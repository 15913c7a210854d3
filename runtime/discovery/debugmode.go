package discovery

import "sync/atomic"

// debugEnabled is the process-wide debug mode cell. It gates only whether a
// discovery call's collected trace is attached to the response; it never
// affects the generated examples. Reads and writes are individually atomic
// with no ordering guarantee relative to in-flight discovery calls, which is
// acceptable for a purely diagnostic switch.
var debugEnabled atomic.Bool

// InitDebugMode sets the initial debug mode state. Intended to be called once
// at startup from configuration; later calls behave like SetDebugEnabled.
func InitDebugMode(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether debug mode is currently on.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// SetDebugEnabled turns debug mode on or off.
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}
