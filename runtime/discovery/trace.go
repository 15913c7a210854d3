package discovery

import (
	"fmt"

	"github.com/google/uuid"
)

// Trace collects diagnostic messages during a single discovery call. It is an
// append-only ordered sequence, created per call and discarded with the call.
//
// A nil *Trace is a valid no-op sink: every method tolerates a nil receiver,
// so the recursive generators take one trace parameter instead of carrying
// duplicated traced and untraced variants. Tracing never affects control flow
// or example correctness.
type Trace struct {
	id       string
	messages []string
}

// NewTrace creates a trace with a fresh correlation ID.
func NewTrace() *Trace {
	return &Trace{id: uuid.NewString()}
}

// ID returns the correlation ID for this discovery call, or "" for a nil
// trace.
func (t *Trace) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// Add appends a formatted diagnostic message. No-op on a nil trace.
func (t *Trace) Add(format string, args ...any) {
	if t == nil {
		return
	}
	t.messages = append(t.messages, fmt.Sprintf(format, args...))
}

// Messages returns the collected messages in append order.
func (t *Trace) Messages() []string {
	if t == nil {
		return nil
	}
	return t.messages
}

// Len returns the number of collected messages.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.messages)
}
