package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace_AppendOrder(t *testing.T) {
	trace := NewTrace()
	trace.Add("first")
	trace.Add("second: %d", 2)

	assert.Equal(t, []string{"first", "second: 2"}, trace.Messages())
	assert.Equal(t, 2, trace.Len())
}

func TestTrace_CorrelationID(t *testing.T) {
	a := NewTrace()
	b := NewTrace()

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestTrace_NilIsNoOp(t *testing.T) {
	var trace *Trace

	// Must not panic and must collect nothing.
	trace.Add("ignored %s", "message")
	assert.Nil(t, trace.Messages())
	assert.Equal(t, 0, trace.Len())
	assert.Equal(t, "", trace.ID())
}

func TestDebugMode_Cell(t *testing.T) {
	defer SetDebugEnabled(false)

	InitDebugMode(false)
	assert.False(t, DebugEnabled())

	SetDebugEnabled(true)
	assert.True(t, DebugEnabled())
}
