package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsInReverseOnce(t *testing.T) {
	m := NewManager(nil)

	var order []int
	m.Register(Func(func() { order = append(order, 1) }))
	m.Register(Func(func() { order = append(order, 2) }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []int{2, 1}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimeout(t *testing.T) {
	m := NewManager(nil)
	m.timeout = 10 * time.Millisecond

	block := make(chan struct{})
	defer close(block)
	ran := false
	m.Register(Func(func() { ran = true }))
	m.Register(Func(func() { <-block }))

	m.Shutdown()
	assert.True(t, ran)
}
