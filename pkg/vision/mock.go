package vision

import (
	"sync"

	"github.com/teslashibe/go-ornament/pkg/gesture"
)

// Mock is an in-memory landmark source for tests and camera-less runs.
type Mock struct {
	mu     sync.Mutex
	latest *gesture.Frame
}

// NewMock creates an empty mock source.
func NewMock() *Mock {
	return &Mock{}
}

// Push sets the frame Latest will return. Pass nil to simulate the hand
// leaving the frame.
func (m *Mock) Push(frame *gesture.Frame) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest = frame
}

// Latest returns the most recently pushed frame.
func (m *Mock) Latest() *gesture.Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest
}
