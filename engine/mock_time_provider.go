package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually advanced clock for tests
// Time only moves when Advance is called
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now returns start plus everything advanced so far
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.offset.Load()))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// Elapsed returns how far the clock has been advanced
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}
