package coordinator

// Scheduler runs callbacks after the next layout pass of the renderer
type Scheduler interface {
	AfterLayout(fn func())
}

// ManualScheduler queues callbacks until Flush. The bubbletea model drives
// it after View; tests drive it explicitly.
type ManualScheduler struct {
	queue []func()
}

// NewManualScheduler creates an empty scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterLayout queues fn
func (s *ManualScheduler) AfterLayout(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending reports how many callbacks are waiting
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// Flush runs the queued callbacks. Callbacks queued while flushing wait
// for the next Flush so each one still sees a fresh layout pass.
func (s *ManualScheduler) Flush() int {
	queue := s.queue
	s.queue = nil
	for _, fn := range queue {
		fn()
	}
	return len(queue)
}
