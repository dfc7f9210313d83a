// Package tasks runs page timers inside the bubbletea loop. A task is
// identified by id and tag the way bubbles' spinner and timer are, so a
// tick from a stopped or restarted task is ignored.
package tasks

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is sent when a task fires
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Task is a periodic or one-shot timer
type Task struct {
	id       int
	tag      int
	interval time.Duration
	repeat   bool
	running  bool
}

// NewPeriodic creates a task firing every interval until stopped
func NewPeriodic(interval time.Duration) *Task {
	return &Task{id: nextID(), interval: interval, repeat: true}
}

// NewOneShot creates a task firing once, delay after Start
func NewOneShot(delay time.Duration) *Task {
	return &Task{id: nextID(), interval: delay}
}

// ID identifies the task's ticks
func (t *Task) ID() int { return t.id }

// Running reports whether a tick is outstanding
func (t *Task) Running() bool { return t.running }

// Start (re)arms the task. A non-positive interval disables it.
func (t *Task) Start() tea.Cmd {
	t.tag++
	if t.interval <= 0 {
		t.running = false
		return nil
	}
	t.running = true
	return t.tick()
}

// Reset restarts the countdown from now
func (t *Task) Reset() tea.Cmd { return t.Start() }

// Stop drops any outstanding tick
func (t *Task) Stop() {
	t.tag++
	t.running = false
}

// Update reports whether msg is a live tick of this task and returns the
// command for the next one
func (t *Task) Update(msg TickMsg) (bool, tea.Cmd) {
	if msg.ID != t.id || msg.tag != t.tag || !t.running {
		return false, nil
	}
	if t.repeat {
		return true, t.tick()
	}
	t.running = false
	return true, nil
}

func (t *Task) tick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, tag: tag}
	})
}
