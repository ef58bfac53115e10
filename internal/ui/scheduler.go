package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"edgebubble/internal/bubble"
)

// timerFiredMsg is delivered when a scheduled callback is due
type timerFiredMsg struct {
	id int
}

// Scheduler turns controller timers into tea.Tick commands so callbacks run
// inside Update, never concurrently with it. Commands accumulate until Drain.
type Scheduler struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	s    *Scheduler
	id   int
	f    func()
	done bool
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[int]*teaTimer),
	}
}

// AfterFunc schedules f to run d from now
func (s *Scheduler) AfterFunc(d time.Duration, f func()) bubble.Timer {
	s.nextID++
	id := s.nextID
	t := &teaTimer{s: s, id: id, f: f}
	s.timers[id] = t
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return t
}

// Stop cancels the timer; the tick still arrives but is ignored
func (t *teaTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	delete(t.s.timers, t.id)
	return true
}

// Fire runs the callback for id if it is still pending
func (s *Scheduler) Fire(id int) bool {
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	t.done = true
	t.f()
	return true
}

// Pending returns the ids of timers not yet fired or stopped, oldest first
func (s *Scheduler) Pending() []int {
	ids := make([]int, 0, len(s.timers))
	for id := 1; id <= s.nextID; id++ {
		if _, ok := s.timers[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Drain returns the tick commands queued since the last Drain
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
