package scheduler

import (
	"sync"
	"time"
)

// TaskFunc is invoked on every tick with the tick time. Returning false
// stops the task; it will not be invoked again.
type TaskFunc func(now time.Time) bool

// Scheduler runs at most one cancellable recurring task per key. It exists
// so that a per-item countdown never outlives its item: tasks stop on
// cancellation, on Stop, or when their function reports it is done.
type Scheduler struct {
	mu    sync.Mutex
	tasks map[string]chan struct{}
}

// New creates an empty scheduler
func New() *Scheduler {
	return &Scheduler{
		tasks: make(map[string]chan struct{}),
	}
}

// Schedule starts a recurring task for the key, replacing any task already
// running under it. The function runs on its own goroutine at the given
// interval until it returns false or the key is cancelled.
func (s *Scheduler) Schedule(key string, interval time.Duration, fn TaskFunc) {
	stop := make(chan struct{})

	s.mu.Lock()
	if prev, ok := s.tasks[key]; ok {
		close(prev)
	}
	s.tasks[key] = stop
	s.mu.Unlock()

	go s.run(key, stop, interval, fn)
}

func (s *Scheduler) run(key string, stop chan struct{}, interval time.Duration, fn TaskFunc) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if !fn(now) {
				s.remove(key, stop)
				return
			}
		case <-stop:
			return
		}
	}
}

// Cancel stops the task for the key, if any
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, ok := s.tasks[key]; ok {
		close(stop)
		delete(s.tasks, key)
	}
}

// Stop cancels every running task
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, stop := range s.tasks {
		close(stop)
		delete(s.tasks, key)
	}
}

// Active reports whether a task is currently registered for the key
func (s *Scheduler) Active(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[key]
	return ok
}

// remove clears the key only if it still maps to this task's stop channel,
// so a task finishing late cannot cancel its replacement.
func (s *Scheduler) remove(key string, stop chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.tasks[key]; ok && current == stop {
		delete(s.tasks, key)
	}
}
