// Package scheduler runs a single periodic task.
//
// A Scheduler never has more than one task running. Starting a task tears
// down the previous one first and waits for its goroutine to exit, so a
// restart (locale change, config reload) cannot leave a duplicate timer behind.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidInterval is returned for non-positive intervals.
	ErrInvalidInterval = errors.New("interval must be positive")
	// ErrNotConfigured is returned by Restart before any Start.
	ErrNotConfigured = errors.New("no task has been started")
)

// TickFunc is called once when the task starts and then on every tick.
// Returning false ends the task. ctx is cancelled when the task is torn
// down; implementations that block must select on it.
type TickFunc func(ctx context.Context, now time.Time) bool

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock sets the clock used for ticks.
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

type task struct {
	id     string
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler owns at most one running periodic task.
type Scheduler struct {
	clock  Clock
	logger *zap.Logger

	mu       sync.Mutex
	current  *task
	parent   context.Context
	interval time.Duration
	fn       TickFunc
}

// New creates a Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:  SystemClock,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start stops any running task and starts fn every interval.
// fn also runs immediately so the first value is available without waiting
// a full interval. Returns the new task's ID.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration, fn TickFunc) (string, error) {
	if interval <= 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	if fn == nil {
		return "", errors.New("tick func is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	s.parent = ctx
	s.interval = interval
	s.fn = fn
	return s.launchLocked(), nil
}

// Restart tears down the running task and starts a new one with the
// context, interval, and func of the last Start.
func (s *Scheduler) Restart() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fn == nil {
		return "", ErrNotConfigured
	}
	s.stopLocked()
	return s.launchLocked(), nil
}

// SetInterval changes the interval and restarts the task if one is configured.
func (s *Scheduler) SetInterval(interval time.Duration) (string, error) {
	if interval <= 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.interval = interval
	if s.fn == nil {
		return "", nil
	}
	s.stopLocked()
	return s.launchLocked(), nil
}

// Stop cancels the running task and waits for it to exit. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Active returns the ID of the running task, or "" if none.
func (s *Scheduler) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ""
	}
	select {
	case <-s.current.done:
		return ""
	default:
		return s.current.id
	}
}

// Interval returns the configured interval.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Scheduler) stopLocked() {
	if s.current == nil {
		return
	}
	t := s.current
	s.current = nil

	t.cancel()
	<-t.done
	s.logger.Debug("periodic task stopped", zap.String("task_id", t.id))
}

func (s *Scheduler) launchLocked() string {
	parent := s.parent
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	t := &task{
		id:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.current = t

	s.logger.Info("periodic task started",
		zap.String("task_id", t.id),
		zap.Duration("interval", s.interval))

	go s.run(ctx, t, s.interval, s.fn)
	return t.id
}

func (s *Scheduler) run(ctx context.Context, t *task, interval time.Duration, fn TickFunc) {
	defer close(t.done)

	if !fn(ctx, s.clock.Now()) {
		s.logger.Info("periodic task finished", zap.String("task_id", t.id))
		return
	}

	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C():
			if ctx.Err() != nil {
				return
			}
			if !fn(ctx, now) {
				s.logger.Info("periodic task finished", zap.String("task_id", t.id))
				return
			}
		}
	}
}
