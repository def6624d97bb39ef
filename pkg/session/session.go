// Package session holds one in-flight warning draft and its linear stage
// progression: editing, processing, result. Submission moves the stage to
// processing and, after a fixed delay, to result. The delay carries no
// work; it exists so the UI can show a loading affordance.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/mcotrim/advertencia/pkg/record"
)

// Stage is the linear position of a session.
type Stage string

const (
	StageEditing    Stage = "editing"
	StageProcessing Stage = "processing"
	StageResult     Stage = "result"
)

// DefaultSubmitDelay is the visual delay between processing and result.
const DefaultSubmitDelay = 1500 * time.Millisecond

// ErrNotEditing is returned by Submit when the session already left the
// editing stage.
var ErrNotEditing = errors.New("session: submit requires the editing stage")

// Option configures a Session.
type Option func(*Session)

// WithDelay overrides the processing-to-result delay.
func WithDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithNow overrides the clock used for record defaults and reset.
func WithNow(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Session guards a single record and its stage. The mutex only exists for
// the HTTP surface; the record itself is a value and is replaced, never
// mutated, on every transition.
type Session struct {
	mu    sync.Mutex
	rec   record.WarningRecord
	stage Stage
	gen   uint64
	delay time.Duration
	now   func() time.Time
}

// New returns an editing-stage session with fresh record defaults.
func New(opts ...Option) *Session {
	s := &Session{
		stage: StageEditing,
		delay: DefaultSubmitDelay,
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.rec = record.New(s.now())
	return s
}

// Snapshot returns the current record and stage.
func (s *Session) Snapshot() (record.WarningRecord, Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec, s.stage
}

// Dispatch runs act through the reducer. Field edits only apply while
// editing; a Reset action additionally returns the session to the editing
// stage from any stage.
func (s *Session) Dispatch(act record.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, isReset := act.(record.Reset); isReset {
		s.rec = record.New(s.now())
		s.stage = StageEditing
		s.gen++
		return
	}
	if s.stage != StageEditing {
		return
	}
	s.rec = record.Apply(s.rec, act)
}

// Submit moves the session to processing and schedules the transition to
// result after the configured delay. There is no cancellation; a reset
// issued meanwhile wins, because the scheduled flip only applies to the
// submission that armed it. The generation counter keeps a stale timer
// from an earlier submission from flipping a later one early.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageEditing {
		return ErrNotEditing
	}
	s.stage = StageProcessing
	s.gen++
	gen := s.gen

	time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.stage == StageProcessing && s.gen == gen {
			s.stage = StageResult
		}
	})
	return nil
}
