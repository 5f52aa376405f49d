package voice

import (
	"context"
	"sync"
)

// Result is what the external speech recognizer yields when a capture
// completes. Only Transcript is consumed here; Confidence is passed through
// for the caller's display.
type Result struct {
	Transcript string
	Confidence float64
}

// Recognizer is the external speech-capture collaborator. Listen blocks
// until a transcript is available, the context is cancelled, or capture
// fails. The actual engine (browser, OS service) lives outside this module.
type Recognizer interface {
	Listen(ctx context.Context) (Result, error)
}

// Session is a single-flight capture session: starting while already
// capturing is ignored, stopping while idle is a no-op. One session serves
// one quantity dialog at a time.
type Session struct {
	rec      Recognizer
	onResult func(Result)
	onError  func(error)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSession wires a recognizer to result/error callbacks. Either callback
// may be nil.
func NewSession(rec Recognizer, onResult func(Result), onError func(error)) *Session {
	return &Session{rec: rec, onResult: onResult, onError: onError}
}

// Start begins a capture in the background. Returns true if a capture was
// started, false if one is already in flight.
func (s *Session) Start(ctx context.Context) bool {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		result, err := s.rec.Listen(ctx)

		switch {
		case err != nil && s.onError != nil:
			s.onError(err)
		case err == nil && s.onResult != nil:
			s.onResult(result)
		}

		// Cleared only after the callback, so an observer that sees the
		// session idle also sees the delivered result.
		s.mu.Lock()
		s.cancel = nil
		s.mu.Unlock()
	}()
	return true
}

// Stop cancels an in-flight capture and waits for it to finish. Stopping an
// idle session is a no-op.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Listening reports whether a capture is in flight.
func (s *Session) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
