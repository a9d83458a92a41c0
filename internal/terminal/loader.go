package terminal

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"
)

// Spinner is a small CLI spinner shown while a remote call is in flight.
// Start/Stop are idempotent; the render loop runs on its own goroutine and
// shuts down cooperatively.
type Spinner struct {
	mu       sync.Mutex
	msg      string
	frames   []string
	interval time.Duration
	out      io.Writer
	ansi     bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	active   bool
}

// SpinnerOption configures a Spinner.
type SpinnerOption func(*Spinner)

// WithInterval sets the frame interval.
func WithInterval(d time.Duration) SpinnerOption {
	return func(s *Spinner) { s.interval = d }
}

// WithANSI forces ANSI rendering on or off (tests and dumb terminals).
func WithANSI(enabled bool) SpinnerOption {
	return func(s *Spinner) { s.ansi = enabled }
}

// NewSpinner creates a spinner writing to out.
func NewSpinner(out io.Writer, message string, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		msg:      message,
		frames:   []string{"⠋", "⠙", "⠚", "⠞", "⠖", "⠦", "⠴", "⠲", "⠳", "⠓"},
		interval: 90 * time.Millisecond,
		out:      out,
		ansi:     runtime.GOOS != "windows",
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.ansi {
		s.frames = []string{"-", "\\", "|", "/"}
	}
	return s
}

// Start begins rendering. Repeated calls are ignored.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	go func() {
		defer close(doneCh)
		i := 0
		for {
			select {
			case <-stopCh:
				if s.ansi {
					fmt.Fprint(s.out, "\r\x1b[2K")
				} else {
					fmt.Fprint(s.out, "\r")
				}
				return
			default:
				s.mu.Lock()
				msg := s.msg
				s.mu.Unlock()
				frame := s.frames[i%len(s.frames)]
				i++
				if s.ansi {
					fmt.Fprintf(s.out, "\r\x1b[2K%s %s", frame, msg)
				} else {
					fmt.Fprintf(s.out, "\r%s %s", frame, msg)
				}
				time.Sleep(s.interval)
			}
		}
	}()
}

// SetMessage swaps the text shown next to the spinner.
func (s *Spinner) SetMessage(m string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msg = m
}

// Stop halts rendering and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.stopCh)
	doneCh := s.doneCh
	s.mu.Unlock()
	<-doneCh
}
