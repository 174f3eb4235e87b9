package testutil

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// PeakTracker records how many callers are inside a section at once.
type PeakTracker struct {
	mu      sync.Mutex
	current int
	peak    int
	total   int
}

// Enter marks one caller entering the tracked section.
func (p *PeakTracker) Enter() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	p.total++
	if p.current > p.peak {
		p.peak = p.current
	}
}

// Exit marks one caller leaving the tracked section.
func (p *PeakTracker) Exit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current--
}

// Peak returns the highest concurrent count observed.
func (p *PeakTracker) Peak() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peak
}

// Current returns the number of callers inside right now.
func (p *PeakTracker) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Total returns how many times Enter was called.
func (p *PeakTracker) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// MockRoundTripper is an http.RoundTripper that sleeps for Delay, records
// concurrency in Tracker and answers 200 with Body.
type MockRoundTripper struct {
	Delay   time.Duration
	Body    string
	Err     error
	Tracker PeakTracker
}

// RoundTrip implements http.RoundTripper.
func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Tracker.Enter()
	defer m.Tracker.Exit()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(m.Body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}
