package metrics

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Collector keeps process-lifetime counters for requests and contact
// submissions. The zero value is ready to use.
type Collector struct {
	requests        atomic.Uint64
	serverErrors    atomic.Uint64
	rateLimited     atomic.Uint64
	durationMs      atomic.Uint64
	contactAccepted atomic.Uint64
	contactRejected atomic.Uint64
	dispatchFailed  atomic.Uint64
}

type Snapshot struct {
	RequestsTotal         uint64  `json:"requestsTotal"`
	ErrorsTotal           uint64  `json:"errorsTotal"`
	RateLimitedTotal      uint64  `json:"rateLimitedTotal"`
	AvgDurationMs         float64 `json:"avgDurationMs"`
	TotalDurationMs       uint64  `json:"totalDurationMs"`
	ContactAcceptedTotal  uint64  `json:"contactAcceptedTotal"`
	ContactRejectedTotal  uint64  `json:"contactRejectedTotal"`
	DispatchFailuresTotal uint64  `json:"dispatchFailuresTotal"`
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.requests.Add(1)
	switch {
	case status >= http.StatusInternalServerError:
		c.serverErrors.Add(1)
	case status == http.StatusTooManyRequests:
		c.rateLimited.Add(1)
	}
	c.durationMs.Add(uint64(duration.Milliseconds()))
}

// ContactAccepted counts a submission whose notifications were both sent.
func (c *Collector) ContactAccepted() { c.contactAccepted.Add(1) }

// ContactRejected counts a submission that failed validation.
func (c *Collector) ContactRejected() { c.contactRejected.Add(1) }

func (c *Collector) DispatchFailed() { c.dispatchFailed.Add(1) }

func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{
		RequestsTotal:         c.requests.Load(),
		ErrorsTotal:           c.serverErrors.Load(),
		RateLimitedTotal:      c.rateLimited.Load(),
		TotalDurationMs:       c.durationMs.Load(),
		ContactAcceptedTotal:  c.contactAccepted.Load(),
		ContactRejectedTotal:  c.contactRejected.Load(),
		DispatchFailuresTotal: c.dispatchFailed.Load(),
	}
	if s.RequestsTotal > 0 {
		s.AvgDurationMs = float64(s.TotalDurationMs) / float64(s.RequestsTotal)
	}
	return s
}
