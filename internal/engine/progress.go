package engine

import (
	"sync"
	"time"
)

// Progress tracks how many packages of a run have been summarized.
// It is safe for concurrent use.
type Progress struct {
	mu        sync.Mutex
	total     int
	succeeded int
	failed    int
	start     time.Time
}

// NewProgress starts tracking a run of total packages.
func NewProgress(total int) *Progress {
	return &Progress{total: total, start: time.Now()}
}

// Add records one finished package.
func (p *Progress) Add(ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ok {
		p.succeeded++
	} else {
		p.failed++
	}
}

// Stats is an immutable snapshot of a Progress.
type Stats struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Done is the number of packages finished either way.
func (s Stats) Done() int {
	return s.Succeeded + s.Failed
}

// Skipped is the number of packages never attempted.
func (s Stats) Skipped() int {
	return s.Total - s.Done()
}

// Snapshot returns the current counts.
func (p *Progress) Snapshot() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Total:     p.total,
		Succeeded: p.succeeded,
		Failed:    p.failed,
		Elapsed:   time.Since(p.start),
	}
}
