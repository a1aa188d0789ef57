package profile

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sort"
	"sync"
	"time"
)

// Timed runs fn once to warm up, then reps more times, and returns the
// average wall-clock duration of the timed runs. A non-positive reps runs
// only the warmup and returns 0.
func Timed(reps int, fn func()) time.Duration {
	fn()
	if reps < 1 {
		return 0
	}

	start := time.Now()
	for i := 0; i < reps; i++ {
		fn()
	}
	return time.Since(start) / time.Duration(reps)
}

// Stat accumulates timing samples for one named operation.
type Stat struct {
	Name       string
	Calls      int
	Cumulative time.Duration
}

// PerCall is the average duration of a single call.
func (s Stat) PerCall() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Cumulative / time.Duration(s.Calls)
}

// Session records call counts and cumulative durations per operation and
// renders them as plain-text reports.
type Session struct {
	mu    sync.Mutex
	stats map[string]*Stat
}

func NewSession() *Session {
	return &Session{stats: make(map[string]*Stat)}
}

// Time runs fn and records its duration under name.
func (s *Session) Time(name string, fn func()) {
	start := time.Now()
	fn()
	s.Observe(name, time.Since(start))
}

// Observe records one call of name taking d.
func (s *Session) Observe(name string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stats[name]
	if !ok {
		st = &Stat{Name: name}
		s.stats[name] = st
	}
	st.Calls++
	st.Cumulative += d
}

// SortOrder selects how report rows are ranked.
type SortOrder int

const (
	// SortCumulative ranks operations by total time spent, descending.
	SortCumulative SortOrder = iota
	// SortCalls ranks operations by call count, descending.
	SortCalls
)

// Stats returns a snapshot of all recorded operations in the given order.
func (s *Session) Stats(order SortOrder) []Stat {
	s.mu.Lock()
	snapshot := make([]Stat, 0, len(s.stats))
	for _, st := range s.stats {
		snapshot = append(snapshot, *st)
	}
	s.mu.Unlock()

	sort.Slice(snapshot, func(i, j int) bool {
		switch order {
		case SortCalls:
			if snapshot[i].Calls != snapshot[j].Calls {
				return snapshot[i].Calls > snapshot[j].Calls
			}
		default:
			if snapshot[i].Cumulative != snapshot[j].Cumulative {
				return snapshot[i].Cumulative > snapshot[j].Cumulative
			}
		}
		return snapshot[i].Name < snapshot[j].Name
	})
	return snapshot
}

// Report writes a table of recorded operations to w, ranked by order.
func (s *Session) Report(w io.Writer, order SortOrder) error {
	if _, err := fmt.Fprintf(w, "%8s %14s %14s  %s\n", "ncalls", "cumtime", "percall", "operation"); err != nil {
		return err
	}
	for _, st := range s.Stats(order) {
		if _, err := fmt.Fprintf(w, "%8d %14v %14v  %s\n", st.Calls, st.Cumulative, st.PerCall(), st.Name); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport renders the report into a file at path.
func (s *Session) WriteReport(path string, order SortOrder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := s.Report(f, order); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Sync()
}

// StartCPUProfile begins a CPU profile written to path and returns the stop
// function that flushes and closes it.
func StartCPUProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
