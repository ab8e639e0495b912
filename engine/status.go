package engine

import "time"

// FacetStatus is a point-in-time view of one facet.
type FacetStatus struct {
	Index       int       `json:"index"`
	Path        string    `json:"path,omitempty"`
	Kind        string    `json:"kind"`
	State       State     `json:"state"`
	Failed      bool      `json:"failed"`
	LastError   string    `json:"last_error,omitempty"`
	Session     uint64    `json:"session"`
	Trace       string    `json:"trace,omitempty"`
	Since       time.Time `json:"since"`
	Frames      uint64    `json:"frames"`
	Assignments int       `json:"assignments"`
	Failures    int       `json:"failures"`
}

// Status returns a snapshot of every facet. It is safe to call from any goroutine.
func (s *Scheduler) Status() []FacetStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return append([]FacetStatus(nil), s.statuses...)
}

func (s *Scheduler) publish(f *facet) {
	st := FacetStatus{
		Index:       f.index,
		Path:        f.path,
		Kind:        f.kind.String(),
		State:       f.state,
		Failed:      f.failed,
		LastError:   f.lastErr,
		Session:     f.session,
		Trace:       f.trace,
		Since:       f.assignedAt,
		Frames:      f.frames,
		Assignments: f.assignments,
		Failures:    f.failures,
	}

	s.statusMu.Lock()
	s.statuses[f.index] = st
	s.statusMu.Unlock()
}
