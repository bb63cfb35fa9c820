package record

import (
	"sync"

	"github.com/uilab/inputx"
)

// Recorder accumulates events as a backend produces them. Event values are
// immutable, so the lock only guards the growing slice; it is safe to call
// Append from multiple goroutines.
type Recorder struct {
	mu  sync.Mutex
	rec Recording
}

// NewRecorder starts an empty recording.
func NewRecorder() *Recorder {
	return &Recorder{rec: *New()}
}

// Append adds an event to the end of the recording.
func (r *Recorder) Append(e inputx.Input) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec.Events = append(r.rec.Events, e)
}

// Len reports the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rec.Events)
}

// Snapshot returns a copy of the recording so far. The returned value is
// independent of later Appends.
func (r *Recorder) Snapshot() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Recording{
		ID:        r.rec.ID,
		CreatedAt: r.rec.CreatedAt,
		Events:    make([]inputx.Input, len(r.rec.Events)),
	}
	copy(snap.Events, r.rec.Events)
	return &snap
}
