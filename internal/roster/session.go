// Package roster holds the in-memory editing state of the trip roster: a
// pair of snapshots (last committed vs. currently edited) and the diff
// between them. It is pure state management and knows nothing about SQL or
// HTTP, so the save/cancel semantics can be tested without either.
package roster

import (
	"errors"
	"sync"
	"time"

	"motortransport/internal/domain/models"
)

type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

var (
	ErrNotEditing = errors.New("no edit in progress")
	ErrEditing    = errors.New("edit already in progress")
	ErrNoRows     = errors.New("no rows loaded")
	ErrUnknownRow = errors.New("row not found in snapshot")
)

// Snapshot is one in-memory copy of the roster query result.
type Snapshot []models.Trip

// Clone returns an independent copy; rows are plain values so a shallow
// element copy is a deep one.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

func (s Snapshot) indexOf(id int64) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

// RowChange carries exactly the fields a save writes back, keyed by trip id.
type RowChange struct {
	ID            int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	Status        string
}

// Diff returns one RowChange per working row whose editable fields differ
// from the original row of the same id. Rows absent from the original are
// ignored: new trips never enter the working copy, they go through the
// direct-insert path.
func Diff(original, working Snapshot) []RowChange {
	changes := []RowChange{}
	for _, w := range working {
		i := original.indexOf(w.ID)
		if i < 0 {
			continue
		}
		o := original[i]
		if w.DepartureTime.Equal(o.DepartureTime) &&
			w.ArrivalTime.Equal(o.ArrivalTime) &&
			w.Status == o.Status {
			continue
		}
		changes = append(changes, RowChange{
			ID:            w.ID,
			DepartureTime: w.DepartureTime,
			ArrivalTime:   w.ArrivalTime,
			Status:        w.Status,
		})
	}
	return changes
}

// Session is the edit-session state machine. All methods are safe for
// concurrent use; operations still execute strictly one after another, which
// is the ordering contract the legacy single-threaded client had.
type Session struct {
	mu       sync.Mutex
	state    State
	original Snapshot
	working  Snapshot
}

func NewSession() *Session {
	return &Session{original: Snapshot{}, working: Snapshot{}}
}

// Reset replaces both snapshots with a freshly loaded one and returns to
// Viewing. Any unsaved edits are implicitly discarded.
func (s *Session) Reset(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.original = snap.Clone()
	s.working = snap.Clone()
	s.state = Viewing
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Rows returns a copy of the working snapshot, the one the user sees.
func (s *Session) Rows() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working.Clone()
}

// BeginEdit switches to Editing. It requires at least one loaded row.
func (s *Session) BeginEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Editing {
		return ErrEditing
	}
	if len(s.working) == 0 {
		return ErrNoRows
	}
	s.state = Editing
	return nil
}

// UpdateRow mutates one working row. The original stays untouched until
// Commit; that invariant is what makes Cancel a pure restore.
func (s *Session) UpdateRow(id int64, departure, arrival time.Time, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Editing {
		return ErrNotEditing
	}
	i := s.working.indexOf(id)
	if i < 0 {
		return ErrUnknownRow
	}
	s.working[i].DepartureTime = departure
	s.working[i].ArrivalTime = arrival
	s.working[i].Status = status
	return nil
}

// Changes computes the pending changes. Only meaningful at save time; it is
// never cached.
func (s *Session) Changes() []RowChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Diff(s.original, s.working)
}

// Commit accepts the working copy as the new committed state and returns to
// Viewing. The caller is responsible for having persisted the changes first.
func (s *Session) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.original = s.working.Clone()
	s.state = Viewing
}

// Cancel discards the working copy, restores it from the original and
// returns to Viewing. No storage is involved.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working = s.original.Clone()
	s.state = Viewing
}

// Remove drops a row from both snapshots after a successful delete, so the
// view stays consistent without a full reload.
func (s *Session) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	if i := s.working.indexOf(id); i >= 0 {
		s.working = append(s.working[:i], s.working[i+1:]...)
		found = true
	}
	if i := s.original.indexOf(id); i >= 0 {
		s.original = append(s.original[:i], s.original[i+1:]...)
	}
	return found
}

// Find returns a copy of the working row with the given id.
func (s *Session) Find(id int64) (models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.working.indexOf(id)
	if i < 0 {
		return models.Trip{}, false
	}
	return s.working[i], true
}
