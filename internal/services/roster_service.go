package services

import (
	"errors"
	"fmt"
	"time"

	"motortransport/internal/domain"
	"motortransport/internal/domain/models"
	"motortransport/internal/repositories"
	"motortransport/internal/roster"
	"motortransport/internal/utils"
)

// RosterService orchestrates the trip roster: loading filtered snapshots
// into the edit session and pushing the session's pending changes back to
// storage. The session itself stays pure; all SQL goes through the repo.
type RosterService struct {
	Trips     repositories.TripRepository
	Session   *roster.Session
	RequestID string
}

// Load fetches a fresh snapshot and replaces both session copies. On a
// storage error the session is left exactly as it was.
func (s RosterService) Load(f models.TripFilter) (roster.Snapshot, error) {
	rows, err := s.Trips.List(f)
	if err != nil {
		return nil, err
	}
	snap := roster.Snapshot(rows)
	s.Session.Reset(snap)
	utils.LogEvent(s.RequestID, "roster", "load", fmt.Sprintf("rows=%d", len(snap)))
	return snap.Clone(), nil
}

// BeginEdit switches the session into editing mode.
func (s RosterService) BeginEdit() error {
	if err := s.Session.BeginEdit(); err != nil {
		return sessionError(err)
	}
	utils.LogEvent(s.RequestID, "roster", "edit_begin", "")
	return nil
}

// UpdateRow mutates one row of the working copy. Nothing is persisted until
// Save.
func (s RosterService) UpdateRow(id int64, departure, arrival time.Time, status string) error {
	if !models.ValidStatus(status) {
		return domain.ValidationError{Field: "status", Msg: "unknown status value"}
	}
	if !arrival.After(departure) {
		return domain.ValidationError{Field: "arrival_time", Msg: "arrival must be after departure"}
	}
	if err := s.Session.UpdateRow(id, departure, arrival, status); err != nil {
		return sessionError(err)
	}
	return nil
}

// Save diffs the working copy against the original and issues one update per
// changed row. The updates are deliberately independent statements, not one
// transaction: a failure partway through leaves the earlier rows committed
// and the session still in editing mode. Returns the number of rows written.
func (s RosterService) Save() (int, error) {
	if s.Session.State() != roster.Editing {
		return 0, sessionError(roster.ErrNotEditing)
	}

	changes := s.Session.Changes()
	if len(changes) == 0 {
		s.Session.Cancel()
		utils.LogEvent(s.RequestID, "roster", "save", "nothing to save")
		return 0, nil
	}

	for i, ch := range changes {
		if err := s.Trips.Update(ch); err != nil {
			utils.LogEvent(s.RequestID, "roster", "save",
				fmt.Sprintf("failed at row %d of %d, trip_id=%d", i+1, len(changes), ch.ID))
			return i, err
		}
	}

	s.Session.Commit()
	utils.LogEvent(s.RequestID, "roster", "save", fmt.Sprintf("rows=%d", len(changes)))
	return len(changes), nil
}

// Cancel discards the working copy and restores the original. No storage
// access.
func (s RosterService) Cancel() error {
	if s.Session.State() != roster.Editing {
		return sessionError(roster.ErrNotEditing)
	}
	s.Session.Cancel()
	utils.LogEvent(s.RequestID, "roster", "edit_cancel", "")
	return nil
}

// AddDefault inserts a trip built from the first available route, vehicle
// and driver, then reloads the full snapshot. All three reference tables are
// checked before anything is written.
func (s RosterService) AddDefault() (int64, error) {
	if s.Session.State() == roster.Editing {
		return 0, domain.ValidationError{Msg: "finish or cancel the current edit first"}
	}

	ids := map[string]int64{}
	for _, table := range []string{repositories.RefRoute, repositories.RefVehicle, repositories.RefDriver} {
		id, err := s.Trips.FirstReferenceID(table)
		if err != nil {
			return 0, err
		}
		if id == 0 {
			return 0, domain.EmptyReferenceError{Table: table}
		}
		ids[table] = id
	}

	id, err := s.Trips.InsertDefault(
		ids[repositories.RefRoute], ids[repositories.RefVehicle], ids[repositories.RefDriver])
	if err != nil {
		return 0, err
	}

	if _, err := s.Load(models.TripFilter{}); err != nil {
		return id, err
	}
	utils.LogEvent(s.RequestID, "roster", "add", fmt.Sprintf("trip_id=%d", id))
	return id, nil
}

// Delete removes a trip and its bookings atomically, then drops the row from
// the in-memory snapshot without a reload.
func (s RosterService) Delete(id int64) error {
	if s.Session.State() == roster.Editing {
		return domain.ValidationError{Msg: "finish or cancel the current edit first"}
	}
	if _, ok := s.Session.Find(id); !ok {
		return domain.ValidationError{Field: "id", Msg: "trip is not in the current snapshot"}
	}

	if err := s.Trips.DeleteWithBookings(id); err != nil {
		return err
	}

	s.Session.Remove(id)
	utils.LogEvent(s.RequestID, "roster", "delete", fmt.Sprintf("trip_id=%d", id))
	return nil
}

func sessionError(err error) error {
	switch {
	case errors.Is(err, roster.ErrNoRows):
		return domain.ValidationError{Msg: "load at least one trip before editing"}
	case errors.Is(err, roster.ErrEditing):
		return domain.ValidationError{Msg: "edit already in progress"}
	case errors.Is(err, roster.ErrNotEditing):
		return domain.ValidationError{Msg: "no edit in progress"}
	case errors.Is(err, roster.ErrUnknownRow):
		return domain.ValidationError{Field: "id", Msg: "trip is not in the current snapshot"}
	}
	return err
}
