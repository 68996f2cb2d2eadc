package repositories

import (
	"errors"
	"testing"
	"time"

	"motortransport/internal/domain"
	"motortransport/internal/domain/models"
	"motortransport/internal/roster"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func newMockRepo(t *testing.T) (TripRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return TripRepository{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func tripRows(trips ...models.Trip) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "route_number", "vehicle", "driver", "departure_time", "arrival_time", "status"})
	for _, tr := range trips {
		rows.AddRow(tr.ID, tr.RouteNumber, tr.Vehicle, tr.Driver, tr.DepartureTime, tr.ArrivalTime, tr.Status)
	}
	return rows
}

func TestListNoFiltersOrdersByDeparture(t *testing.T) {
	repo, mock := newMockRepo(t)

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM transport_company\.trip t(?s:.*)ORDER BY t\.departure_time`).
		WithArgs().
		WillReturnRows(tripRows(
			models.Trip{ID: 1, RouteNumber: "101", Vehicle: "КамАЗ 5490", Driver: "Иванов Пётр",
				DepartureTime: base, ArrivalTime: base.Add(time.Hour), Status: models.StatusPlanned},
			models.Trip{ID: 2, RouteNumber: "102", Vehicle: "ГАЗель Next", Driver: "Петров Олег",
				DepartureTime: base.Add(2 * time.Hour), ArrivalTime: base.Add(3 * time.Hour), Status: models.StatusCompleted},
		))

	out, err := repo.List(models.TripFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("unexpected result: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListStatusSentinelNotApplied(t *testing.T) {
	repo, mock := newMockRepo(t)

	// "Все" means no status clause: the query must carry zero parameters
	mock.ExpectQuery(`FROM transport_company\.trip t`).
		WithArgs().
		WillReturnRows(tripRows())

	if _, err := repo.List(models.TripFilter{Status: models.StatusAll}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListStatusFilterApplied(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`AND t\.status::text = \$1`).
		WithArgs(models.StatusPlanned).
		WillReturnRows(tripRows())

	if _, err := repo.List(models.TripFilter{Status: models.StatusPlanned}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListDateToCoversWholeDay(t *testing.T) {
	repo, mock := newMockRepo(t)

	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	// inclusive through 23:59:59 of the selected day: bound is the next
	// midnight, compared exclusively
	mock.ExpectQuery(`AND t\.departure_time < \$1`).
		WithArgs(day.AddDate(0, 0, 1)).
		WillReturnRows(tripRows())

	if _, err := repo.List(models.TripFilter{DateTo: &day}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListDateRangeArgsInOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`AND t\.departure_time >= \$2 AND t\.departure_time < \$3`).
		WithArgs(models.StatusPlanned, from, to.AddDate(0, 0, 1)).
		WillReturnRows(tripRows())

	f := models.TripFilter{Status: models.StatusPlanned, DateFrom: &from, DateTo: &to}
	if _, err := repo.List(f); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateWritesEditableFieldsByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	dep := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	arr := dep.Add(2 * time.Hour)
	mock.ExpectExec(`UPDATE transport_company\.trip`).
		WithArgs(dep, arr, models.StatusCancelled, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(roster.RowChange{ID: 7, DepartureTime: dep, ArrivalTime: arr, Status: models.StatusCancelled})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFirstReferenceIDEmptyTable(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id FROM transport_company\.vehicle LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	id, err := repo.FirstReferenceID(RefVehicle)
	if err != nil {
		t.Fatalf("FirstReferenceID: %v", err)
	}
	if id != 0 {
		t.Fatalf("expected 0 for empty table, got %d", id)
	}
}

func TestFirstReferenceIDRejectsUnknownTable(t *testing.T) {
	repo, _ := newMockRepo(t)
	if _, err := repo.FirstReferenceID("booking"); !domain.IsInternal(err) {
		t.Fatalf("expected internal error for non-reference table, got %v", err)
	}
}

func TestDeleteWithBookingsCommits(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM transport_company\.booking WHERE trip_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM transport_company\.trip WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteWithBookings(5); err != nil {
		t.Fatalf("DeleteWithBookings: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteWithBookingsRollsBackOnBookingFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM transport_company\.booking`).
		WithArgs(int64(5)).
		WillReturnError(errors.New("booking delete forced to fail"))
	mock.ExpectRollback()

	if err := repo.DeleteWithBookings(5); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("rollback not issued: %v", err)
	}
}

func TestTranslateErrorMapsSQLStates(t *testing.T) {
	if !domain.IsConflict(translateError(&pq.Error{Code: "23505"})) {
		t.Fatalf("23505 must map to conflict")
	}
	if !domain.IsUnavailable(translateError(&pq.Error{Code: "28P01"})) {
		t.Fatalf("28P01 must map to unavailable")
	}
	if !domain.IsUnavailable(translateError(&pq.Error{Code: "08006"})) {
		t.Fatalf("08006 must map to unavailable")
	}
	if !domain.IsInternal(translateError(errors.New("boom"))) {
		t.Fatalf("unknown errors must map to internal")
	}
}
