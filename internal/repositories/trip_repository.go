package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "motortransport/internal/config"
	"motortransport/internal/domain"
	"motortransport/internal/domain/models"
	"motortransport/internal/roster"

	"github.com/jmoiron/sqlx"
)

// Reference tables a new trip borrows its foreign keys from. Fixed set, so
// table names never come from user input.
const (
	RefRoute   = "route"
	RefVehicle = "vehicle"
	RefDriver  = "driver"
)

type TripRepository struct {
	DB *sqlx.DB
}

func (r TripRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List loads the denormalized roster. Optional filters are AND-composed from
// fixed parameterized fragments; the date-to bound is pushed one day forward
// and compared exclusively, which includes the whole selected day and
// nothing of the next one. Result is ordered by departure time ascending.
func (r TripRepository) List(f models.TripFilter) ([]models.Trip, error) {
	query := `
		SELECT t.id, r.number AS route_number,
		       v.brand || ' ' || v.model AS vehicle,
		       d.last_name || ' ' || d.first_name AS driver,
		       t.departure_time, t.arrival_time, t.status::text AS status
		FROM transport_company.trip t
		JOIN transport_company.route r ON t.route_id = r.id
		JOIN transport_company.vehicle v ON t.vehicle_id = v.id
		JOIN transport_company.driver d ON t.driver_id = d.id
		WHERE 1=1`
	args := []any{}

	if st := strings.TrimSpace(f.Status); st != "" && st != models.StatusAll {
		args = append(args, st)
		query += fmt.Sprintf(" AND t.status::text = $%d", len(args))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		query += fmt.Sprintf(" AND t.departure_time >= $%d", len(args))
	}
	if f.DateTo != nil {
		args = append(args, f.DateTo.AddDate(0, 0, 1))
		query += fmt.Sprintf(" AND t.departure_time < $%d", len(args))
	}
	query += " ORDER BY t.departure_time"

	out := []models.Trip{}
	if err := r.db().Select(&out, query, args...); err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// Update writes back one changed row: the three editable fields, keyed by
// id. Last write wins; there is no concurrency check by design.
func (r TripRepository) Update(ch roster.RowChange) error {
	_, err := r.db().Exec(`
		UPDATE transport_company.trip
		SET departure_time = $1,
		    arrival_time = $2,
		    status = $3::transport_company.trip_status
		WHERE id = $4
	`, ch.DepartureTime, ch.ArrivalTime, ch.Status, ch.ID)
	return translateError(err)
}

// InsertDefault creates a trip with the legacy defaults: departs now,
// arrives in an hour, status planned.
func (r TripRepository) InsertDefault(routeID, vehicleID, driverID int64) (int64, error) {
	var id int64
	err := r.db().QueryRow(`
		INSERT INTO transport_company.trip
		       (route_id, vehicle_id, driver_id, departure_time, arrival_time, status)
		VALUES ($1, $2, $3, NOW(), NOW() + INTERVAL '1 hour',
		        'запланировано'::transport_company.trip_status)
		RETURNING id
	`, routeID, vehicleID, driverID).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// FirstReferenceID returns an arbitrary existing id from one of the
// reference tables, or 0 when the table is empty.
func (r TripRepository) FirstReferenceID(table string) (int64, error) {
	switch table {
	case RefRoute, RefVehicle, RefDriver:
	default:
		return 0, domain.InternalError{Msg: "unknown reference table " + table}
	}

	var id int64
	err := r.db().QueryRow(fmt.Sprintf(`SELECT id FROM transport_company.%s LIMIT 1`, table)).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, translateError(err)
	}
	return id, nil
}

// DeleteWithBookings removes the trip's dependent bookings and then the trip
// itself in one transaction. Any failure rolls the whole thing back.
func (r TripRepository) DeleteWithBookings(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return translateError(err)
	}

	if _, err := tx.Exec(`DELETE FROM transport_company.booking WHERE trip_id = $1`, id); err != nil {
		_ = tx.Rollback()
		return translateError(err)
	}
	if _, err := tx.Exec(`DELETE FROM transport_company.trip WHERE id = $1`, id); err != nil {
		_ = tx.Rollback()
		return translateError(err)
	}

	if err := tx.Commit(); err != nil {
		return translateError(err)
	}
	return nil
}
