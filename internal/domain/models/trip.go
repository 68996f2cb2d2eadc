package models

import "time"

// Trip statuses are stored as a PostgreSQL enum; the exact strings are part
// of the schema and must not be translated.
const (
	StatusPlanned    = "запланировано"
	StatusInProgress = "выполняется"
	StatusCompleted  = "выполнено"
	StatusCancelled  = "отменено"
)

// StatusAll is the filter sentinel meaning "no status filter".
const StatusAll = "Все"

// Statuses lists every valid trip status in display order.
var Statuses = []string{StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled}

// ValidStatus reports whether s is one of the enum values.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Trip is one denormalized roster row: display strings are precomputed by the
// load query, only the id stays as the diff/delete key.
type Trip struct {
	ID            int64     `db:"id" json:"id"`
	RouteNumber   string    `db:"route_number" json:"route_number"`
	Vehicle       string    `db:"vehicle" json:"vehicle"`
	Driver        string    `db:"driver" json:"driver"`
	DepartureTime time.Time `db:"departure_time" json:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time" json:"arrival_time"`
	Status        string    `db:"status" json:"status"`
}

// TripFilter narrows the roster load. Zero values mean "not applied";
// Status equal to StatusAll is treated the same as empty.
type TripFilter struct {
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
}
