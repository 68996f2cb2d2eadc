package repositories

import (
	"errors"
	"net"

	"motortransport/internal/domain"

	"github.com/lib/pq"
)

// translateError maps driver-level failures onto the domain taxonomy.
// SQLSTATE class 28 (invalid authorization) and class 08 (connection
// exception) both mean "storage unavailable" to the caller; 23505 is a
// unique-constraint conflict. Everything else stays an internal error.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505":
			return domain.ConflictError{Err: err}
		case pqErr.Code.Class() == "28" || pqErr.Code.Class() == "08":
			return domain.UnavailableError{Err: err}
		}
		return domain.InternalError{Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.UnavailableError{Err: err}
	}

	return domain.InternalError{Err: err}
}
