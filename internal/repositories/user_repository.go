package repositories

import (
	"database/sql"
	"errors"

	intconfig "motortransport/internal/config"
	"motortransport/internal/domain"
	"motortransport/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	DB *sqlx.DB
}

func (r UserRepository) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// FindActiveByCredentials looks up an active account matching both username
// and password digest in a single query, so a miss never tells which of the
// two was wrong.
func (r UserRepository) FindActiveByCredentials(username, digest string) (models.Identity, error) {
	var ident models.Identity
	err := r.db().QueryRow(`
		SELECT id, username, role_id
		FROM transport_company."user"
		WHERE username = $1 AND password = $2 AND is_active = TRUE
	`, username, digest).Scan(&ident.ID, &ident.Username, &ident.RoleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Identity{}, domain.AuthError{Err: err}
		}
		return models.Identity{}, translateError(err)
	}
	return ident, nil
}

// Create inserts a new account and returns its id. Uniqueness of username
// and email is enforced by the schema; a violation surfaces as a conflict.
func (r UserRepository) Create(username, digest, email string, roleID int) (int64, error) {
	var id int64
	err := r.db().QueryRow(`
		INSERT INTO transport_company."user" (username, password, email, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, username, digest, email, roleID).Scan(&id)
	if err != nil {
		err = translateError(err)
		var conflict domain.ConflictError
		if errors.As(err, &conflict) {
			conflict.Resource = "user"
			return 0, conflict
		}
		return 0, err
	}
	return id, nil
}
