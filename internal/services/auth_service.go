package services

import (
	"strings"

	"motortransport/internal/domain"
	"motortransport/internal/domain/models"
	"motortransport/internal/repositories"
	"motortransport/internal/utils"
)

// AuthService is the credential gate and the registration flow. Both hash
// the password the same way; that shared digest is what lets a user
// registered here log in later.
type AuthService struct {
	Users     repositories.UserRepository
	RequestID string
}

// Authenticate validates a username/password pair against stored digests.
// Blank input is rejected locally, without a storage round-trip.
func (s AuthService) Authenticate(username, password string) (models.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return models.Identity{}, domain.ValidationError{Msg: "username and password are required"}
	}

	ident, err := s.Users.FindActiveByCredentials(username, utils.HashPassword(password))
	if err != nil {
		return models.Identity{}, err
	}

	utils.LogEvent(s.RequestID, "auth", "login", "username="+username)
	return ident, nil
}

// Register creates a new client account. Validation (all fields present,
// matching passwords) happens before any storage access; uniqueness of
// username and email is left to the schema.
func (s AuthService) Register(username, password, confirm, email string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" ||
		strings.TrimSpace(password) == "" || strings.TrimSpace(confirm) == "" {
		return 0, domain.ValidationError{Msg: "all fields are required"}
	}
	if password != confirm {
		return 0, domain.ValidationError{Field: "password", Msg: "passwords do not match"}
	}

	id, err := s.Users.Create(username, utils.HashPassword(password), email, models.RoleClient)
	if err != nil {
		return 0, err
	}

	utils.LogEvent(s.RequestID, "auth", "register", "username="+username)
	return id, nil
}
