package models

// RoleClient is the fixed role id assigned at self-service registration.
// Clients get a read-only view of the roster.
const RoleClient = 4

// User mirrors transport_company."user".
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password" json:"-"`
	Email        string `db:"email" json:"email"`
	RoleID       int    `db:"role_id" json:"role_id"`
	IsActive     bool   `db:"is_active" json:"is_active"`
}

// Identity is what a successful login hands to the rest of the app.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RoleID   int    `json:"role_id"`
}

// IsClient reports whether the identity is limited to read-only access.
func (i Identity) IsClient() bool { return i.RoleID == RoleClient }
