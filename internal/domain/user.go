package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application-side record of an identity-provider user.
// Its ID equals the token subject.
type Profile struct {
	ID        uuid.UUID
	Email     *string
	FullName  *string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Identity is the resolved caller of a request.
type Identity struct {
	UserID uuid.UUID
	Role   UserRole
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}
