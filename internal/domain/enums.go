package domain

// Status is the moderation lifecycle state shared by terms and suggestions.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further moderation decision can be applied.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// EntityKind discriminates the moderated entity targeted by an edit.
type EntityKind string

const (
	EntityKindTerm       EntityKind = "term"
	EntityKindSuggestion EntityKind = "suggestion"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindTerm, EntityKindSuggestion:
		return true
	}
	return false
}
