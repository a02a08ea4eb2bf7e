package domain

import "time"

// Role differentiates reporters from community helpers.
type Role string

const (
	RoleUser   Role = "user"
	RoleHelper Role = "helper"
)

// User is the domain model for registered accounts.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the acting identity for a single operation. It is
// supplied per call by the authentication layer and never persisted.
type Principal struct {
	ID       string
	Role     Role
	Verified bool
}

// PrincipalFromUser projects a stored account into an acting identity.
func PrincipalFromUser(user *User) *Principal {
	if user == nil {
		return nil
	}
	return &Principal{
		ID:       user.ID,
		Role:     user.Role,
		Verified: user.Verified,
	}
}

// IsVerifiedHelper reports whether the principal may act with helper
// privileges. A helper whose account is not verified does not qualify.
func (p *Principal) IsVerifiedHelper() bool {
	return p != nil && p.Role == RoleHelper && p.Verified
}

// CanEndorse reports whether the principal may upvote replies under the
// given report: either the report's own author, regardless of role, or
// a verified helper.
func (p *Principal) CanEndorse(report *Report) bool {
	if p == nil || report == nil {
		return false
	}
	return p.ID == report.AuthorID || p.IsVerifiedHelper()
}
