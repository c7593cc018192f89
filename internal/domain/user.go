package domain

import (
	"strings"
	"time"
)

// Role identifies the authorization level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the domain model for registered accounts.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	LocationState string
	LocationCity  string
	Role          Role
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Projection is the subset of a User safe to return to clients.
// It never carries the password hash.
type Projection struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	LocationState string    `json:"location_state"`
	LocationCity  string    `json:"location_city"`
	Role          Role      `json:"role"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Project strips internal fields for client responses.
func (u *User) Project() Projection {
	return Projection{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		LocationState: u.LocationState,
		LocationCity:  u.LocationCity,
		Role:          u.Role,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
	}
}

// NormalizeEmail lowercases and trims an address. Storage, lookup and the
// uniqueness constraint all operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
