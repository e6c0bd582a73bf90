// Package models contains the canonical client-side domain types.
// Every remote payload is normalized into these types once, at the API
// boundary; code above that boundary never branches on backend shape.
package models

// Role is the account role assigned by the backend.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// UserSummary is the cached user object stored next to the auth token.
// It is a display cache, not a source of truth: the backend re-validates
// the token on every authenticated call.
type UserSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}

// Session pairs the bearer token with the cached user. Owned exclusively
// by the session service; other components read it, never mutate it.
type Session struct {
	Token string
	User  *UserSummary
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request payload.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// AuthResponse is what the auth endpoints return on success.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}

// UserStats are the account counters shown alongside the profile.
type UserStats struct {
	Downloads   int    `json:"downloads"`
	Favorites   int    `json:"favorites"`
	MemberSince string `json:"memberSince"`
}

// PasswordChange is the change-password request payload.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
