package models

import "time"

// User represents an admin user in the system
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	// FaceDescriptor is the enrolled face embedding vector; nil until the
	// user saves one. At most one descriptor per user, replaced on re-enroll.
	FaceDescriptor []float64 `json:"-"`
	// Token is the user's current session token; empty when none has been
	// issued. Overwritten on password login and on descriptor enrollment.
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// UserInfo is the public view of a user returned by authentication endpoints
type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Info returns the public view of the user
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// LoginRequest represents a password login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FaceLoginRequest represents a face login or enrollment request
type FaceLoginRequest struct {
	Descriptor []float64 `json:"descriptor"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResponse is returned by both login paths
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
