package models

import "time"

// Profile is the single profile row shown on the public site (id = 1)
type Profile struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Photo     string    `json:"photo"`
	CVURL     string    `json:"cv_url"`
	Location  string    `json:"location"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest carries the editable profile fields.
// Photo and CVURL are set from uploaded files when present.
type UpdateProfileRequest struct {
	Name     string
	Title    string
	Bio      string
	Location string
	Email    string
	Phone    string
	Photo    string // new upload path, empty to keep current
	CVURL    string // new upload path, empty to keep current
}
