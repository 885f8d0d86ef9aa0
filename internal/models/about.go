package models

import "time"

// About is the single about-section row (id = 1)
type About struct {
	ID        int       `json:"id"`
	AboutText string    `json:"aboutText"`
	Frontend  string    `json:"frontend"`
	Backend   string    `json:"backend"`
	Database  string    `json:"database"`
	Tools     string    `json:"tools"`
	Image     string    `json:"image"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateAboutRequest carries the editable about-section fields
type UpdateAboutRequest struct {
	AboutText string
	Frontend  string
	Backend   string
	Database  string
	Tools     string
	Image     string // new upload path, empty to keep current
}
