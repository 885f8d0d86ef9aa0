package models

import "time"

// Project represents a portfolio project
type Project struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies string    `json:"technologies"`
	GithubURL    string    `json:"github_url"`
	LiveURL      string    `json:"live_url"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateProjectRequest represents a new project.
// Image is set from the uploaded file when present.
type CreateProjectRequest struct {
	Title        string
	Description  string
	Technologies string
	GithubURL    string
	LiveURL      string
	Featured     bool
	Image        string
}
