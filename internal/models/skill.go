package models

import "time"

// Skill represents a skill entry
type Skill struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Percentage int       `json:"percentage"`
	Icon       string    `json:"icon"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateSkillRequest represents a new skill
type CreateSkillRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
	Icon       string `json:"icon"`
}
