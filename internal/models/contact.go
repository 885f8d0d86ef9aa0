package models

import "time"

// ContactInfo is the single contact-info row (id = 1)
type ContactInfo struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	Github      string    `json:"github"`
	Linkedin    string    `json:"linkedin"`
	Twitter     string    `json:"twitter"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateContactInfoRequest carries the editable contact-info fields
type UpdateContactInfoRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}
