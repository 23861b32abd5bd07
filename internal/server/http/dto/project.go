package dto

import "time"

// ProjectRequest is the admin create/update payload.
type ProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	AreaSqm     float64 `json:"area_sqm"`
	Year        int     `json:"year"`
	CoverImage  string  `json:"cover_image"`
	Published   bool    `json:"published"`
}

// ProjectResponse is a portfolio project.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	AreaSqm     float64   `json:"area_sqm,omitempty"`
	Year        int       `json:"year,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
