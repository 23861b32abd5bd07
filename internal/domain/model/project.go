package model

import "time"

// Project is a portfolio entry describing completed interior work.
type Project struct {
	ID          string
	Title       string
	Description string
	Category    string
	Location    string
	AreaSqm     float64
	Year        int
	CoverImage  string
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
