package model

import "time"

// QuoteStatus tracks processing of a quote request.
type QuoteStatus string

const (
	QuoteStatusNew      QuoteStatus = "new"
	QuoteStatusQuoted   QuoteStatus = "quoted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

// QuoteRequest is a request for a design quote submitted from the public site.
type QuoteRequest struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Budget      string
	Message     string
	Status      QuoteStatus
	CreatedAt   time.Time
}
