package dto

import "time"

// QuoteRequestPayload is the public quote form payload.
type QuoteRequestPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"project_type"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}

// QuoteResponse is a stored quote request.
type QuoteResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ProjectType string    `json:"project_type"`
	Budget      string    `json:"budget,omitempty"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
