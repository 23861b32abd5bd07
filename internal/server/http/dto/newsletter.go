package dto

import "time"

// SubscribeRequest carries a newsletter email.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscriberResponse is a stored subscription.
type SubscriberResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Active       bool      `json:"active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
