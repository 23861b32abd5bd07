package model

import "time"

// Subscriber is a newsletter subscription. Email is unique; resubscribing
// reactivates the existing row.
type Subscriber struct {
	ID           string
	Email        string
	Active       bool
	SubscribedAt time.Time
}
