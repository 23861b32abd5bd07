package model

import "time"

// ContactStatus tracks how far a contact message got in the back office.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
}
