package model

import "time"

// Contact submission statuses. Submissions enter as ContactStatusNew and are
// never mutated through the public API.
const ContactStatusNew = "new"

// Contact represents a contact-form submission. Reference is a UUID assigned
// at creation and echoed in the owner notification for correlation.
type Contact struct {
	ID        int64
	Reference string
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    string
	CreatedAt time.Time
}
