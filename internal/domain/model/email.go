package model

// OutboundEmail is a structured message handed to the mail transport.
// HTML and Text are alternative bodies; ReplyTo may be empty.
type OutboundEmail struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}
