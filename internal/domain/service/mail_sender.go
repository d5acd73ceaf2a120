package service

import "context"

// Mail is a single outbound email message.
type Mail struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// MailSender defines the interface for sending transactional email.
type MailSender interface {
	// Send delivers a single mail message.
	Send(ctx context.Context, mail *Mail) error
}
