// Package mail implements transactional mail delivery over SMTP.
package mail

import (
	"context"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"vms/config"
	"vms/internal/domain/service"
)

const defaultSMTPPort = 587

// smtpSender delivers mail through an SMTP relay using go-mail.
type smtpSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender is the constructor for smtpSender.
// It returns the implementation as a service.MailSender interface.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	port := cfg.SMTP.Port
	if port == 0 {
		port = defaultSMTPPort
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
	}
	if cfg.SMTP.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize smtp client")
	}

	return &smtpSender{
		client: client,
		from:   cfg.SMTP.From,
	}, nil
}

// Send delivers a single mail message.
func (s *smtpSender) Send(ctx context.Context, mail *service.Mail) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return errors.Wrap(err, "failed to set mail sender")
	}
	if err := msg.To(mail.To); err != nil {
		return errors.Wrap(err, "failed to set mail recipient")
	}

	msg.Subject(mail.Subject)
	if mail.HTML {
		msg.SetBodyString(gomail.TypeTextHTML, mail.Body)
	} else {
		msg.SetBodyString(gomail.TypeTextPlain, mail.Body)
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
