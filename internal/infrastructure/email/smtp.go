// Package email implements the outbound notification mailer on top of
// SMTP. Messages are rendered from a yaml template catalog keyed by
// template name.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "kontor/internal/shared/config"
	"kontor/internal/shared/logger"
)

type SMTPMailer struct {
	dialer      *gomail.Dialer
	catalog     *TemplateCatalog
	fromAddress string
	fromName    string
	logger      logger.Interface
}

// NewSMTPMailer builds the mailer from the email config. Returns nil
// when email is disabled; the notification handler treats a nil mailer
// as "in-app notifications only".
func NewSMTPMailer(cfg *sharedConfig.EmailConfig, log logger.Interface) (*SMTPMailer, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	catalog, err := LoadTemplates(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}

	return &SMTPMailer{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		catalog:     catalog,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		logger:      log.Named("mailer"),
	}, nil
}

// Send renders the named template and delivers the message. Each call
// opens its own SMTP connection; notification volume is low enough
// that connection reuse is not worth the bookkeeping.
func (m *SMTPMailer) Send(to, template string, data map[string]any) error {
	subject, body, err := m.catalog.Render(template, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromAddress, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Debugw("email sent", "to", to, "template", template)
	return nil
}
