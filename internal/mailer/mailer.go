// Package mailer renders and sends the waitlist notification emails over
// SMTP. Sends are best-effort: without credentials they degrade to a logged
// no-op, and failures are logged and swallowed, never retried.
package mailer

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"ainexus/server/internal/config"
	"ainexus/server/internal/logger"
)

// Sender delivers a composed message. Satisfied by *gomail.Dialer; tests
// substitute a fake.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer renders and transmits waitlist notification emails.
type Mailer struct {
	cfg    config.SMTPConfig
	sender Sender
}

// New creates a mailer from SMTP configuration.
func New(cfg config.SMTPConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	if m.Enabled() {
		m.sender = gomail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

// NewWithSender creates a mailer with an explicit sender, for testing.
func NewWithSender(cfg config.SMTPConfig, sender Sender) *Mailer {
	return &Mailer{cfg: cfg, sender: sender}
}

// Enabled reports whether SMTP credentials are configured. When false, sends
// log a notice instead of transmitting.
func (m *Mailer) Enabled() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// welcomeData feeds the welcome template.
type welcomeData struct {
	Email     string
	FirstName string
	Position  int64
}

// invitationData feeds the invitation template.
type invitationData struct {
	FirstName string
}

// SendWelcome sends the welcome email to a new waitlist member. Errors are
// logged, never returned to the request path that scheduled the send.
func (m *Mailer) SendWelcome(email, firstName string, position int64) {
	subject := fmt.Sprintf("Welcome to AI Nexus, %s! You're #%d in line", firstName, position)
	body, err := renderWelcome(welcomeData{Email: email, FirstName: firstName, Position: position})
	if err != nil {
		logger.Error("render welcome email failed", zap.String("email", email), zap.Error(err))
		return
	}
	m.send(email, subject, body)
}

// SendInvitation sends the early-access invitation email.
func (m *Mailer) SendInvitation(email, firstName string) {
	subject := fmt.Sprintf("You're invited to AI Nexus, %s!", firstName)
	body, err := renderInvitation(invitationData{FirstName: firstName})
	if err != nil {
		logger.Error("render invitation email failed", zap.String("email", email), zap.Error(err))
		return
	}
	m.send(email, subject, body)
}

// send transmits one HTML message, degrading to a logged no-op when email is
// not configured.
func (m *Mailer) send(to, subject, htmlBody string) {
	if !m.Enabled() {
		logger.Info("email not configured, skipping send",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.sender.DialAndSend(msg); err != nil {
		logger.Error("send email failed", zap.String("to", to), zap.Error(err))
		return
	}

	logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
}

func renderWelcome(data welcomeData) (string, error) {
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderInvitation(data invitationData) (string, error) {
	var buf bytes.Buffer
	if err := invitationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
