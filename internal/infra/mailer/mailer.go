// Package mailer sends transactional email over SMTP using gomail.
package mailer

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings for outgoing mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// ConfigFromEnv builds a Config from SMTP_HOST, SMTP_PORT, SMTP_USERNAME,
// SMTP_PASSWORD and EMAIL_FROM.
func ConfigFromEnv() Config {
	port := 587
	if val := os.Getenv("SMTP_PORT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			port = parsed
		}
	}
	return Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("EMAIL_FROM"),
	}
}

// Configured reports whether enough settings are present to send mail.
func (c Config) Configured() bool {
	return c.Host != "" && c.From != ""
}

// SMTPMailer implements the subscription welcome mail over SMTP.
type SMTPMailer struct {
	config Config
	dialer *gomail.Dialer
}

// New creates an SMTPMailer from the given configuration.
func New(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendWelcome sends the newsletter welcome email to a new subscriber.
// gomail has no context support, so cancellation is only checked before
// dialing.
func (m *SMTPMailer) SendWelcome(ctx context.Context, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome to the GamePulse newsletter")
	msg.SetBody("text/html", welcomeBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("SendWelcome: %w", err)
	}
	return nil
}

const welcomeBody = `<h1>Welcome aboard!</h1>
<p>You are now subscribed to the GamePulse newsletter. Expect the biggest
gaming stories, reviews and industry news in your inbox.</p>
<p>If this wasn't you, simply ignore this email.</p>`
