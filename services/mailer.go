package services

import (
	"fmt"
	"net/smtp"
	"os"
)

// Mailer sends a single HTML notification.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends through the SMTP relay configured in the environment
// (EMAIL_HOST, EMAIL_PORT, EMAIL_USER, EMAIL_PASS).
type SMTPMailer struct{}

func (SMTPMailer) Send(to, subject, htmlBody string) error {
	host := os.Getenv("EMAIL_HOST")
	port := os.Getenv("EMAIL_PORT")
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")

	if host == "" {
		return fmt.Errorf("EMAIL_HOST not set")
	}
	if port == "" {
		port = "587"
	}

	msg := "From: " + user + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}

	if err := smtp.SendMail(host+":"+port, auth, user, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
