package mail

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Sender hands one composed message to a transport.
type Sender interface {
	Send(subject, body, to string) error
}

func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *SMTPSender) Send(subject, body, to string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail via SMTP: %w", err)
	}

	return nil
}

// ConsoleSender stands in when SMTP is not configured. Messages go to the
// log instead of being dropped.
type ConsoleSender struct{}

func (ConsoleSender) Send(subject, body, to string) error {
	log.Printf("📧 [EMAIL-FALLBACK] To: %s\nSubject: %s\n\n%s", to, subject, body)
	return nil
}
