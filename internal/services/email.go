package services

import (
	"crypto/tls"
	"errors"

	"github.com/Manish0124/portfolio/internal/config"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Email struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

type EmailService struct {
	from   string
	sender Sender
}

func NewEmailService(cfg *config.Config) *EmailService {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	d.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost}
	return NewEmailServiceWithSender(cfg.FromEmail, d)
}

func NewEmailServiceWithSender(from string, sender Sender) *EmailService {
	return &EmailService{from: from, sender: sender}
}

func (s *EmailService) SendEmail(email Email) error {
	if email.To == "" {
		return errors.New("email recipient is empty")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.To)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	return s.sender.DialAndSend(m)
}
