package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWaitlistConfirmation(toEmail string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	enabled     bool
}

// NewEmailService builds the waitlist mailer. With no SMTP host configured it
// degrades to a no-op so local setups keep working.
func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		enabled:     host != "",
	}
}

func (s *emailService) SendWaitlistConfirmation(toEmail string) error {
	if !s.enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "You're on the ResumeAI Pro waitlist!")

	body := `
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You're on the list!</h2>
			<p>Thanks for your interest in ResumeAI Pro.</p>
			<p>We'll email you as soon as Pro is available, and you'll get <strong>50% off</strong> your first month.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send waitlist confirmation to %s: %w", toEmail, err)
	}

	return nil
}
