package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Ayushman2005/SocietyPro/internal/domain/models"
	"github.com/Ayushman2005/SocietyPro/internal/infrastructure/config"
	"github.com/Ayushman2005/SocietyPro/pkg/logger"
)

// InterfaceMailService defines the outbound mail interface
type InterfaceMailService interface {
	SendOTP(email, otp string) error
	SendContactNotification(inquiry *models.ContactInquiry) error
}

// MailService submits plaintext mail over SMTP with STARTTLS. Without SMTP
// credentials it runs in simulation mode and only logs what it would send,
// which is how OTP delivery works in local development.
type MailService struct {
	Config *config.Config
	dialer *gomail.Dialer
}

// NewMailService creates a new mail service
func NewMailService(cfg *config.Config) InterfaceMailService {
	s := &MailService{Config: cfg}
	if cfg.MailConfigured() {
		// gomail negotiates STARTTLS automatically on port 587
		s.dialer = gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword)
	}
	return s
}

// send builds and submits one message
func (s *MailService) send(to, subject, body string) error {
	if s.dialer == nil {
		logger.Info("[EMAIL SIMULATION] To: %s | Subject: %s | Body: %s", to, subject, body)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.Config.MailSender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}

// SendOTP delivers a password reset code
func (s *MailService) SendOTP(email, otp string) error {
	body := fmt.Sprintf("Your password reset OTP is %s. It expires in 10 minutes.", otp)
	return s.send(email, "Password Reset", body)
}

// SendContactNotification forwards a contact-form submission to the
// configured inbox
func (s *MailService) SendContactNotification(inquiry *models.ContactInquiry) error {
	subject := fmt.Sprintf("New Inquiry from %s", inquiry.Name)
	body := fmt.Sprintf(
		"New Inquiry Received!\n---------------------\nName: %s\nEmail: %s\n\nMessage:\n%s\n",
		inquiry.Name, inquiry.Email, inquiry.Message,
	)
	// Notifications go to the sender's own inbox
	return s.send(s.Config.MailSender, subject, body)
}
