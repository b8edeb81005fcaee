package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender реализация Sender для SMTP
type SMTPSender struct {
	config Config
	auth   smtp.Auth
}

// NewSMTPSender создает новый SMTP отправитель
func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	sender := &SMTPSender{
		config: config,
	}

	if config.Username != "" && config.Password != "" {
		sender.auth = smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
	}

	return sender, nil
}

// Send отправляет email
func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	message := s.buildMessage(email)
	return s.sendSMTP(email.To, message)
}

// SendWelcome отправляет приветственное письмо после регистрации
func (s *SMTPSender) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Welcome! Your account has been created.\n"+
			"You can now schedule appointments and track your cases online.\n\n"+
			"Best regards,\n%s",
		name, s.config.FromName,
	)
	return s.Send(&Email{
		To:      []string{to},
		Subject: "Welcome to our client portal",
		Body:    body,
	})
}

// SendAppointmentConfirmation подтверждает получение заявки на консультацию
func (s *SMTPSender) SendAppointmentConfirmation(to, name, serviceNeeded, preferredDate, preferredTime string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"We have received your appointment request.\n\n"+
			"Service: %s\nPreferred date: %s\nPreferred time: %s\n\n"+
			"Our office will contact you shortly to confirm the appointment.\n\n"+
			"Best regards,\n%s",
		name, serviceNeeded, preferredDate, preferredTime, s.config.FromName,
	)
	return s.Send(&Email{
		To:      []string{to},
		Subject: "Appointment request received",
		Body:    body,
	})
}

// SendContactAcknowledgment подтверждает получение сообщения с формы обратной связи
func (s *SMTPSender) SendContactAcknowledgment(to, name string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for contacting us. We have received your message\n"+
			"and will get back to you within one business day.\n\n"+
			"Best regards,\n%s",
		name, s.config.FromName,
	)
	return s.Send(&Email{
		To:      []string{to},
		Subject: "We received your message",
		Body:    body,
	})
}

// buildMessage строит сообщение для SMTP
func (s *SMTPSender) buildMessage(email *Email) []byte {
	headers := []string{
		fmt.Sprintf("From: %s <%s>", s.config.FromName, s.config.FromEmail),
		fmt.Sprintf("To: %s", strings.Join(email.To, ", ")),
		fmt.Sprintf("Subject: %s", email.Subject),
		"MIME-version: 1.0;",
		"Content-Type: text/plain; charset=UTF-8",
		"",
	}

	message := strings.Join(headers, "\r\n") + "\r\n" + email.Body
	return []byte(message)
}

// sendSMTP отправляет сообщение через SMTP
func (s *SMTPSender) sendSMTP(to []string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	var client *smtp.Client
	var err error

	if s.config.UseSSL {
		tlsConfig := &tls.Config{
			ServerName: s.config.SMTPHost,
		}
		conn, dialErr := tls.Dial("tcp", addr, tlsConfig)
		if dialErr != nil {
			return fmt.Errorf("failed to connect via SSL: %w", dialErr)
		}
		client, err = smtp.NewClient(conn, s.config.SMTPHost)
		if err != nil {
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
	} else {
		client, err = smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
	}
	defer client.Close()

	if s.config.UseTLS && !s.config.UseSSL {
		if err = client.StartTLS(&tls.Config{ServerName: s.config.SMTPHost}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if s.auth != nil {
		if err = client.Auth(s.auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return client.Quit()
}
