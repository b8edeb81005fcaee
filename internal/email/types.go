package email

import "fmt"

// Email представляет структуру email сообщения
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Config конфигурация email сервиса
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	UseSSL    bool
}

// Validate проверяет минимально необходимые поля конфигурации
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Sender интерфейс для отправки email
type Sender interface {
	Send(email *Email) error
	SendWelcome(to, name string) error
	SendAppointmentConfirmation(to, name, serviceNeeded, preferredDate, preferredTime string) error
	SendContactAcknowledgment(to, name string) error
}
