package email

import "sync"

// MockSender собирает письма в памяти. Используется в тестах
// и при пустой SMTP-конфигурации.
type MockSender struct {
	mu   sync.Mutex
	Sent []*Email
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) Send(email *Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, email)
	return nil
}

func (m *MockSender) SendWelcome(to, name string) error {
	return m.Send(&Email{To: []string{to}, Subject: "Welcome to our client portal"})
}

func (m *MockSender) SendAppointmentConfirmation(to, name, serviceNeeded, preferredDate, preferredTime string) error {
	return m.Send(&Email{To: []string{to}, Subject: "Appointment request received"})
}

func (m *MockSender) SendContactAcknowledgment(to, name string) error {
	return m.Send(&Email{To: []string{to}, Subject: "We received your message"})
}

// SentCount возвращает число отправленных писем
func (m *MockSender) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
