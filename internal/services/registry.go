package services

import (
	"lawfirm_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	AppointmentService AppointmentService
	ContactService     ContactService
	CaseService        CaseService
	CaseUpdateService  CaseUpdateService
	DocumentService    DocumentService
	EmailSender        email.Sender
}
