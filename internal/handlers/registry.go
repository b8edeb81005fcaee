package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	HealthHandler      *HealthHandler
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	AppointmentHandler *AppointmentHandler
	ContactHandler     *ContactHandler
	CaseHandler        *CaseHandler
	DocumentHandler    *DocumentHandler
	FileHandler        *FileHandler
}
