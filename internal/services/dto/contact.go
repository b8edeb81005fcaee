package dto

import (
	"time"

	"lawfirm_backend/internal/models"
)

// CreateContactMessageRequest - сообщение с формы обратной связи
type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateContactMessageRequest - правка сообщения, все поля опциональны
type UpdateContactMessageRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=150"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Message *string `json:"message" validate:"omitempty,max=5000"`
}

// ContactMessageResponse - сообщение обратной связи
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactMessageResponse строит ответ из модели
func NewContactMessageResponse(m *models.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// NewContactMessageResponseList строит список ответов из моделей
func NewContactMessageResponseList(messages []models.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, NewContactMessageResponse(&messages[i]))
	}
	return out
}
