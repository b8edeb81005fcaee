package dto

import (
	"time"

	"lawfirm_backend/internal/models"
)

// CreateAppointmentRequest - заявка на консультацию.
// Доступна анониму, поэтому контактные данные обязательны.
type CreateAppointmentRequest struct {
	LawyerID      string `json:"lawyer_id" validate:"omitempty,uuid4"`
	Name          string `json:"name" validate:"required,max=150"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,max=20"`
	ServiceNeeded string `json:"service_needed" validate:"required,max=200"`
	PreferredDate string `json:"preferred_date" validate:"required,dateiso"`
	PreferredTime string `json:"preferred_time" validate:"required,timehhmm"`
	Description   string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateAppointmentRequest - частичное обновление записи
type UpdateAppointmentRequest struct {
	LawyerID      *string `json:"lawyer_id" validate:"omitempty,uuid4"`
	Name          *string `json:"name" validate:"omitempty,max=150"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	ServiceNeeded *string `json:"service_needed" validate:"omitempty,max=200"`
	PreferredDate *string `json:"preferred_date" validate:"omitempty,dateiso"`
	PreferredTime *string `json:"preferred_time" validate:"omitempty,timehhmm"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
}

// ListAppointmentsQuery - фильтр списка записей
type ListAppointmentsQuery struct {
	Lawyer   string `form:"lawyer" validate:"omitempty,uuid4"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// AppointmentResponse - запись на консультацию
type AppointmentResponse struct {
	ID            string    `json:"id"`
	LawyerID      *string   `json:"lawyer_id"`
	UserID        *string   `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceNeeded string    `json:"service_needed"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewAppointmentResponse строит ответ из модели
func NewAppointmentResponse(a *models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		LawyerID:      a.LawyerID,
		UserID:        a.UserID,
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		ServiceNeeded: a.ServiceNeeded,
		PreferredDate: a.PreferredDate.Format("2006-01-02"),
		PreferredTime: a.PreferredTime,
		Description:   a.Description,
		CreatedAt:     a.CreatedAt,
	}
}

// NewAppointmentResponseList строит список ответов из моделей
func NewAppointmentResponseList(appointments []models.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, NewAppointmentResponse(&appointments[i]))
	}
	return out
}
