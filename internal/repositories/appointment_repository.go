package repositories

import (
	"errors"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentFilter - критерии выборки записей на консультацию
type AppointmentFilter struct {
	LawyerID string
	Limit    int
	Offset   int
}

type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	// FindByID ищет запись внутри видимой области принципала.
	// Строка вне области неотличима от несуществующей.
	FindByID(id string, scope auth.Scope) (*models.Appointment, error)
	FindAll(filter AppointmentFilter, scope auth.Scope) ([]models.Appointment, error)
	Count(filter AppointmentFilter, scope auth.Scope) (int64, error)
	Update(appointment *models.Appointment) error
	Delete(id string) error
}

type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

func (r *AppointmentRepositoryImpl) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *AppointmentRepositoryImpl) FindByID(id string, scope auth.Scope) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Scopes(scope).Preload("Lawyer").
		First(&appointment, "appointments.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepositoryImpl) FindAll(filter AppointmentFilter, scope auth.Scope) ([]models.Appointment, error) {
	var appointments []models.Appointment
	query := r.db.Scopes(scope).Model(&models.Appointment{})

	if filter.LawyerID != "" {
		query = query.Where("lawyer_id = ?", filter.LawyerID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Preload("Lawyer").Order("created_at DESC").Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepositoryImpl) Count(filter AppointmentFilter, scope auth.Scope) (int64, error) {
	var count int64
	query := r.db.Scopes(scope).Model(&models.Appointment{})
	if filter.LawyerID != "" {
		query = query.Where("lawyer_id = ?", filter.LawyerID)
	}
	err := query.Count(&count).Error
	return count, err
}

// Update пишет по id через пустую модель, чтобы загруженная связь
// Lawyer не перезаписала снятый lawyer_id
func (r *AppointmentRepositoryImpl) Update(appointment *models.Appointment) error {
	result := r.db.Model(&models.Appointment{}).
		Where("id = ?", appointment.ID).
		Updates(map[string]interface{}{
			"lawyer_id":      appointment.LawyerID,
			"user_id":        appointment.UserID,
			"name":           appointment.Name,
			"email":          appointment.Email,
			"phone":          appointment.Phone,
			"service_needed": appointment.ServiceNeeded,
			"preferred_date": appointment.PreferredDate,
			"preferred_time": appointment.PreferredTime,
			"description":    appointment.Description,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Appointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
