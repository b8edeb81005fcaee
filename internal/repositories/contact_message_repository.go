package repositories

import (
	"errors"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("contact message not found")

type ContactMessageRepository interface {
	Create(message *models.ContactMessage) error
	FindByID(id string, scope auth.Scope) (*models.ContactMessage, error)
	FindAll(limit, offset int, scope auth.Scope) ([]models.ContactMessage, error)
	Count(scope auth.Scope) (int64, error)
	Update(message *models.ContactMessage) error
	Delete(id string) error
}

type ContactMessageRepositoryImpl struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &ContactMessageRepositoryImpl{db: db}
}

func (r *ContactMessageRepositoryImpl) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *ContactMessageRepositoryImpl) FindByID(id string, scope auth.Scope) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.Scopes(scope).First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *ContactMessageRepositoryImpl) FindAll(limit, offset int, scope auth.Scope) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	query := r.db.Scopes(scope).Model(&models.ContactMessage{})
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *ContactMessageRepositoryImpl) Count(scope auth.Scope) (int64, error) {
	var count int64
	err := r.db.Scopes(scope).Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}

func (r *ContactMessageRepositoryImpl) Update(message *models.ContactMessage) error {
	result := r.db.Model(&models.ContactMessage{}).
		Where("id = ?", message.ID).
		Updates(map[string]interface{}{
			"name":    message.Name,
			"email":   message.Email,
			"phone":   message.Phone,
			"message": message.Message,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *ContactMessageRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.ContactMessage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
