package database

import (
	"lawfirm_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate выполняет миграцию всех моделей
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.CaseSummary{},
		&models.CaseUpdate{},
		&models.Document{},
	)
}
