package services

import (
	"fmt"
	"testing"
	"time"

	"lawfirm_backend/database"
	"lawfirm_backend/internal/config"
	"lawfirm_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB поднимает изолированную in-memory базу для теста
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	return db
}

// setTestConfig задает минимальную конфигурацию без чтения файлов
func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 5
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"application/pdf", "image/png"}
	config.AppConfig = cfg
}

func mustCreateUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Username:     email,
		PasswordHash: "hash",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustCreateCase(t *testing.T, db *gorm.DB, number string, clientID string, lawyerID *string) *models.CaseSummary {
	t.Helper()
	caseSummary := &models.CaseSummary{
		CaseNumber: number,
		CaseType:   "Personal Injury",
		FiledDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     models.CaseStatusActive,
		UserID:     clientID,
		LawyerID:   lawyerID,
	}
	require.NoError(t, db.Create(caseSummary).Error)
	return caseSummary
}

func strPtr(s string) *string { return &s }
