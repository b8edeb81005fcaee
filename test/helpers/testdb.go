package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"lawfirm_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword - пароль всех пользователей, заведенных хелперами
const TestPassword = "correct-horse-battery"

// CreateUser заводит пользователя напрямую в базе с захешированным паролем
func CreateUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	require.NoError(t, err, "Не удалось хешировать пароль")

	user := &models.User{
		Email:        email,
		Username:     email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать тестового пользователя")
	return user
}

// LoginUser логинит пользователя через API и возвращает access-токен
func LoginUser(t *testing.T, ts *TestServer, email string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/token", "", map[string]interface{}{
		"email":    email,
		"password": TestPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+body)

	var authResponse struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &authResponse))
	require.NotEmpty(t, authResponse.Access, "Access-токен не должен быть пустым")
	return authResponse.Access
}

// CreateAndLoginUser создает пользователя и сразу логинит его
func CreateAndLoginUser(t *testing.T, ts *TestServer, email string, role models.UserRole) (string, *models.User) {
	t.Helper()
	user := CreateUser(t, ts.DB, email, role)
	token := LoginUser(t, ts, email)
	return token, user
}

// CreateCase заводит дело напрямую в базе
func CreateCase(t *testing.T, db *gorm.DB, number string, clientID string, lawyerID *string) *models.CaseSummary {
	t.Helper()

	caseSummary := &models.CaseSummary{
		CaseNumber: number,
		CaseType:   "Personal Injury",
		FiledDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     models.CaseStatusActive,
		UserID:     clientID,
		LawyerID:   lawyerID,
	}
	require.NoError(t, db.Create(caseSummary).Error, "Не удалось создать тестовое дело")
	return caseSummary
}

// UniqueEmail генерирует email, не пересекающийся с другими тестами
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}
