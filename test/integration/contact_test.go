package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"lawfirm_backend/internal/models"
	"lawfirm_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContactMessage_PublicCreate - форма обратной связи доступна без логина
func TestContactMessage_PublicCreate(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact-messages", "", map[string]interface{}{
		"name":    "John Question",
		"email":   "john@example.com",
		"phone":   "+7 700 111 2233",
		"message": "Do you handle labor disputes?",
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, "labor disputes")
}

// TestContactMessage_MissingFields - обязательные поля формы
func TestContactMessage_MissingFields(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact-messages", "", map[string]interface{}{
		"email": "john@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "name")
	assert.Contains(t, body, "message")
}

// TestContactMessage_AdminUpdates - сообщение правит только админ
func TestContactMessage_AdminUpdates(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@firm.com", models.UserRoleAdmin)
	lawyerToken, _ := helpers.CreateAndLoginUser(t, ts, "lawyer@firm.com", models.UserRoleLawyer)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact-messages", "", map[string]interface{}{
		"name":    "John Question",
		"email":   "john@example.com",
		"message": "Do you handle labor disputes?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// Юристу правка недоступна
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/contact-messages/"+created.ID, lawyerToken, map[string]interface{}{
		"message": "edited by lawyer",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Админ меняет текст, остальные поля не трогаются
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/contact-messages/"+created.ID, adminToken, map[string]interface{}{
		"message": "Labor dispute, urgent deadline on 2025-05-01",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, "urgent deadline")
	assert.Contains(t, body, "john@example.com")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/contact-messages/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "urgent deadline")
}

// TestContactMessage_AdminOnlyInbox - входящие читает только админ
func TestContactMessage_AdminOnlyInbox(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@firm.com", models.UserRoleAdmin)
	lawyerToken, _ := helpers.CreateAndLoginUser(t, ts, "lawyer@firm.com", models.UserRoleLawyer)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/contact-messages", "", map[string]interface{}{
		"name":    "John Question",
		"email":   "john@example.com",
		"message": "Do you handle labor disputes?",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// Юристу входящие недоступны
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/contact-messages", lawyerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Без токена тоже
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/contact-messages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Админ читает и удаляет
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/contact-messages", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "john@example.com")

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/contact-messages/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/contact-messages/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/contact-messages/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
