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

// TestLawyers_PublicList - витрина юристов доступна без токена
func TestLawyers_PublicList(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	helpers.CreateUser(t, ts.DB, "lawyer1@firm.com", models.UserRoleLawyer)
	helpers.CreateUser(t, ts.DB, "lawyer2@firm.com", models.UserRoleLawyer)
	helpers.CreateUser(t, ts.DB, "client@test.com", models.UserRoleClient)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/lawyers", "", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var list []struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 2)
	for _, lawyer := range list {
		assert.Equal(t, "lawyer", lawyer.Role)
	}
}

// TestCurrentUser_RequiresAuth - профиль закрыт токеном
func TestCurrentUser_RequiresAuth(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/user", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestCurrentUser_UpdateProfile - частичное обновление профиля
func TestCurrentUser_UpdateProfile(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/user", token, map[string]interface{}{
		"first_name":    "Updated",
		"address":       "221B Baker Street",
		"date_of_birth": "1990-06-15",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, "Updated")
	assert.Contains(t, body, "221B Baker Street")
	assert.Contains(t, body, "1990-06-15")

	// Непереданные поля не затираются
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/user", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "client@test.com")
	assert.Contains(t, body, "Updated")
}

// TestAdminCreateUser - только админ заводит юристов
func TestAdminCreateUser(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@firm.com", models.UserRoleAdmin)
	lawyerToken, _ := helpers.CreateAndLoginUser(t, ts, "lawyer@firm.com", models.UserRoleLawyer)

	newLawyer := map[string]interface{}{
		"email":      "hire@firm.com",
		"password":   "correct-horse-battery",
		"role":       "lawyer",
		"first_name": "New",
		"last_name":  "Hire",
	}

	// Юристу эндпоинт недоступен
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/users", lawyerToken, newLawyer)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/users", adminToken, newLawyer)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, "hire@firm.com")

	// Созданный юрист сразу логинится
	loginToken := helpers.LoginUser(t, ts, "hire@firm.com")
	assert.NotEmpty(t, loginToken)

	// Роль проверяется по закрытому перечню
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/users", adminToken, map[string]interface{}{
		"email":    "weird@firm.com",
		"password": "correct-horse-battery",
		"role":     "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestListUsers_AdminOnly - список пользователей с фильтром по роли
func TestListUsers_AdminOnly(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@firm.com", models.UserRoleAdmin)
	clientToken, _ := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)
	helpers.CreateUser(t, ts.DB, "lawyer@firm.com", models.UserRoleLawyer)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/users?role=client", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var list []struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "client@test.com", list[0].Email)
}
