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

// TestCase_AdminCreates - заведение дела доступно только админу
func TestCase_AdminCreates(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@firm.com", models.UserRoleAdmin)
	lawyerToken, lawyer := helpers.CreateAndLoginUser(t, ts, "lawyer@firm.com", models.UserRoleLawyer)
	_, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)

	caseBody := map[string]interface{}{
		"case_number": "CV-2025-100",
		"case_type":   "Family Law",
		"filed_date":  "2025-03-10",
		"user_id":     client.ID,
		"lawyer_id":   lawyer.ID,
	}

	// Юрист дела не заводит
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/case-summaries", lawyerToken, caseBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/case-summaries", adminToken, caseBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)
	assert.Contains(t, body, "CV-2025-100")
	// Стороны дела раскрыты в ответе
	assert.Contains(t, body, "client@test.com")
	assert.Contains(t, body, "lawyer@firm.com")

	// Номер дела уникален
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/case-summaries", adminToken, caseBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "Case number already exists")
}

// TestCase_LawyerSeesAssignedOnly - область видимости списка дел
func TestCase_LawyerSeesAssignedOnly(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	tokenA, lawyerA := helpers.CreateAndLoginUser(t, ts, "a@firm.com", models.UserRoleLawyer)
	_, lawyerB := helpers.CreateAndLoginUser(t, ts, "b@firm.com", models.UserRoleLawyer)
	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)

	helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, &lawyerA.ID)
	foreign := helpers.CreateCase(t, ts.DB, "CV-2025-002", client.ID, &lawyerB.ID)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries", tokenA, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var list []struct {
		CaseNumber string `json:"case_number"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "CV-2025-001", list[0].CaseNumber)

	// Чужое дело неотличимо от несуществующего
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries/"+foreign.ID, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Клиент дела как агрегаты не видит
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "[]", body)
}

// TestCase_LawyerUpdatesButNotReassigns - права назначенного юриста
func TestCase_LawyerUpdatesButNotReassigns(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@firm.com", models.UserRoleAdmin)
	tokenA, lawyerA := helpers.CreateAndLoginUser(t, ts, "a@firm.com", models.UserRoleLawyer)
	_, lawyerB := helpers.CreateAndLoginUser(t, ts, "b@firm.com", models.UserRoleLawyer)
	_, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)

	caseSummary := helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, &lawyerA.ID)

	// Назначенный юрист закрывает дело
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/case-summaries/"+caseSummary.ID, tokenA, map[string]interface{}{
		"status": "closed",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "closed")

	// Но переназначить юриста не может
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/case-summaries/"+caseSummary.ID, tokenA, map[string]interface{}{
		"lawyer_id": lawyerB.ID,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Админ переназначает
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/case-summaries/"+caseSummary.ID, adminToken, map[string]interface{}{
		"lawyer_id": lawyerB.ID,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "b@firm.com")

	// Прежний юрист потерял дело из виду
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries/"+caseSummary.ID, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestCase_DeleteCascades - удаление дела убирает хронологию и документы
func TestCase_DeleteCascades(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@firm.com", models.UserRoleAdmin)
	_, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)

	caseSummary := helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, nil)
	require.NoError(t, ts.DB.Create(&models.CaseUpdate{
		CaseSummaryID: caseSummary.ID,
		Title:         "Motion filed",
		Details:       "Filed a motion to dismiss",
	}).Error)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/case-summaries/"+caseSummary.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var updateCount int64
	ts.DB.Model(&models.CaseUpdate{}).Where("case_summary_id = ?", caseSummary.ID).Count(&updateCount)
	assert.Zero(t, updateCount)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries/"+caseSummary.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
