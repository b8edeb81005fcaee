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

// TestCaseUpdate_LawyerWritesClientReads - хронология дела
func TestCaseUpdate_LawyerWritesClientReads(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	lawyerToken, lawyer := helpers.CreateAndLoginUser(t, ts, "lawyer@firm.com", models.UserRoleLawyer)
	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)
	foreignToken, _ := helpers.CreateAndLoginUser(t, ts, "stranger@test.com", models.UserRoleClient)

	caseSummary := helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, &lawyer.ID)

	// Юрист пишет в хронологию
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/case-summaries/"+caseSummary.ID+"/updates", lawyerToken, map[string]interface{}{
		"title":   "Hearing scheduled",
		"details": "Hearing set for 2025-05-02 at the district court",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// Клиент дела читает хронологию
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries/"+caseSummary.ID+"/updates", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Hearing scheduled")

	// Но писать в нее не может
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/case-summaries/"+caseSummary.ID+"/updates", clientToken, map[string]interface{}{
		"title":   "My note",
		"details": "Client-written note",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Постороннему дело не видно
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries/"+caseSummary.ID+"/updates", foreignToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Правка и удаление записи назначенным юристом
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/case-updates/"+created.ID, lawyerToken, map[string]interface{}{
		"details": "Hearing moved to 2025-05-09",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "2025-05-09")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/case-updates/"+created.ID, lawyerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries/"+caseSummary.ID+"/updates", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "[]", body)
}

// TestCaseUpdate_ClientCannotEdit - запись хронологии защищена от клиента
func TestCaseUpdate_ClientCannotEdit(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)
	caseSummary := helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, nil)

	update := &models.CaseUpdate{
		CaseSummaryID: caseSummary.ID,
		Title:         "Discovery",
		Details:       "Discovery phase started",
	}
	require.NoError(t, ts.DB.Create(update).Error)

	// Запись видна клиенту, поэтому отказ - это 403
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/case-updates/"+update.ID, clientToken, map[string]interface{}{
		"title": "Edited by client",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/case-updates/"+update.ID, clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
