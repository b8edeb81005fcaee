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

var pdfContent = []byte("%PDF-1.4 fake test document")

// TestDocument_UploadAndDownload - загрузка документа и скачивание файла
func TestDocument_UploadAndDownload(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)
	caseSummary := helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, nil)

	// Клиент загружает документ в свое дело
	res, body := ts.SendMultipart(t,
		"/api/v1/case-summaries/"+caseSummary.ID+"/documents", clientToken,
		map[string]string{"name": "Medical Records"},
		"file", "records.pdf", "application/pdf", pdfContent,
	)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		File string `json:"file"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "Medical Records", created.Name)
	require.NotEmpty(t, created.File)

	// Файл скачивается по ссылке из ответа
	res, fileBody := ts.SendRequest(t, http.MethodGet, created.File, clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, string(pdfContent), fileBody)
}

// TestDocument_UploadRejections - категория и тип файла проверяются
func TestDocument_UploadRejections(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)
	caseSummary := helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, nil)

	// Категория вне перечня
	res, body := ts.SendMultipart(t,
		"/api/v1/case-summaries/"+caseSummary.ID+"/documents", clientToken,
		map[string]string{"name": "Grocery List"},
		"file", "records.pdf", "application/pdf", pdfContent,
	)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Ответ: "+body)

	// Неразрешенный тип файла
	res, body = ts.SendMultipart(t,
		"/api/v1/case-summaries/"+caseSummary.ID+"/documents", clientToken,
		map[string]string{"name": "Medical Records"},
		"file", "virus.exe", "application/x-msdownload", []byte("MZ"),
	)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Unsupported file type")
}

// TestDocument_VisibilityAcrossParties - стороны дела видят документы друг друга
func TestDocument_VisibilityAcrossParties(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	lawyerToken, lawyer := helpers.CreateAndLoginUser(t, ts, "lawyer@firm.com", models.UserRoleLawyer)
	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)
	outsiderToken, _ := helpers.CreateAndLoginUser(t, ts, "outsider@firm.com", models.UserRoleLawyer)

	caseSummary := helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, &lawyer.ID)

	res, body := ts.SendMultipart(t,
		"/api/v1/case-summaries/"+caseSummary.ID+"/documents", lawyerToken,
		map[string]string{"name": "Signed Affidavit"},
		"file", "affidavit.pdf", "application/pdf", pdfContent,
	)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+body)

	var uploaded struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &uploaded))

	// Клиент видит документы своего дела
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries/"+caseSummary.ID+"/documents", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Signed Affidavit")

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/documents/"+uploaded.ID, clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Посторонний юрист не видит ни дело, ни документ
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/case-summaries/"+caseSummary.ID+"/documents", outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/documents/"+uploaded.ID, outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestDocument_UpdateAndDelete - права на метаданные и удаление различаются
func TestDocument_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	lawyerToken, lawyer := helpers.CreateAndLoginUser(t, ts, "lawyer@firm.com", models.UserRoleLawyer)
	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@test.com", models.UserRoleClient)

	caseSummary := helpers.CreateCase(t, ts.DB, "CV-2025-001", client.ID, &lawyer.ID)

	res, body := ts.SendMultipart(t,
		"/api/v1/case-summaries/"+caseSummary.ID+"/documents", lawyerToken,
		map[string]string{"name": "Photo Evidence"},
		"file", "photo.png", "image/png", []byte("PNG-bytes"),
	)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var uploaded struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &uploaded))

	// Метаданные правит только загрузивший (или админ)
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/documents/"+uploaded.ID, clientToken, map[string]interface{}{
		"name": "Insurance Information",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/documents/"+uploaded.ID, lawyerToken, map[string]interface{}{
		"name": "Insurance Information",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Insurance Information")

	// Удалить чужую загрузку в своем деле клиент может
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/documents/"+uploaded.ID, clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/documents/"+uploaded.ID, lawyerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
