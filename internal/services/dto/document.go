package dto

import (
	"time"

	"lawfirm_backend/internal/models"
)

// UploadDocumentRequest - multipart-поля загрузки документа.
// Сам файл читается из части "file".
type UploadDocumentRequest struct {
	Name models.DocumentCategory `form:"name" validate:"required,doccategory"`
}

// UpdateDocumentRequest - правка метаданных документа
type UpdateDocumentRequest struct {
	Name *models.DocumentCategory `json:"name" validate:"omitempty,doccategory"`
}

// ListDocumentsQuery - фильтр списка документов
type ListDocumentsQuery struct {
	Category models.DocumentCategory `form:"category" validate:"omitempty,doccategory"`
	Page     int                     `form:"page" validate:"omitempty,min=1"`
	PageSize int                     `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// DocumentResponse - документ дела
type DocumentResponse struct {
	ID            string                  `json:"id"`
	CaseSummaryID string                  `json:"case_summary_id"`
	UserID        string                  `json:"user_id"`
	Name          models.DocumentCategory `json:"name"`
	File          string                  `json:"file"`
	UploadedAt    time.Time               `json:"uploaded_at"`
}

// NewDocumentResponse строит ответ из модели; fileURL подставляется
// сервисом из storage-бэкенда
func NewDocumentResponse(d *models.Document, fileURL string) DocumentResponse {
	if fileURL == "" {
		fileURL = d.FileURL
	}
	return DocumentResponse{
		ID:            d.ID,
		CaseSummaryID: d.CaseSummaryID,
		UserID:        d.UserID,
		Name:          d.Name,
		File:          fileURL,
		UploadedAt:    d.UploadedAt,
	}
}

// NewDocumentResponseList строит список ответов из моделей
func NewDocumentResponseList(documents []models.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(documents))
	for i := range documents {
		out = append(out, NewDocumentResponse(&documents[i], ""))
	}
	return out
}
