package dto

import (
	"time"

	"lawfirm_backend/internal/models"
)

// CreateCaseRequest - создание дела (только админ)
type CreateCaseRequest struct {
	CaseNumber string            `json:"case_number" validate:"required,max=50"`
	CaseType   string            `json:"case_type" validate:"required,max=100"`
	FiledDate  string            `json:"filed_date" validate:"required,dateiso"`
	Status     models.CaseStatus `json:"status" validate:"omitempty,casestatus"`
	UserID     string            `json:"user_id" validate:"required,uuid4"`
	LawyerID   string            `json:"lawyer_id" validate:"omitempty,uuid4"`
}

// UpdateCaseRequest - частичное обновление дела
type UpdateCaseRequest struct {
	CaseNumber *string            `json:"case_number" validate:"omitempty,max=50"`
	CaseType   *string            `json:"case_type" validate:"omitempty,max=100"`
	FiledDate  *string            `json:"filed_date" validate:"omitempty,dateiso"`
	Status     *models.CaseStatus `json:"status" validate:"omitempty,casestatus"`
	LawyerID   *string            `json:"lawyer_id" validate:"omitempty,uuid4"`
}

// ListCasesQuery - фильтр списка дел
type ListCasesQuery struct {
	Status   models.CaseStatus `form:"status" validate:"omitempty,casestatus"`
	Page     int               `form:"page" validate:"omitempty,min=1"`
	PageSize int               `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// CaseResponse - дело со связанными сторонами
type CaseResponse struct {
	ID         string               `json:"id"`
	CaseNumber string               `json:"case_number"`
	CaseType   string               `json:"case_type"`
	FiledDate  string               `json:"filed_date"`
	Status     models.CaseStatus    `json:"status"`
	Client     *UserDTO             `json:"client,omitempty"`
	Lawyer     *UserDTO             `json:"lawyer,omitempty"`
	Updates    []CaseUpdateResponse `json:"updates,omitempty"`
	Documents  []DocumentResponse   `json:"documents,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

// NewCaseResponse строит ответ из модели вместе с подгруженными связями
func NewCaseResponse(c *models.CaseSummary) CaseResponse {
	resp := CaseResponse{
		ID:         c.ID,
		CaseNumber: c.CaseNumber,
		CaseType:   c.CaseType,
		FiledDate:  c.FiledDate.Format("2006-01-02"),
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
	}
	if c.User != nil {
		u := NewUserDTO(c.User)
		resp.Client = &u
	}
	if c.Lawyer != nil {
		l := NewUserDTO(c.Lawyer)
		resp.Lawyer = &l
	}
	for i := range c.Updates {
		resp.Updates = append(resp.Updates, NewCaseUpdateResponse(&c.Updates[i]))
	}
	for i := range c.Documents {
		resp.Documents = append(resp.Documents, NewDocumentResponse(&c.Documents[i], ""))
	}
	return resp
}

// NewCaseResponseList строит список ответов из моделей
func NewCaseResponseList(cases []models.CaseSummary) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for i := range cases {
		out = append(out, NewCaseResponse(&cases[i]))
	}
	return out
}

// CreateCaseUpdateRequest - запись в хронологию дела
type CreateCaseUpdateRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Details string `json:"details" validate:"required,max=5000"`
}

// UpdateCaseUpdateRequest - правка записи хронологии
type UpdateCaseUpdateRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=200"`
	Details *string `json:"details" validate:"omitempty,max=5000"`
}

// CaseUpdateResponse - запись хронологии дела
type CaseUpdateResponse struct {
	ID            string    `json:"id"`
	CaseSummaryID string    `json:"case_summary_id"`
	Title         string    `json:"title"`
	Details       string    `json:"details"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewCaseUpdateResponse строит ответ из модели
func NewCaseUpdateResponse(u *models.CaseUpdate) CaseUpdateResponse {
	return CaseUpdateResponse{
		ID:            u.ID,
		CaseSummaryID: u.CaseSummaryID,
		Title:         u.Title,
		Details:       u.Details,
		CreatedAt:     u.CreatedAt,
	}
}

// NewCaseUpdateResponseList строит список ответов из моделей
func NewCaseUpdateResponseList(updates []models.CaseUpdate) []CaseUpdateResponse {
	out := make([]CaseUpdateResponse, 0, len(updates))
	for i := range updates {
		out = append(out, NewCaseUpdateResponse(&updates[i]))
	}
	return out
}
