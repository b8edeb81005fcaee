package models

// CaseUpdate - запись в хронологии дела. UpdatedAt из BaseModel
// обновляется хранилищем при каждой мутации.
type CaseUpdate struct {
	BaseModel
	CaseSummaryID string `gorm:"type:uuid;not null;index" json:"case_summary"`
	Title         string `gorm:"size:255;not null" json:"title"`
	Details       string `gorm:"not null" json:"details"`

	CaseSummary *CaseSummary `gorm:"foreignKey:CaseSummaryID" json:"-"`
}
