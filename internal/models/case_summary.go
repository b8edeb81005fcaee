package models

import "time"

// CaseSummary - центральный агрегат: дело клиента с назначенным юристом.
// UserID всегда указывает на клиента, LawyerID (если задан) - на юриста.
type CaseSummary struct {
	BaseModel
	CaseNumber string     `gorm:"size:50;uniqueIndex;not null" json:"case_number"`
	CaseType   string     `gorm:"size:100;not null" json:"case_type"`
	FiledDate  time.Time  `gorm:"type:date;not null" json:"filed_date"`
	Status     CaseStatus `gorm:"type:varchar(50);not null;default:'active'" json:"status"`
	UserID     string     `gorm:"type:uuid;not null;index" json:"-"`
	LawyerID   *string    `gorm:"type:uuid;index" json:"-"`

	User    *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Lawyer  *User        `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
	Updates []CaseUpdate `gorm:"foreignKey:CaseSummaryID;constraint:OnDelete:CASCADE" json:"updates,omitempty"`
	Documents []Document `gorm:"foreignKey:CaseSummaryID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}
