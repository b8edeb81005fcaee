package models

import "time"

// Document - файл, привязанный к делу и загрузившему пользователю.
type Document struct {
	BaseModel
	CaseSummaryID string           `gorm:"type:uuid;not null;index" json:"case_summary"`
	UserID        string           `gorm:"type:uuid;not null;index" json:"user"`
	Name          DocumentCategory `gorm:"size:255;not null" json:"name"`
	FilePath      string           `gorm:"not null" json:"-"`
	FileURL       string           `gorm:"-" json:"file"`
	UploadedAt    time.Time        `gorm:"autoCreateTime" json:"uploaded_at"`

	CaseSummary *CaseSummary `gorm:"foreignKey:CaseSummaryID" json:"-"`
	User        *User        `gorm:"foreignKey:UserID" json:"-"`
}
