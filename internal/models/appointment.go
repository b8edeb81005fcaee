package models

import "time"

// Appointment - заявка на консультацию. Может быть создана анонимно,
// поэтому UserID и LawyerID допускают NULL.
type Appointment struct {
	BaseModel
	LawyerID      *string   `gorm:"type:uuid;index" json:"lawyer"`
	UserID        *string   `gorm:"type:uuid;index" json:"user"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Email         string    `gorm:"not null" json:"email"`
	Phone         string    `gorm:"size:20" json:"phone"`
	ServiceNeeded string    `gorm:"size:255;not null" json:"service_needed"`
	PreferredDate time.Time `gorm:"type:date;not null" json:"preferred_date"`
	PreferredTime string    `gorm:"size:5;not null" json:"preferred_time"` // "15:04"
	Description   string    `json:"description"`

	Lawyer *User `gorm:"foreignKey:LawyerID" json:"-"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`
}
