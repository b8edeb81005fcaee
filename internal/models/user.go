package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'client'" json:"role"`
	FirstName    string   `gorm:"size:30" json:"first_name"`
	LastName     string   `gorm:"size:30" json:"last_name"`
	Address      string   `json:"address"`
	Age          *int     `json:"age"`
	Sex          string   `gorm:"size:20" json:"sex"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth"`
	PhoneNumber  string   `gorm:"size:20" json:"phone_number"`

	// Relations
	CasesAsClient []CaseSummary  `gorm:"foreignKey:UserID" json:"-"`
	CasesAsLawyer []CaseSummary  `gorm:"foreignKey:LawyerID" json:"-"`
	Documents     []Document     `gorm:"foreignKey:UserID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
