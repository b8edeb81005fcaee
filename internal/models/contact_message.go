package models

// ContactMessage - анонимное входящее сообщение. Владельца нет,
// читает только администратор.
type ContactMessage struct {
	BaseModel
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Message string `gorm:"not null" json:"message"`
}
