package dto

import (
	"time"

	"lawfirm_backend/internal/models"
)

// RegisterRequest - запрос регистрации клиента
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	FirstName       string `json:"first_name" validate:"omitempty,max=100"`
	LastName        string `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber     string `json:"phone_number" validate:"omitempty,max=20"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest - запрос обновления пары токенов
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// LogoutRequest - запрос выхода
type LogoutRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// AuthResponse - ответ с парой токенов
type AuthResponse struct {
	Access  string  `json:"access"`
	Refresh string  `json:"refresh"`
	User    UserDTO `json:"user"`
}

// UserDTO - базовая информация о пользователе
type UserDTO struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Role      models.UserRole `json:"role"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserDTO строит UserDTO из модели
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}
