package dto

import (
	"time"

	"lawfirm_backend/internal/models"
)

// UserResponse содержит полные данные о пользователе.
// Используется для /user и админских списков.
type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Username    string          `json:"username"`
	Role        models.UserRole `json:"role"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Address     string          `json:"address"`
	Age         *int            `json:"age"`
	Sex         string          `json:"sex"`
	DateOfBirth string          `json:"date_of_birth"`
	PhoneNumber string          `json:"phone_number"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewUserResponse строит UserResponse из модели
func NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		Role:        user.Role,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Address:     user.Address,
		Age:         user.Age,
		Sex:         user.Sex,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
	}
	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}
	return resp
}

// NewUserResponseList строит список ответов из моделей
func NewUserResponseList(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// UpdateUserRequest - частичное обновление профиля
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Age         *int    `json:"age" validate:"omitempty,min=0,max=150"`
	Sex         *string `json:"sex" validate:"omitempty,max=20"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,dateiso"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

// AdminCreateUserRequest - создание пользователя админом с явной ролью
type AdminCreateUserRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required"`
	Role        models.UserRole `json:"role" validate:"required,userrole"`
	FirstName   string          `json:"first_name" validate:"omitempty,max=100"`
	LastName    string          `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber string          `json:"phone_number" validate:"omitempty,max=20"`
}

// ListUsersQuery - фильтр списка пользователей
type ListUsersQuery struct {
	Role     models.UserRole `form:"role" validate:"omitempty,userrole"`
	Page     int             `form:"page" validate:"omitempty,min=1"`
	PageSize int             `form:"page_size" validate:"omitempty,min=1,max=100"`
}
