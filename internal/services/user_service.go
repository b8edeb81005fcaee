package services

import (
	"strconv"
	"strings"
	"time"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"
)

const defaultPageSize = 50

type UserService interface {
	GetByID(id string) (*dto.UserResponse, error)
	GetByEmail(email string) (*dto.UserResponse, error)
	ListLawyers() ([]dto.UserResponse, error)
	ListUsers(query *dto.ListUsersQuery) ([]dto.UserResponse, error)
	AdminCreateUser(req *dto.AdminCreateUserRequest) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) GetByEmail(email string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ListLawyers возвращает всех юристов фирмы. Эндпоинт публичный.
func (s *UserServiceImpl) ListLawyers() ([]dto.UserResponse, error) {
	lawyers, err := s.userRepo.FindByRole(models.UserRoleLawyer, 0, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponseList(lawyers), nil
}

// ListUsers - админский список с фильтром по роли
func (s *UserServiceImpl) ListUsers(query *dto.ListUsersQuery) ([]dto.UserResponse, error) {
	limit, offset := pagination(query.Page, query.PageSize)

	var users []models.User
	var err error
	if query.Role != "" {
		users, err = s.userRepo.FindByRole(query.Role, limit, offset)
	} else {
		users, err = s.userRepo.FindAll(limit, offset)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponseList(users), nil
}

// AdminCreateUser создает пользователя с явной ролью.
// Единственный способ завести юриста или второго админа.
func (s *UserServiceImpl) AdminCreateUser(req *dto.AdminCreateUserRequest) (*dto.UserResponse, error) {
	if err := auth.ValidateRole(req.Role); err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}

	localPart := strings.SplitN(strings.ToLower(req.Email), "@", 2)[0]
	if err := auth.ValidatePassword(req.Password, localPart, req.FirstName, req.LastName); err != nil {
		return nil, apperrors.ErrWeakPassword.WithDetails(map[string]string{
			"password": err.Error(),
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	username, err := s.deriveUsername(req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        strings.ToLower(req.Email),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Sex != nil {
		user.Sex = *req.Sex
	}
	if req.DateOfBirth != nil {
		dob, parseErr := time.Parse("2006-01-02", *req.DateOfBirth)
		if parseErr != nil {
			return nil, apperrors.ValidationError(map[string]string{
				"date_of_birth": "Must be a date in YYYY-MM-DD format",
			})
		}
		user.DateOfBirth = &dob
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) deriveUsername(emailAddr string) (string, error) {
	base := strings.SplitN(strings.ToLower(emailAddr), "@", 2)[0]
	if base == "" {
		base = "user"
	}

	username := base
	for i := 1; ; i++ {
		exists, err := s.userRepo.UsernameExists(username)
		if err != nil {
			return "", err
		}
		if !exists {
			return username, nil
		}
		username = base + strconv.Itoa(i)
	}
}

// pagination переводит page/page_size в limit/offset
func pagination(page, pageSize int) (limit, offset int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}
