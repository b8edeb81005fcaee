package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/email"
	"lawfirm_backend/internal/logger"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"
)

// refreshTokenTTL - срок жизни refresh-токена
const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	emailSender email.Sender
}

func NewAuthService(userRepo repositories.UserRepository, emailSender email.Sender) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		emailSender: emailSender,
	}
}

// Register - регистрация нового клиента.
// Публичная регистрация всегда создает роль client, остальные роли
// заводит только админ.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ValidationError(map[string]string{
			"confirmPassword": "Passwords do not match",
		})
	}

	// Политика сложности: длина, не только цифры, не из словаря,
	// не совпадает с личными данными
	localPart := emailLocalPart(req.Email)
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
		Role:         models.UserRoleClient,
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

	// Письмо не блокирует регистрацию
	if err := s.emailSender.SendWelcome(user.Email, user.FirstName); err != nil {
		logger.WithError(err).Warn("failed to send welcome email")
	}

	return s.issueTokenPair(user)
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

// RefreshToken - обмен refresh-токена на новую пару.
// Старый токен отзывается (ротация).
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		// Протухший токен сразу вычищаем
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokenPair(user)
}

// Logout - отзыв refresh-токена
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// issueTokenPair выдает access и refresh токены для пользователя
func (s *AuthServiceImpl) issueTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshValue, err := generateRandomToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshValue,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Access:  accessToken,
		Refresh: refreshValue,
		User:    dto.NewUserDTO(user),
	}, nil
}

// deriveUsername выводит уникальный username из локальной части email.
// При коллизии добавляется числовой суффикс.
func (s *AuthServiceImpl) deriveUsername(emailAddr string) (string, error) {
	base := emailLocalPart(emailAddr)
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
		username = fmt.Sprintf("%s%d", base, i)
	}
}

func emailLocalPart(emailAddr string) string {
	parts := strings.SplitN(strings.ToLower(emailAddr), "@", 2)
	return parts[0]
}

// generateRandomToken создает криптостойкий opaque-токен
func generateRandomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
