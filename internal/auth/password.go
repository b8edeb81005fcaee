package auth

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordNumeric  = errors.New("password cannot be entirely numeric")
	ErrPasswordCommon   = errors.New("password is too common")
	ErrPasswordSimilar  = errors.New("password is too similar to personal information")
)

// Короткий список самых затертых паролей; полноценный словарь тут не нужен,
// важно отсечь очевидное.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"qwerty123":   {},
	"iloveyou":    {},
	"admin123":    {},
	"letmein1":    {},
	"welcome1":    {},
}

// ValidatePassword проверяет сложность пароля: минимальная длина,
// не полностью цифровой, не из списка распространенных и не совпадает
// с атрибутами пользователя (email, имя и т.д.)
func ValidatePassword(password string, userAttributes ...string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ErrPasswordNumeric
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		return ErrPasswordCommon
	}

	lowered := strings.ToLower(password)
	for _, attr := range userAttributes {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if len(attr) < 4 {
			continue
		}
		if strings.Contains(lowered, attr) || strings.Contains(attr, lowered) {
			return ErrPasswordSimilar
		}
	}

	return nil
}
