package auth

import (
	"errors"

	"lawfirm_backend/internal/models"
)

// Principal - аутентифицированный пользователь запроса.
// Нулевое значение означает анонимный запрос.
type Principal struct {
	ID   string
	Role models.UserRole
}

func (p Principal) IsAnonymous() bool {
	return p.ID == ""
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.UserRoleAdmin
}

// ValidateRole проверяет валидность роли
func ValidateRole(role models.UserRole) error {
	if !role.Valid() {
		return errors.New("invalid role")
	}
	return nil
}

// ============================================
// Appointment
// ============================================

// CanCreateAppointment - запись на консультацию открыта всем, включая анонимов
func CanCreateAppointment(p Principal) bool {
	return true
}

// CanReadAppointment - админ видит все, юрист свои назначения, клиент свои заявки
func CanReadAppointment(p Principal, a *models.Appointment) bool {
	switch p.Role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleLawyer:
		return a.LawyerID != nil && *a.LawyerID == p.ID
	case models.UserRoleClient:
		return a.UserID != nil && *a.UserID == p.ID
	}
	return false
}

// CanMutateAppointment - менять и удалять запись может только админ
// или юрист, на которого она назначена
func CanMutateAppointment(p Principal, a *models.Appointment) bool {
	switch p.Role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleLawyer:
		return a.LawyerID != nil && *a.LawyerID == p.ID
	}
	return false
}

// ============================================
// ContactMessage
// ============================================

// CanCreateContactMessage - форма обратной связи публичная
func CanCreateContactMessage(p Principal) bool {
	return true
}

// CanManageContactMessages - чтение и мутации только для админа
func CanManageContactMessages(p Principal) bool {
	return p.IsAdmin()
}

// ============================================
// CaseSummary
// ============================================

// CanCreateCase - дело заводит только админ
func CanCreateCase(p Principal) bool {
	return p.IsAdmin()
}

// CanReadCase - админ видит все дела, юрист только назначенные на него.
// Клиент дело как агрегат не читает (текущее правило).
func CanReadCase(p Principal, c *models.CaseSummary) bool {
	switch p.Role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleLawyer:
		return c.LawyerID != nil && *c.LawyerID == p.ID
	}
	return false
}

// CanMutateCase - то же правило, что и для чтения
func CanMutateCase(p Principal, c *models.CaseSummary) bool {
	return CanReadCase(p, c)
}

// ============================================
// CaseUpdate (права определяются родительским делом)
// ============================================

// CanReadCaseUpdate - клиент видит хронологию собственного дела,
// юрист - дел, где он назначен, админ - всё
func CanReadCaseUpdate(p Principal, c *models.CaseSummary) bool {
	switch p.Role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleLawyer:
		return c.LawyerID != nil && *c.LawyerID == p.ID
	case models.UserRoleClient:
		return c.UserID == p.ID
	}
	return false
}

// CanMutateCaseUpdate - записи хронологии ведут юрист дела и админ
func CanMutateCaseUpdate(p Principal, c *models.CaseSummary) bool {
	switch p.Role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleLawyer:
		return c.LawyerID != nil && *c.LawyerID == p.ID
	}
	return false
}

// ============================================
// Document
// ============================================

// CanCreateDocument - любой аутентифицированный пользователь
// может загрузить документ в видимое ему дело
func CanCreateDocument(p Principal) bool {
	return !p.IsAnonymous()
}

// CanUpdateDocument - админ или загрузивший
func CanUpdateDocument(p Principal, d *models.Document) bool {
	if p.IsAdmin() {
		return true
	}
	return d.UserID == p.ID
}

// CanDeleteDocument - админ, загрузивший, юрист дела или клиент дела
func CanDeleteDocument(p Principal, d *models.Document, c *models.CaseSummary) bool {
	if p.IsAdmin() || d.UserID == p.ID {
		return true
	}
	switch p.Role {
	case models.UserRoleLawyer:
		return c.LawyerID != nil && *c.LawyerID == p.ID
	case models.UserRoleClient:
		return c.UserID == p.ID
	}
	return false
}
