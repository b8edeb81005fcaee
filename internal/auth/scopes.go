package auth

import (
	"lawfirm_backend/internal/models"

	"gorm.io/gorm"
)

// Scope - предикат видимых строк для принципала.
// Отказ в доступе к списку вырождается в пустую выборку (DenyAll),
// а не в ошибку - существование чужих строк не раскрывается.
type Scope func(*gorm.DB) *gorm.DB

// AllowAll - без ограничений (админ)
func AllowAll(db *gorm.DB) *gorm.DB {
	return db
}

// DenyAll - пустая выборка
func DenyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// AppointmentScope - видимые записи на консультацию
func AppointmentScope(p Principal) Scope {
	switch p.Role {
	case models.UserRoleAdmin:
		return AllowAll
	case models.UserRoleLawyer:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("lawyer_id = ?", p.ID)
		}
	case models.UserRoleClient:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", p.ID)
		}
	}
	return DenyAll
}

// ContactMessageScope - сообщения видит только админ
func ContactMessageScope(p Principal) Scope {
	if p.IsAdmin() {
		return AllowAll
	}
	return DenyAll
}

// CaseScope - видимые дела
func CaseScope(p Principal) Scope {
	switch p.Role {
	case models.UserRoleAdmin:
		return AllowAll
	case models.UserRoleLawyer:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("lawyer_id = ?", p.ID)
		}
	}
	return DenyAll
}

// CaseParticipantScope - дела, в которых принципал участвует как сторона.
// Шире CaseScope: клиент видит свои дела (нужно для хронологии и документов).
func CaseParticipantScope(p Principal) Scope {
	switch p.Role {
	case models.UserRoleAdmin:
		return AllowAll
	case models.UserRoleLawyer:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("lawyer_id = ?", p.ID)
		}
	case models.UserRoleClient:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", p.ID)
		}
	}
	return DenyAll
}

// CaseUpdateScope - видимость хронологии определяется родительским делом:
// юристу - дела где он назначен, клиенту - его собственные дела
func CaseUpdateScope(p Principal) Scope {
	switch p.Role {
	case models.UserRoleAdmin:
		return AllowAll
	case models.UserRoleLawyer:
		return caseParentScope("lawyer_id", p.ID)
	case models.UserRoleClient:
		return caseParentScope("user_id", p.ID)
	}
	return DenyAll
}

// DocumentScope - админ видит все документы, остальные только свои загрузки
func DocumentScope(p Principal) Scope {
	switch p.Role {
	case models.UserRoleAdmin:
		return AllowAll
	case models.UserRoleLawyer, models.UserRoleClient:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", p.ID)
		}
	}
	return DenyAll
}

// DocumentVisibilityScope - документы, до которых принципал может дотянуться
// для адресных операций: собственные загрузки плюс документы дел, в которых
// он участвует как сторона
func DocumentVisibilityScope(p Principal) Scope {
	switch p.Role {
	case models.UserRoleAdmin:
		return AllowAll
	case models.UserRoleLawyer:
		return documentReachScope("lawyer_id", p.ID)
	case models.UserRoleClient:
		return documentReachScope("user_id", p.ID)
	}
	return DenyAll
}

func documentReachScope(caseColumn, id string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.CaseSummary{}).
			Select("id").
			Where(caseColumn+" = ?", id)
		return db.Where("documents.user_id = ? OR case_summary_id IN (?)", id, sub)
	}
}

// caseParentScope фильтрует дочерние строки по колонке владельца родительского дела
func caseParentScope(column, id string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.CaseSummary{}).
			Select("id").
			Where(column+" = ?", id)
		return db.Where("case_summary_id IN (?)", sub)
	}
}
