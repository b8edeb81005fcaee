package repositories

import (
	"errors"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCaseNotFound    = errors.New("case not found")
	ErrCaseNumberTaken = errors.New("case number already taken")
)

// CaseFilter - критерии выборки дел
type CaseFilter struct {
	Status   models.CaseStatus
	ClientID string
	LawyerID string
	Limit    int
	Offset   int
}

type CaseRepository interface {
	Create(caseSummary *models.CaseSummary) error
	FindByID(id string, scope auth.Scope) (*models.CaseSummary, error)
	FindByCaseNumber(caseNumber string, scope auth.Scope) (*models.CaseSummary, error)
	FindAll(filter CaseFilter, scope auth.Scope) ([]models.CaseSummary, error)
	Count(filter CaseFilter, scope auth.Scope) (int64, error)
	Update(caseSummary *models.CaseSummary) error
	Delete(id string) error
	CaseNumberExists(caseNumber string, excludeID string) (bool, error)
}

type CaseRepositoryImpl struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &CaseRepositoryImpl{db: db}
}

func (r *CaseRepositoryImpl) Create(caseSummary *models.CaseSummary) error {
	exists, err := r.CaseNumberExists(caseSummary.CaseNumber, "")
	if err != nil {
		return err
	}
	if exists {
		return ErrCaseNumberTaken
	}

	return r.db.Create(caseSummary).Error
}

func (r *CaseRepositoryImpl) FindByID(id string, scope auth.Scope) (*models.CaseSummary, error) {
	var caseSummary models.CaseSummary
	err := r.db.Scopes(scope).
		Preload("User").Preload("Lawyer").
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("case_updates.created_at DESC")
		}).
		Preload("Documents").
		First(&caseSummary, "case_summaries.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return &caseSummary, nil
}

func (r *CaseRepositoryImpl) FindByCaseNumber(caseNumber string, scope auth.Scope) (*models.CaseSummary, error) {
	var caseSummary models.CaseSummary
	err := r.db.Scopes(scope).
		Preload("User").Preload("Lawyer").
		First(&caseSummary, "case_summaries.case_number = ?", caseNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return &caseSummary, nil
}

func (r *CaseRepositoryImpl) FindAll(filter CaseFilter, scope auth.Scope) ([]models.CaseSummary, error) {
	var cases []models.CaseSummary
	query := r.db.Scopes(scope).Model(&models.CaseSummary{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClientID != "" {
		query = query.Where("user_id = ?", filter.ClientID)
	}
	if filter.LawyerID != "" {
		query = query.Where("lawyer_id = ?", filter.LawyerID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Preload("User").Preload("Lawyer").
		Order("created_at DESC").Find(&cases).Error
	return cases, err
}

func (r *CaseRepositoryImpl) Count(filter CaseFilter, scope auth.Scope) (int64, error) {
	var count int64
	query := r.db.Scopes(scope).Model(&models.CaseSummary{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClientID != "" {
		query = query.Where("user_id = ?", filter.ClientID)
	}
	if filter.LawyerID != "" {
		query = query.Where("lawyer_id = ?", filter.LawyerID)
	}
	err := query.Count(&count).Error
	return count, err
}

// Update пишет по id через пустую модель: на модели с загруженной
// связью Lawyer gorm пересохранил бы belongs-to и затер NULL в lawyer_id
func (r *CaseRepositoryImpl) Update(caseSummary *models.CaseSummary) error {
	result := r.db.Model(&models.CaseSummary{}).
		Where("id = ?", caseSummary.ID).
		Updates(map[string]interface{}{
			"case_number": caseSummary.CaseNumber,
			"case_type":   caseSummary.CaseType,
			"filed_date":  caseSummary.FiledDate,
			"status":      caseSummary.Status,
			"user_id":     caseSummary.UserID,
			"lawyer_id":   caseSummary.LawyerID,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaseNotFound
	}
	return nil
}

// Delete удаляет дело вместе с хронологией и документами в одной транзакции
func (r *CaseRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("case_summary_id = ?", id).Delete(&models.CaseUpdate{}).Error; err != nil {
			return err
		}

		if err := tx.Where("case_summary_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.CaseSummary{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCaseNotFound
		}
		return nil
	})
}

func (r *CaseRepositoryImpl) CaseNumberExists(caseNumber string, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&models.CaseSummary{}).Where("case_number = ?", caseNumber)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
