package repositories

import (
	"errors"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCaseUpdateNotFound = errors.New("case update not found")

type CaseUpdateRepository interface {
	Create(update *models.CaseUpdate) error
	FindByID(id string, scope auth.Scope) (*models.CaseUpdate, error)
	FindByCase(caseID string, scope auth.Scope) ([]models.CaseUpdate, error)
	FindAll(limit, offset int, scope auth.Scope) ([]models.CaseUpdate, error)
	Update(update *models.CaseUpdate) error
	Delete(id string) error
}

type CaseUpdateRepositoryImpl struct {
	db *gorm.DB
}

func NewCaseUpdateRepository(db *gorm.DB) CaseUpdateRepository {
	return &CaseUpdateRepositoryImpl{db: db}
}

func (r *CaseUpdateRepositoryImpl) Create(update *models.CaseUpdate) error {
	return r.db.Create(update).Error
}

func (r *CaseUpdateRepositoryImpl) FindByID(id string, scope auth.Scope) (*models.CaseUpdate, error) {
	var update models.CaseUpdate
	err := r.db.Scopes(scope).Preload("CaseSummary").
		First(&update, "case_updates.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseUpdateNotFound
		}
		return nil, err
	}
	return &update, nil
}

func (r *CaseUpdateRepositoryImpl) FindByCase(caseID string, scope auth.Scope) ([]models.CaseUpdate, error) {
	var updates []models.CaseUpdate
	err := r.db.Scopes(scope).
		Where("case_summary_id = ?", caseID).
		Order("created_at DESC").Find(&updates).Error
	return updates, err
}

func (r *CaseUpdateRepositoryImpl) FindAll(limit, offset int, scope auth.Scope) ([]models.CaseUpdate, error) {
	var updates []models.CaseUpdate
	query := r.db.Scopes(scope).Model(&models.CaseUpdate{})
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Order("created_at DESC").Find(&updates).Error
	return updates, err
}

func (r *CaseUpdateRepositoryImpl) Update(update *models.CaseUpdate) error {
	result := r.db.Model(update).Updates(map[string]interface{}{
		"title":   update.Title,
		"details": update.Details,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaseUpdateNotFound
	}
	return nil
}

func (r *CaseUpdateRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.CaseUpdate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaseUpdateNotFound
	}
	return nil
}
