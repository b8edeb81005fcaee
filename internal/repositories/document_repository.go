package repositories

import (
	"errors"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentFilter - критерии выборки документов
type DocumentFilter struct {
	CaseID   string
	UserID   string
	Category models.DocumentCategory
	Limit    int
	Offset   int
}

type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id string, scope auth.Scope) (*models.Document, error)
	FindAll(filter DocumentFilter, scope auth.Scope) ([]models.Document, error)
	Count(filter DocumentFilter, scope auth.Scope) (int64, error)
	Update(document *models.Document) error
	Delete(id string) error
}

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) Create(document *models.Document) error {
	return r.db.Create(document).Error
}

func (r *DocumentRepositoryImpl) FindByID(id string, scope auth.Scope) (*models.Document, error) {
	var document models.Document
	err := r.db.Scopes(scope).
		Preload("CaseSummary").Preload("User").
		First(&document, "documents.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepositoryImpl) FindAll(filter DocumentFilter, scope auth.Scope) ([]models.Document, error) {
	var documents []models.Document
	query := r.db.Scopes(scope).Model(&models.Document{})

	if filter.CaseID != "" {
		query = query.Where("case_summary_id = ?", filter.CaseID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Category != "" {
		query = query.Where("name = ?", filter.Category)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Preload("CaseSummary").Order("uploaded_at DESC").Find(&documents).Error
	return documents, err
}

func (r *DocumentRepositoryImpl) Count(filter DocumentFilter, scope auth.Scope) (int64, error) {
	var count int64
	query := r.db.Scopes(scope).Model(&models.Document{})
	if filter.CaseID != "" {
		query = query.Where("case_summary_id = ?", filter.CaseID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Category != "" {
		query = query.Where("name = ?", filter.Category)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *DocumentRepositoryImpl) Update(document *models.Document) error {
	result := r.db.Model(document).Updates(map[string]interface{}{
		"name":      document.Name,
		"file_path": document.FilePath,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
