package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/config"
	"lawfirm_backend/internal/logger"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/internal/storage"
	"lawfirm_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type DocumentService interface {
	Upload(ctx context.Context, p auth.Principal, caseID string, category models.DocumentCategory, fileHeader *multipart.FileHeader) (*dto.DocumentResponse, error)
	Get(ctx context.Context, p auth.Principal, id string) (*dto.DocumentResponse, error)
	List(ctx context.Context, p auth.Principal, query *dto.ListDocumentsQuery) ([]dto.DocumentResponse, error)
	ListByCase(ctx context.Context, p auth.Principal, caseID string) ([]dto.DocumentResponse, error)
	Update(ctx context.Context, p auth.Principal, id string, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, p auth.Principal, id string) error
}

type DocumentServiceImpl struct {
	documentRepo repositories.DocumentRepository
	caseRepo     repositories.CaseRepository
	store        storage.Storage
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	caseRepo repositories.CaseRepository,
	store storage.Storage,
) DocumentService {
	return &DocumentServiceImpl{
		documentRepo: documentRepo,
		caseRepo:     caseRepo,
		store:        store,
	}
}

// Upload - загрузка документа в дело. Доступна любому аутентифицированному
// участнику дела; файл уходит в storage-бэкенд, метаданные в БД.
func (s *DocumentServiceImpl) Upload(ctx context.Context, p auth.Principal, caseID string, category models.DocumentCategory, fileHeader *multipart.FileHeader) (*dto.DocumentResponse, error) {
	if !auth.CanCreateDocument(p) {
		return nil, apperrors.ErrUnauthorized
	}

	if !category.Valid() {
		return nil, apperrors.ValidationError(map[string]string{
			"name": "Must be a valid document category",
		})
	}

	// Родительское дело должно быть видимо загружающему
	caseSummary, err := s.findParentCase(p, caseID)
	if err != nil {
		return nil, err
	}

	if err := s.validateFile(fileHeader); err != nil {
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	path := fmt.Sprintf("documents/%s/%s%s", caseSummary.ID, uuid.NewString(), ext)

	contentType := fileHeader.Header.Get("Content-Type")
	if err := s.store.Save(ctx, path, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	document := &models.Document{
		CaseSummaryID: caseSummary.ID,
		UserID:        p.ID,
		Name:          category,
		FilePath:      path,
	}

	if err := s.documentRepo.Create(document); err != nil {
		// Осиротевший файл подчищаем сразу
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			logger.WithError(delErr).Warn("failed to remove orphaned upload")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := s.toResponse(ctx, document)
	return &resp, nil
}

func (s *DocumentServiceImpl) Get(ctx context.Context, p auth.Principal, id string) (*dto.DocumentResponse, error) {
	document, err := s.findVisible(p, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(ctx, document)
	return &resp, nil
}

func (s *DocumentServiceImpl) List(ctx context.Context, p auth.Principal, query *dto.ListDocumentsQuery) ([]dto.DocumentResponse, error) {
	limit, offset := pagination(query.Page, query.PageSize)
	filter := repositories.DocumentFilter{
		Category: query.Category,
		Limit:    limit,
		Offset:   offset,
	}

	documents, err := s.documentRepo.FindAll(filter, auth.DocumentScope(p))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toResponseList(ctx, documents), nil
}

// ListByCase - документы дела, видимые его участникам
func (s *DocumentServiceImpl) ListByCase(ctx context.Context, p auth.Principal, caseID string) ([]dto.DocumentResponse, error) {
	caseSummary, err := s.findParentCase(p, caseID)
	if err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.FindAll(repositories.DocumentFilter{CaseID: caseSummary.ID}, auth.AllowAll)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toResponseList(ctx, documents), nil
}

func (s *DocumentServiceImpl) Update(ctx context.Context, p auth.Principal, id string, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	document, err := s.findVisible(p, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanUpdateDocument(p, document) {
		return nil, apperrors.ErrForbidden
	}

	if req.Name != nil {
		if !req.Name.Valid() {
			return nil, apperrors.ValidationError(map[string]string{
				"name": "Must be a valid document category",
			})
		}
		document.Name = *req.Name
	}

	if err := s.documentRepo.Update(document); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := s.toResponse(ctx, document)
	return &resp, nil
}

func (s *DocumentServiceImpl) Delete(ctx context.Context, p auth.Principal, id string) error {
	document, err := s.findVisible(p, id)
	if err != nil {
		return err
	}

	caseSummary := document.CaseSummary
	if caseSummary == nil {
		loaded, loadErr := s.caseRepo.FindByID(document.CaseSummaryID, auth.AllowAll)
		if loadErr != nil {
			return apperrors.InternalError(loadErr)
		}
		caseSummary = loaded
	}

	if !auth.CanDeleteDocument(p, document, caseSummary) {
		return apperrors.ErrForbidden
	}

	if err := s.documentRepo.Delete(document.ID); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.store.Delete(ctx, document.FilePath); err != nil {
		logger.WithError(err).Warn("failed to remove document file")
	}
	return nil
}

// findVisible ищет документ в видимой области принципала.
// Удалять и править документы дела могут и его стороны, поэтому
// видимость здесь шире DocumentScope: документы из дел участника.
func (s *DocumentServiceImpl) findVisible(p auth.Principal, id string) (*models.Document, error) {
	document, err := s.documentRepo.FindByID(id, auth.DocumentVisibilityScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return document, nil
}

func (s *DocumentServiceImpl) findParentCase(p auth.Principal, caseID string) (*models.CaseSummary, error) {
	caseSummary, err := s.caseRepo.FindByID(caseID, auth.CaseParticipantScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return caseSummary, nil
}

func (s *DocumentServiceImpl) validateFile(fileHeader *multipart.FileHeader) error {
	cfg := config.GetConfig()

	if fileHeader.Size > cfg.Upload.MaxSize {
		return apperrors.ValidationError(map[string]string{
			"file": fmt.Sprintf("File exceeds the maximum size of %d bytes", cfg.Upload.MaxSize),
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	for _, allowed := range cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return apperrors.ValidationError(map[string]string{
		"file": "Unsupported file type",
	})
}

func (s *DocumentServiceImpl) toResponse(ctx context.Context, document *models.Document) dto.DocumentResponse {
	fileURL, err := s.store.GetURL(ctx, document.FilePath)
	if err != nil {
		fileURL = ""
	}
	return dto.NewDocumentResponse(document, fileURL)
}

func (s *DocumentServiceImpl) toResponseList(ctx context.Context, documents []models.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(documents))
	for i := range documents {
		out = append(out, s.toResponse(ctx, &documents[i]))
	}
	return out
}
