package services

import (
	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"
)

type CaseUpdateService interface {
	ListByCase(p auth.Principal, caseID string) ([]dto.CaseUpdateResponse, error)
	Create(p auth.Principal, caseID string, req *dto.CreateCaseUpdateRequest) (*dto.CaseUpdateResponse, error)
	Update(p auth.Principal, id string, req *dto.UpdateCaseUpdateRequest) (*dto.CaseUpdateResponse, error)
	Delete(p auth.Principal, id string) error
}

type CaseUpdateServiceImpl struct {
	updateRepo repositories.CaseUpdateRepository
	caseRepo   repositories.CaseRepository
}

func NewCaseUpdateService(updateRepo repositories.CaseUpdateRepository, caseRepo repositories.CaseRepository) CaseUpdateService {
	return &CaseUpdateServiceImpl{
		updateRepo: updateRepo,
		caseRepo:   caseRepo,
	}
}

// ListByCase - хронология дела. Клиент читает хронологию своих дел,
// юрист - назначенных, админ - любых.
func (s *CaseUpdateServiceImpl) ListByCase(p auth.Principal, caseID string) ([]dto.CaseUpdateResponse, error) {
	caseSummary, err := s.findParent(p, caseID)
	if err != nil {
		return nil, err
	}

	if !auth.CanReadCaseUpdate(p, caseSummary) {
		return nil, apperrors.ErrForbidden
	}

	updates, err := s.updateRepo.FindByCase(caseID, auth.CaseUpdateScope(p))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCaseUpdateResponseList(updates), nil
}

// Create - запись в хронологию. Пишут только админ и назначенный юрист.
func (s *CaseUpdateServiceImpl) Create(p auth.Principal, caseID string, req *dto.CreateCaseUpdateRequest) (*dto.CaseUpdateResponse, error) {
	caseSummary, err := s.findParent(p, caseID)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutateCaseUpdate(p, caseSummary) {
		return nil, apperrors.ErrForbidden
	}

	update := &models.CaseUpdate{
		CaseSummaryID: caseID,
		Title:         req.Title,
		Details:       req.Details,
	}

	if err := s.updateRepo.Create(update); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCaseUpdateResponse(update)
	return &resp, nil
}

func (s *CaseUpdateServiceImpl) Update(p auth.Principal, id string, req *dto.UpdateCaseUpdateRequest) (*dto.CaseUpdateResponse, error) {
	update, caseSummary, err := s.findVisible(p, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutateCaseUpdate(p, caseSummary) {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		update.Title = *req.Title
	}
	if req.Details != nil {
		update.Details = *req.Details
	}

	if err := s.updateRepo.Update(update); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCaseUpdateResponse(update)
	return &resp, nil
}

func (s *CaseUpdateServiceImpl) Delete(p auth.Principal, id string) error {
	update, caseSummary, err := s.findVisible(p, id)
	if err != nil {
		return err
	}

	if !auth.CanMutateCaseUpdate(p, caseSummary) {
		return apperrors.ErrForbidden
	}

	if err := s.updateRepo.Delete(update.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// findParent ищет родительское дело среди дел, где принципал участвует
func (s *CaseUpdateServiceImpl) findParent(p auth.Principal, caseID string) (*models.CaseSummary, error) {
	caseSummary, err := s.caseRepo.FindByID(caseID, auth.CaseParticipantScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return caseSummary, nil
}

// findVisible ищет запись хронологии вместе с родительским делом
func (s *CaseUpdateServiceImpl) findVisible(p auth.Principal, id string) (*models.CaseUpdate, *models.CaseSummary, error) {
	update, err := s.updateRepo.FindByID(id, auth.CaseUpdateScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaseUpdateNotFound) {
			return nil, nil, apperrors.ErrCaseUpdateNotFound
		}
		return nil, nil, apperrors.InternalError(err)
	}

	caseSummary := update.CaseSummary
	if caseSummary == nil {
		loaded, loadErr := s.caseRepo.FindByID(update.CaseSummaryID, auth.AllowAll)
		if loadErr != nil {
			return nil, nil, apperrors.InternalError(loadErr)
		}
		caseSummary = loaded
	}

	return update, caseSummary, nil
}
