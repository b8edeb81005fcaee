package services

import (
	"time"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"
)

type CaseService interface {
	Create(p auth.Principal, req *dto.CreateCaseRequest) (*dto.CaseResponse, error)
	Get(p auth.Principal, id string) (*dto.CaseResponse, error)
	List(p auth.Principal, query *dto.ListCasesQuery) ([]dto.CaseResponse, error)
	Update(p auth.Principal, id string, req *dto.UpdateCaseRequest) (*dto.CaseResponse, error)
	Delete(p auth.Principal, id string) error
}

type CaseServiceImpl struct {
	caseRepo repositories.CaseRepository
	userRepo repositories.UserRepository
}

func NewCaseService(caseRepo repositories.CaseRepository, userRepo repositories.UserRepository) CaseService {
	return &CaseServiceImpl{
		caseRepo: caseRepo,
		userRepo: userRepo,
	}
}

// Create - заведение дела. Только админ: он привязывает клиента
// и назначает юриста.
func (s *CaseServiceImpl) Create(p auth.Principal, req *dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	if !auth.CanCreateCase(p) {
		return nil, apperrors.ErrForbidden
	}

	filedDate, err := time.Parse("2006-01-02", req.FiledDate)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{
			"filed_date": "Must be a date in YYYY-MM-DD format",
		})
	}

	client, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidCaseClient
	}
	if client.Role != models.UserRoleClient {
		return nil, apperrors.ErrInvalidCaseClient
	}

	status := req.Status
	if status == "" {
		status = models.CaseStatusActive
	}

	caseSummary := &models.CaseSummary{
		CaseNumber: req.CaseNumber,
		CaseType:   req.CaseType,
		FiledDate:  filedDate,
		Status:     status,
		UserID:     req.UserID,
	}

	if req.LawyerID != "" {
		lawyer, err := s.userRepo.FindByID(req.LawyerID)
		if err != nil || lawyer.Role != models.UserRoleLawyer {
			return nil, apperrors.ErrInvalidCaseLawyer
		}
		lawyerID := req.LawyerID
		caseSummary.LawyerID = &lawyerID
	}

	if err := s.caseRepo.Create(caseSummary); err != nil {
		if apperrors.Is(err, repositories.ErrCaseNumberTaken) {
			return nil, apperrors.ErrCaseNumberTaken
		}
		return nil, apperrors.InternalError(err)
	}

	return s.Get(p, caseSummary.ID)
}

func (s *CaseServiceImpl) Get(p auth.Principal, id string) (*dto.CaseResponse, error) {
	caseSummary, err := s.findVisible(p, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCaseResponse(caseSummary)
	return &resp, nil
}

func (s *CaseServiceImpl) List(p auth.Principal, query *dto.ListCasesQuery) ([]dto.CaseResponse, error) {
	limit, offset := pagination(query.Page, query.PageSize)
	filter := repositories.CaseFilter{
		Status: query.Status,
		Limit:  limit,
		Offset: offset,
	}

	cases, err := s.caseRepo.FindAll(filter, auth.CaseScope(p))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCaseResponseList(cases), nil
}

func (s *CaseServiceImpl) Update(p auth.Principal, id string, req *dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	caseSummary, err := s.findVisible(p, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutateCase(p, caseSummary) {
		return nil, apperrors.ErrForbidden
	}

	if req.CaseNumber != nil && *req.CaseNumber != caseSummary.CaseNumber {
		taken, checkErr := s.caseRepo.CaseNumberExists(*req.CaseNumber, caseSummary.ID)
		if checkErr != nil {
			return nil, apperrors.InternalError(checkErr)
		}
		if taken {
			return nil, apperrors.ErrCaseNumberTaken
		}
		caseSummary.CaseNumber = *req.CaseNumber
	}
	if req.CaseType != nil {
		caseSummary.CaseType = *req.CaseType
	}
	if req.FiledDate != nil {
		filedDate, parseErr := time.Parse("2006-01-02", *req.FiledDate)
		if parseErr != nil {
			return nil, apperrors.ValidationError(map[string]string{
				"filed_date": "Must be a date in YYYY-MM-DD format",
			})
		}
		caseSummary.FiledDate = filedDate
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.ValidationError(map[string]string{
				"status": "Must be a valid case status",
			})
		}
		caseSummary.Status = *req.Status
	}
	if req.LawyerID != nil {
		// Переназначение юриста доступно только админу
		if !p.IsAdmin() {
			return nil, apperrors.ErrForbidden
		}
		if *req.LawyerID == "" {
			caseSummary.LawyerID = nil
		} else {
			lawyer, findErr := s.userRepo.FindByID(*req.LawyerID)
			if findErr != nil || lawyer.Role != models.UserRoleLawyer {
				return nil, apperrors.ErrInvalidCaseLawyer
			}
			caseSummary.LawyerID = req.LawyerID
		}
	}

	if err := s.caseRepo.Update(caseSummary); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.Get(p, caseSummary.ID)
}

// Delete удаляет дело вместе с хронологией и документами
func (s *CaseServiceImpl) Delete(p auth.Principal, id string) error {
	caseSummary, err := s.findVisible(p, id)
	if err != nil {
		return err
	}

	if !auth.CanMutateCase(p, caseSummary) {
		return apperrors.ErrForbidden
	}

	if err := s.caseRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CaseServiceImpl) findVisible(p auth.Principal, id string) (*models.CaseSummary, error) {
	caseSummary, err := s.caseRepo.FindByID(id, auth.CaseScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return caseSummary, nil
}
