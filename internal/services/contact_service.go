package services

import (
	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/email"
	"lawfirm_backend/internal/logger"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"
)

type ContactService interface {
	Create(req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error)
	Get(p auth.Principal, id string) (*dto.ContactMessageResponse, error)
	List(p auth.Principal, page, pageSize int) ([]dto.ContactMessageResponse, error)
	Update(p auth.Principal, id string, req *dto.UpdateContactMessageRequest) (*dto.ContactMessageResponse, error)
	Delete(p auth.Principal, id string) error
}

type ContactServiceImpl struct {
	messageRepo repositories.ContactMessageRepository
	emailSender email.Sender
}

func NewContactService(messageRepo repositories.ContactMessageRepository, emailSender email.Sender) ContactService {
	return &ContactServiceImpl{
		messageRepo: messageRepo,
		emailSender: emailSender,
	}
}

// Create - прием сообщения с формы обратной связи, доступен всем
func (s *ContactServiceImpl) Create(req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailSender.SendContactAcknowledgment(message.Email, message.Name); err != nil {
		logger.WithError(err).Warn("failed to send contact acknowledgment")
	}

	resp := dto.NewContactMessageResponse(message)
	return &resp, nil
}

func (s *ContactServiceImpl) Get(p auth.Principal, id string) (*dto.ContactMessageResponse, error) {
	message, err := s.messageRepo.FindByID(id, auth.ContactMessageScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewContactMessageResponse(message)
	return &resp, nil
}

func (s *ContactServiceImpl) List(p auth.Principal, page, pageSize int) ([]dto.ContactMessageResponse, error) {
	limit, offset := pagination(page, pageSize)
	messages, err := s.messageRepo.FindAll(limit, offset, auth.ContactMessageScope(p))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewContactMessageResponseList(messages), nil
}

func (s *ContactServiceImpl) Update(p auth.Principal, id string, req *dto.UpdateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	message, err := s.messageRepo.FindByID(id, auth.ContactMessageScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanManageContactMessages(p) {
		return nil, apperrors.ErrForbidden
	}

	if req.Name != nil {
		message.Name = *req.Name
	}
	if req.Email != nil {
		message.Email = *req.Email
	}
	if req.Phone != nil {
		message.Phone = *req.Phone
	}
	if req.Message != nil {
		message.Message = *req.Message
	}

	if err := s.messageRepo.Update(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewContactMessageResponse(message)
	return &resp, nil
}

func (s *ContactServiceImpl) Delete(p auth.Principal, id string) error {
	message, err := s.messageRepo.FindByID(id, auth.ContactMessageScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CanManageContactMessages(p) {
		return apperrors.ErrForbidden
	}

	if err := s.messageRepo.Delete(message.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
