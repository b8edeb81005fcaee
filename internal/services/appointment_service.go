package services

import (
	"time"

	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/email"
	"lawfirm_backend/internal/logger"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/services/dto"
	"lawfirm_backend/pkg/apperrors"
)

type AppointmentService interface {
	Create(p auth.Principal, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(p auth.Principal, id string) (*dto.AppointmentResponse, error)
	List(p auth.Principal, query *dto.ListAppointmentsQuery) ([]dto.AppointmentResponse, error)
	Update(p auth.Principal, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(p auth.Principal, id string) error
}

type AppointmentServiceImpl struct {
	appointmentRepo repositories.AppointmentRepository
	userRepo        repositories.UserRepository
	emailSender     email.Sender
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	userRepo repositories.UserRepository,
	emailSender email.Sender,
) AppointmentService {
	return &AppointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		emailSender:     emailSender,
	}
}

// Create - заявка на консультацию. Доступна анониму; залогиненный
// пользователь привязывается к записи.
func (s *AppointmentServiceImpl) Create(p auth.Principal, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	preferredDate, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		return nil, apperrors.ValidationError(map[string]string{
			"preferred_date": "Must be a date in YYYY-MM-DD format",
		})
	}

	appointment := &models.Appointment{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceNeeded: req.ServiceNeeded,
		PreferredDate: preferredDate,
		PreferredTime: req.PreferredTime,
		Description:   req.Description,
	}

	if req.LawyerID != "" {
		lawyer, err := s.userRepo.FindByID(req.LawyerID)
		if err != nil || lawyer.Role != models.UserRoleLawyer {
			return nil, apperrors.NewBadRequestError("Requested lawyer does not exist")
		}
		appointment.LawyerID = &req.LawyerID
	}

	if !p.IsAnonymous() {
		userID := p.ID
		appointment.UserID = &userID
	}

	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Подтверждение на почту; сбой не откатывает запись
	if err := s.emailSender.SendAppointmentConfirmation(
		appointment.Email, appointment.Name,
		appointment.ServiceNeeded, req.PreferredDate, appointment.PreferredTime,
	); err != nil {
		logger.WithError(err).Warn("failed to send appointment confirmation")
	}

	resp := dto.NewAppointmentResponse(appointment)
	return &resp, nil
}

func (s *AppointmentServiceImpl) Get(p auth.Principal, id string) (*dto.AppointmentResponse, error) {
	appointment, err := s.findVisible(p, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewAppointmentResponse(appointment)
	return &resp, nil
}

// List - записи внутри видимой области. Фильтр ?lawyer= сужает выборку,
// но не расширяет ее за пределы области принципала.
func (s *AppointmentServiceImpl) List(p auth.Principal, query *dto.ListAppointmentsQuery) ([]dto.AppointmentResponse, error) {
	limit, offset := pagination(query.Page, query.PageSize)
	filter := repositories.AppointmentFilter{
		LawyerID: query.Lawyer,
		Limit:    limit,
		Offset:   offset,
	}

	appointments, err := s.appointmentRepo.FindAll(filter, auth.AppointmentScope(p))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewAppointmentResponseList(appointments), nil
}

func (s *AppointmentServiceImpl) Update(p auth.Principal, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := s.findVisible(p, id)
	if err != nil {
		return nil, err
	}

	// Видимая, но чужая запись - это 403, не 404
	if !auth.CanMutateAppointment(p, appointment) {
		return nil, apperrors.ErrForbidden
	}

	if req.LawyerID != nil {
		if *req.LawyerID == "" {
			appointment.LawyerID = nil
		} else {
			lawyer, err := s.userRepo.FindByID(*req.LawyerID)
			if err != nil || lawyer.Role != models.UserRoleLawyer {
				return nil, apperrors.NewBadRequestError("Requested lawyer does not exist")
			}
			appointment.LawyerID = req.LawyerID
		}
	}
	if req.Name != nil {
		appointment.Name = *req.Name
	}
	if req.Email != nil {
		appointment.Email = *req.Email
	}
	if req.Phone != nil {
		appointment.Phone = *req.Phone
	}
	if req.ServiceNeeded != nil {
		appointment.ServiceNeeded = *req.ServiceNeeded
	}
	if req.PreferredDate != nil {
		preferredDate, parseErr := time.Parse("2006-01-02", *req.PreferredDate)
		if parseErr != nil {
			return nil, apperrors.ValidationError(map[string]string{
				"preferred_date": "Must be a date in YYYY-MM-DD format",
			})
		}
		appointment.PreferredDate = preferredDate
	}
	if req.PreferredTime != nil {
		appointment.PreferredTime = *req.PreferredTime
	}
	if req.Description != nil {
		appointment.Description = *req.Description
	}

	if err := s.appointmentRepo.Update(appointment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewAppointmentResponse(appointment)
	return &resp, nil
}

func (s *AppointmentServiceImpl) Delete(p auth.Principal, id string) error {
	appointment, err := s.findVisible(p, id)
	if err != nil {
		return err
	}

	if !auth.CanMutateAppointment(p, appointment) {
		return apperrors.ErrForbidden
	}

	if err := s.appointmentRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// findVisible ищет запись в видимой области принципала
func (s *AppointmentServiceImpl) findVisible(p auth.Principal, id string) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(id, auth.AppointmentScope(p))
	if err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return appointment, nil
}
