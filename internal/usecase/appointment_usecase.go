package usecase

import (
	"context"
	"errors"
	"time"

	"petclinic-api/internal/converter"
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/delivery/http/middleware"
	"petclinic-api/internal/domain/entity"
	"petclinic-api/internal/domain/repository"
	"petclinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentNotOwned     = errors.New("appointment does not belong to you")
	ErrAppointmentClosed       = errors.New("appointment is already completed or cancelled")
	ErrAppointmentNotConfirmed = errors.New("appointment is not confirmed")
	ErrScheduledInPast         = errors.New("cannot book an appointment in the past")
	ErrNotAssignedDoctor       = errors.New("appointment is assigned to another doctor")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context, filter *repository.AppointmentFilter, page, limit int) ([]dto.AppointmentResponse, int64, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) error
	CompleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	petRepo         repository.PetRepository
	optionRepo      repository.ServiceOptionRepository
	paymentRepo     repository.PaymentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	petRepo repository.PetRepository,
	optionRepo repository.ServiceOptionRepository,
	paymentRepo repository.PaymentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		petRepo:         petRepo,
		optionRepo:      optionRepo,
		paymentRepo:     paymentRepo,
		auditService:    auditService,
	}
}

// CreateAppointment books a visit for one of the caller's pets. The pending
// payment row is created in the same transaction so a booking never exists
// without its bill.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), req.PetID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", req.PetID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerID != userID {
		return nil, ErrPetNotOwned
	}

	option, err := u.optionRepo.FindByID(u.db.WithContext(ctx), req.ServiceOptionID)
	if err != nil {
		u.log.Warnf("Failed to find service option %s: %+v", req.ServiceOptionID, err)
		return nil, err
	}
	if option == nil || (option.IsActive != nil && !*option.IsActive) {
		return nil, ErrServiceOptionNotFound
	}

	if req.ScheduledAt.Before(time.Now()) {
		return nil, ErrScheduledInPast
	}

	appointment := &entity.Appointment{
		CustomerID:      userID,
		PetID:           req.PetID,
		ServiceOptionID: req.ServiceOptionID,
		ScheduledAt:     req.ScheduledAt,
		Symptoms:        req.Symptoms,
		Status:          entity.AppointmentStatusPending,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}

		payment := &entity.Payment{
			AppointmentID: appointment.ID,
			Amount:        option.Price,
			Status:        entity.PaymentStatusPending,
		}
		if err := u.paymentRepo.Create(tx, payment); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment)
	})
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, pet=%s, scheduled_at=%s", appointment.ID, req.PetID, req.ScheduledAt)
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByCustomerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for customer %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// GetDoctorAppointments lists the caller's worklist: appointments whose
// medical record names them as the doctor
func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if roleID == entity.RoleIDCustomer && appointment.CustomerID != userID {
		return nil, ErrAppointmentNotOwned
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, filter *repository.AppointmentFilter, page, limit int) ([]dto.AppointmentResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

// CancelAppointment is a guarded status transition, never a delete. Customers
// cancel their own bookings, back-office roles cancel any. A still-pending
// payment is voided alongside.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if roleID == entity.RoleIDCustomer && appointment.CustomerID != userID {
		return ErrAppointmentNotOwned
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := u.appointmentRepo.Cancel(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAppointmentClosed
		}

		if _, err := u.paymentRepo.VoidByAppointmentID(tx, id); err != nil {
			return err
		}

		return u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentCancel, "appointment", id.String(),
			appointment.Status, entity.AppointmentStatusCancelled)
	})
	if err != nil {
		if !errors.Is(err, ErrAppointmentClosed) {
			u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		}
		return err
	}

	u.log.Infof("Appointment cancelled: id=%s", id)
	return nil
}

// CompleteAppointment lets the assigned doctor close out a confirmed visit
func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, id uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.MedicalRecord == nil || appointment.MedicalRecord.DoctorID != userID {
		return ErrNotAssignedDoctor
	}

	affected, err := u.appointmentRepo.Complete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotConfirmed
	}

	u.log.Infof("Appointment completed: id=%s, doctor=%s", id, userID)
	return nil
}
