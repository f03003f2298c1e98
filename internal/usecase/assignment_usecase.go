package usecase

import (
	"context"
	"errors"

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
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrAssignmentConflict = errors.New("doctor assignment could not be reconciled")
)

// uniqueMedicalRecordConstraint guards one medical record per appointment
const uniqueMedicalRecordConstraint = "uq_medical_records_appointment"

type AssignmentUsecase interface {
	AssignDoctor(ctx context.Context, appointmentID uuid.UUID, req *dto.AssignDoctorRequest) (*dto.AppointmentResponse, error)
	ListDoctors(ctx context.Context) (*dto.UserListResponse, error)
}

type assignmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.MedicalRecordRepository
	userRepo        repository.UserRepository
	auditService    service.AuditService
}

func NewAssignmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.MedicalRecordRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AssignmentUsecase {
	return &assignmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
		userRepo:        userRepo,
		auditService:    auditService,
	}
}

// AssignDoctor makes the given doctor responsible for an appointment and
// confirms it. The medical record is the carrier of that association; the
// unique index on appointment_id guarantees at most one record per
// appointment even when two staff members assign concurrently. The
// appointment status only flips after the record write has succeeded, so a
// failed assignment leaves the appointment untouched.
func (u *assignmentUsecase) AssignDoctor(ctx context.Context, appointmentID uuid.UUID, req *dto.AssignDoctorRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsClosed() {
		return nil, ErrAppointmentClosed
	}

	doctor, err := u.userRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrDoctorNotFound
	}
	if doctor.IsActive != nil && !*doctor.IsActive {
		return nil, ErrAccountDisabled
	}

	previousDoctor, err := u.reconcileRecord(db, appointmentID, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to reconcile medical record for appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	affected, err := u.appointmentRepo.Confirm(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to confirm appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		// closed underneath us between the record write and the confirm
		return nil, ErrAppointmentClosed
	}

	// audit failure does not undo the assignment
	_ = u.auditService.LogUpdate(ctx, db, &userID, entity.AuditActionDoctorAssign, "appointment", appointmentID.String(),
		previousDoctor, req.DoctorID)

	full, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return nil, ErrAppointmentNotFound
	}

	u.log.Infof("Doctor assigned: appointment=%s, doctor=%s", appointmentID, req.DoctorID)
	return converter.AppointmentToResponse(full), nil
}

// reconcileRecord converges on exactly one medical record carrying the chosen
// doctor. Existing record: update in place. No record: insert, and if a
// concurrent assigner inserted first the unique index rejects ours with a
// duplicate key error; re-fetch the winner's row and update it instead. One
// fallback is enough: once a row exists for the appointment it is never
// deleted, so the second lookup cannot miss.
func (u *assignmentUsecase) reconcileRecord(db *gorm.DB, appointmentID, doctorID uuid.UUID) (*uuid.UUID, error) {
	record, err := u.recordRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		return nil, err
	}

	if record != nil {
		previous := record.DoctorID
		if err := u.recordRepo.UpdateDoctor(db, record.ID, doctorID); err != nil {
			return nil, err
		}
		return &previous, nil
	}

	record = &entity.MedicalRecord{
		AppointmentID: appointmentID,
		DoctorID:      doctorID,
	}
	err = u.recordRepo.Create(db, record)
	if err == nil {
		return nil, nil
	}
	if !isDuplicateKeyError(err, uniqueMedicalRecordConstraint) {
		return nil, err
	}

	u.log.Infof("Lost medical record insert race for appointment %s, updating winner's row", appointmentID)

	record, err = u.recordRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrAssignmentConflict
	}

	previous := record.DoctorID
	if err := u.recordRepo.UpdateDoctor(db, record.ID, doctorID); err != nil {
		return nil, err
	}
	return &previous, nil
}

// ListDoctors returns the active doctors staff can assign
func (u *assignmentUsecase) ListDoctors(ctx context.Context) (*dto.UserListResponse, error) {
	doctors, err := u.userRepo.FindByRole(u.db.WithContext(ctx), entity.RoleIDDoctor)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	active := make([]entity.User, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.IsActive == nil || *doctor.IsActive {
			active = append(active, doctor)
		}
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(active),
		Total: len(active),
	}, nil
}
