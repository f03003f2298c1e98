package usecase

import (
	"errors"
	"sync/atomic"
	"testing"

	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func activeDoctor(id uuid.UUID) *entity.User {
	active := true
	return &entity.User{
		ID:       id,
		FullName: "Dr. Reyes",
		RoleID:   entity.RoleIDDoctor,
		IsActive: &active,
	}
}

func pendingAppointment(id uuid.UUID) *entity.Appointment {
	return &entity.Appointment{
		ID:     id,
		Status: entity.AppointmentStatusPending,
	}
}

func newAssignmentFixture(appointmentRepo *MockAppointmentRepository, recordRepo *MockMedicalRecordRepository, userRepo *MockUserRepository) (AssignmentUsecase, *MockAuditService) {
	audit := &MockAuditService{}
	uc := NewAssignmentUsecase(newTestDB(), newTestLogger(), appointmentRepo, recordRepo, userRepo, audit)
	return uc, audit
}

func TestAssignDoctor_CreatesRecordThenConfirms(t *testing.T) {
	appointmentID := uuid.New()
	doctorID := uuid.New()
	staffID := uuid.New()

	var createdRecord *entity.MedicalRecord
	confirmedAfterCreate := false

	recordRepo := &MockMedicalRecordRepository{
		FindByAppointmentIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			return nil, nil
		},
		CreateFunc: func(db *gorm.DB, record *entity.MedicalRecord) error {
			createdRecord = record
			return nil
		},
	}
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			appt := pendingAppointment(appointmentID)
			if atomic.LoadInt32(&recordRepo.CreateCallCount) > 0 {
				appt.Status = entity.AppointmentStatusConfirmed
				appt.MedicalRecord = &entity.MedicalRecord{AppointmentID: appointmentID, DoctorID: doctorID}
			}
			return appt, nil
		},
		ConfirmFunc: func(db *gorm.DB, id uuid.UUID) (int64, error) {
			confirmedAfterCreate = atomic.LoadInt32(&recordRepo.CreateCallCount) == 1
			return 1, nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			return activeDoctor(doctorID), nil
		},
	}

	uc, audit := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	resp, err := uc.AssignDoctor(newTestContext(staffID, entity.RoleIDStaff), appointmentID, &dto.AssignDoctorRequest{DoctorID: doctorID})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), resp.Status)
	assert.NotNil(t, createdRecord)
	assert.Equal(t, appointmentID, createdRecord.AppointmentID)
	assert.Equal(t, doctorID, createdRecord.DoctorID)
	assert.True(t, confirmedAfterCreate, "confirm must only run after the record insert")
	assert.EqualValues(t, 0, recordRepo.UpdateDoctorCallCount)
	assert.Contains(t, audit.Actions, entity.AuditActionDoctorAssign)
}

func TestAssignDoctor_UpdatesExistingRecordInPlace(t *testing.T) {
	appointmentID := uuid.New()
	recordID := uuid.New()
	oldDoctorID := uuid.New()
	newDoctorID := uuid.New()

	var updatedTo uuid.UUID

	recordRepo := &MockMedicalRecordRepository{
		FindByAppointmentIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			return &entity.MedicalRecord{ID: recordID, AppointmentID: appointmentID, DoctorID: oldDoctorID}, nil
		},
		UpdateDoctorFunc: func(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) error {
			assert.Equal(t, recordID, id)
			updatedTo = doctorID
			return nil
		},
	}
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return pendingAppointment(appointmentID), nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			return activeDoctor(newDoctorID), nil
		},
	}

	uc, _ := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	_, err := uc.AssignDoctor(newTestContext(uuid.New(), entity.RoleIDStaff), appointmentID, &dto.AssignDoctorRequest{DoctorID: newDoctorID})

	assert.NoError(t, err)
	assert.Equal(t, newDoctorID, updatedTo)
	assert.EqualValues(t, 0, recordRepo.CreateCallCount, "reassignment must never insert a second record")
	assert.EqualValues(t, 1, appointmentRepo.ConfirmCallCount)
}

func TestAssignDoctor_RecoversFromLostInsertRace(t *testing.T) {
	appointmentID := uuid.New()
	winnerRecordID := uuid.New()
	winnerDoctorID := uuid.New()
	ourDoctorID := uuid.New()

	lookups := 0

	recordRepo := &MockMedicalRecordRepository{
		FindByAppointmentIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			lookups++
			if lookups == 1 {
				// nothing there yet, we go down the insert path
				return nil, nil
			}
			// the concurrent assigner's row
			return &entity.MedicalRecord{ID: winnerRecordID, AppointmentID: appointmentID, DoctorID: winnerDoctorID}, nil
		},
		CreateFunc: func(db *gorm.DB, record *entity.MedicalRecord) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_medical_records_appointment"}
		},
		UpdateDoctorFunc: func(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) error {
			assert.Equal(t, winnerRecordID, id)
			assert.Equal(t, ourDoctorID, doctorID)
			return nil
		},
	}
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return pendingAppointment(appointmentID), nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			return activeDoctor(ourDoctorID), nil
		},
	}

	uc, _ := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	_, err := uc.AssignDoctor(newTestContext(uuid.New(), entity.RoleIDStaff), appointmentID, &dto.AssignDoctorRequest{DoctorID: ourDoctorID})

	assert.NoError(t, err)
	assert.Equal(t, 2, lookups, "conflict must trigger exactly one re-fetch")
	assert.EqualValues(t, 1, recordRepo.CreateCallCount)
	assert.EqualValues(t, 1, recordRepo.UpdateDoctorCallCount)
	assert.EqualValues(t, 1, appointmentRepo.ConfirmCallCount)
}

func TestAssignDoctor_InsertFailureLeavesStatusUntouched(t *testing.T) {
	appointmentID := uuid.New()
	doctorID := uuid.New()

	recordRepo := &MockMedicalRecordRepository{
		FindByAppointmentIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			return nil, nil
		},
		CreateFunc: func(db *gorm.DB, record *entity.MedicalRecord) error {
			return errors.New("connection reset")
		},
	}
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return pendingAppointment(appointmentID), nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			return activeDoctor(doctorID), nil
		},
	}

	uc, audit := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	_, err := uc.AssignDoctor(newTestContext(uuid.New(), entity.RoleIDStaff), appointmentID, &dto.AssignDoctorRequest{DoctorID: doctorID})

	assert.Error(t, err)
	assert.EqualValues(t, 0, appointmentRepo.ConfirmCallCount, "a failed record write must not flip the status")
	assert.Empty(t, audit.Actions)
}

func TestAssignDoctor_DuplicateOnOtherConstraintIsNotRetried(t *testing.T) {
	appointmentID := uuid.New()
	doctorID := uuid.New()

	lookups := 0

	recordRepo := &MockMedicalRecordRepository{
		FindByAppointmentIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			lookups++
			return nil, nil
		},
		CreateFunc: func(db *gorm.DB, record *entity.MedicalRecord) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "some_other_unique"}
		},
	}
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return pendingAppointment(appointmentID), nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			return activeDoctor(doctorID), nil
		},
	}

	uc, _ := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	_, err := uc.AssignDoctor(newTestContext(uuid.New(), entity.RoleIDStaff), appointmentID, &dto.AssignDoctorRequest{DoctorID: doctorID})

	assert.Error(t, err)
	assert.Equal(t, 1, lookups)
	assert.EqualValues(t, 0, appointmentRepo.ConfirmCallCount)
}

func TestAssignDoctor_ClosedAppointmentIsRejected(t *testing.T) {
	appointmentID := uuid.New()

	recordRepo := &MockMedicalRecordRepository{}
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: appointmentID, Status: entity.AppointmentStatusCancelled}, nil
		},
	}
	userRepo := &MockUserRepository{}

	uc, _ := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	_, err := uc.AssignDoctor(newTestContext(uuid.New(), entity.RoleIDStaff), appointmentID, &dto.AssignDoctorRequest{DoctorID: uuid.New()})

	assert.ErrorIs(t, err, ErrAppointmentClosed)
	assert.EqualValues(t, 0, recordRepo.CreateCallCount)
	assert.EqualValues(t, 0, recordRepo.UpdateDoctorCallCount)
}

func TestAssignDoctor_RejectsNonDoctorAssignee(t *testing.T) {
	appointmentID := uuid.New()
	staffUserID := uuid.New()

	recordRepo := &MockMedicalRecordRepository{}
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return pendingAppointment(appointmentID), nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			active := true
			return &entity.User{ID: staffUserID, RoleID: entity.RoleIDStaff, IsActive: &active}, nil
		},
	}

	uc, _ := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	_, err := uc.AssignDoctor(newTestContext(uuid.New(), entity.RoleIDStaff), appointmentID, &dto.AssignDoctorRequest{DoctorID: staffUserID})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.EqualValues(t, 0, recordRepo.CreateCallCount)
}

func TestAssignDoctor_ConcurrentCloseAfterRecordWrite(t *testing.T) {
	appointmentID := uuid.New()
	doctorID := uuid.New()

	recordRepo := &MockMedicalRecordRepository{
		FindByAppointmentIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			return nil, nil
		},
	}
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return pendingAppointment(appointmentID), nil
		},
		ConfirmFunc: func(db *gorm.DB, id uuid.UUID) (int64, error) {
			// cancelled between the record write and the confirm
			return 0, nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
			return activeDoctor(doctorID), nil
		},
	}

	uc, _ := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	_, err := uc.AssignDoctor(newTestContext(uuid.New(), entity.RoleIDStaff), appointmentID, &dto.AssignDoctorRequest{DoctorID: doctorID})

	assert.ErrorIs(t, err, ErrAppointmentClosed)
	assert.EqualValues(t, 1, recordRepo.CreateCallCount)
}

func TestListDoctors_FiltersInactive(t *testing.T) {
	appointmentRepo := &MockAppointmentRepository{}
	recordRepo := &MockMedicalRecordRepository{}

	active := true
	inactive := false
	userRepo := &MockUserRepository{
		FindByRoleFunc: func(db *gorm.DB, roleID int) ([]entity.User, error) {
			assert.Equal(t, entity.RoleIDDoctor, roleID)
			return []entity.User{
				{ID: uuid.New(), FullName: "Dr. One", RoleID: entity.RoleIDDoctor, IsActive: &active},
				{ID: uuid.New(), FullName: "Dr. Two", RoleID: entity.RoleIDDoctor, IsActive: &inactive},
			}, nil
		},
	}

	uc, _ := newAssignmentFixture(appointmentRepo, recordRepo, userRepo)

	resp, err := uc.ListDoctors(newTestContext(uuid.New(), entity.RoleIDStaff))

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Dr. One", resp.Users[0].FullName)
}
