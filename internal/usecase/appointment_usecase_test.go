package usecase

import (
	"testing"

	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAppointmentFixture(appointmentRepo *MockAppointmentRepository) AppointmentUsecase {
	return NewAppointmentUsecase(
		newTestDB(),
		newTestLogger(),
		appointmentRepo,
		&MockPetRepository{},
		&MockServiceOptionRepository{},
		&MockPaymentRepository{},
		&MockAuditService{},
	)
}

func TestGetAppointment_CustomerOnlySeesOwn(t *testing.T) {
	appointmentID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: appointmentID, CustomerID: ownerID, Status: entity.AppointmentStatusPending}, nil
		},
	}

	uc := newAppointmentFixture(appointmentRepo)

	_, err := uc.GetAppointment(newTestContext(strangerID, entity.RoleIDCustomer), appointmentID)
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)

	resp, err := uc.GetAppointment(newTestContext(ownerID, entity.RoleIDCustomer), appointmentID)
	assert.NoError(t, err)
	assert.Equal(t, appointmentID, resp.ID)

	// back office reads any appointment
	_, err = uc.GetAppointment(newTestContext(strangerID, entity.RoleIDStaff), appointmentID)
	assert.NoError(t, err)
}

func TestCompleteAppointment_OnlyAssignedDoctor(t *testing.T) {
	appointmentID := uuid.New()
	assignedDoctorID := uuid.New()
	otherDoctorID := uuid.New()

	completed := false
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{
				ID:            appointmentID,
				Status:        entity.AppointmentStatusConfirmed,
				MedicalRecord: &entity.MedicalRecord{AppointmentID: appointmentID, DoctorID: assignedDoctorID},
			}, nil
		},
		CompleteFunc: func(db *gorm.DB, id uuid.UUID) (int64, error) {
			completed = true
			return 1, nil
		},
	}

	uc := newAppointmentFixture(appointmentRepo)

	err := uc.CompleteAppointment(newTestContext(otherDoctorID, entity.RoleIDDoctor), appointmentID)
	assert.ErrorIs(t, err, ErrNotAssignedDoctor)
	assert.False(t, completed)

	err = uc.CompleteAppointment(newTestContext(assignedDoctorID, entity.RoleIDDoctor), appointmentID)
	assert.NoError(t, err)
	assert.True(t, completed)
}

func TestCompleteAppointment_RequiresConfirmedStatus(t *testing.T) {
	appointmentID := uuid.New()
	doctorID := uuid.New()

	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{
				ID:            appointmentID,
				Status:        entity.AppointmentStatusPending,
				MedicalRecord: &entity.MedicalRecord{AppointmentID: appointmentID, DoctorID: doctorID},
			}, nil
		},
		CompleteFunc: func(db *gorm.DB, id uuid.UUID) (int64, error) {
			// the conditional update matches nothing while pending
			return 0, nil
		},
	}

	uc := newAppointmentFixture(appointmentRepo)

	err := uc.CompleteAppointment(newTestContext(doctorID, entity.RoleIDDoctor), appointmentID)
	assert.ErrorIs(t, err, ErrAppointmentNotConfirmed)
}

func TestCompleteAppointment_UnassignedAppointmentRejected(t *testing.T) {
	appointmentID := uuid.New()

	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
			return &entity.Appointment{ID: appointmentID, Status: entity.AppointmentStatusPending}, nil
		},
	}

	uc := newAppointmentFixture(appointmentRepo)

	err := uc.CompleteAppointment(newTestContext(uuid.New(), entity.RoleIDDoctor), appointmentID)
	assert.ErrorIs(t, err, ErrNotAssignedDoctor)
}

func TestGetMyAppointments_ScopedToCaller(t *testing.T) {
	customerID := uuid.New()

	appointmentRepo := &MockAppointmentRepository{
		FindByCustomerIDFunc: func(db *gorm.DB, id uuid.UUID) ([]entity.Appointment, error) {
			assert.Equal(t, customerID, id)
			return []entity.Appointment{
				{ID: uuid.New(), CustomerID: customerID, Status: entity.AppointmentStatusPending},
				{ID: uuid.New(), CustomerID: customerID, Status: entity.AppointmentStatusConfirmed},
			}, nil
		},
	}

	uc := newAppointmentFixture(appointmentRepo)

	resp, err := uc.GetMyAppointments(newTestContext(customerID, entity.RoleIDCustomer))

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
