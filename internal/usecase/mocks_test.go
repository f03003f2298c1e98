package usecase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"petclinic-api/internal/delivery/http/middleware"
	"petclinic-api/internal/domain/entity"
	"petclinic-api/internal/domain/repository"
	"petclinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// newTestDB builds a gorm.DB that supports WithContext without a live
// connection. Only usecase paths that never reach the connection pool can
// use it.
func newTestDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestContext(userID uuid.UUID, roleID int) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.RoleIDKey, roleID)
}

// --- MockAppointmentRepository ---

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc           func(db *gorm.DB, appointment *entity.Appointment) error
	FindByIDFunc         func(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByCustomerIDFunc func(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorIDFunc   func(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindAllFunc          func(db *gorm.DB, filter *repository.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error)
	ConfirmFunc          func(db *gorm.DB, id uuid.UUID) (int64, error)
	CancelFunc           func(db *gorm.DB, id uuid.UUID) (int64, error)
	CompleteFunc         func(db *gorm.DB, id uuid.UUID) (int64, error)

	ConfirmCallCount int32
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByCustomerIDFunc != nil {
		return m.FindByCustomerIDFunc(db, customerID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(db, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB, filter *repository.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, filter, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockAppointmentRepository) Confirm(db *gorm.DB, id uuid.UUID) (int64, error) {
	atomic.AddInt32(&m.ConfirmCallCount, 1)
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(db, id)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) Cancel(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.CancelFunc != nil {
		return m.CancelFunc(db, id)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) Complete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(db, id)
	}
	return 1, nil
}

// --- MockMedicalRecordRepository ---

var _ repository.MedicalRecordRepository = (*MockMedicalRecordRepository)(nil)

type MockMedicalRecordRepository struct {
	CreateFunc              func(db *gorm.DB, record *entity.MedicalRecord) error
	FindByIDFunc            func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	FindByAppointmentIDFunc func(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalRecord, error)
	FindByDoctorIDFunc      func(db *gorm.DB, doctorID uuid.UUID) ([]entity.MedicalRecord, error)
	FindByPetIDFunc         func(db *gorm.DB, petID uuid.UUID) ([]entity.MedicalRecord, error)
	UpdateDoctorFunc        func(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) error
	UpdateFunc              func(db *gorm.DB, record *entity.MedicalRecord) error

	CreateCallCount       int32
	UpdateDoctorCallCount int32
}

func (m *MockMedicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(db, record)
	}
	return nil
}

func (m *MockMedicalRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockMedicalRecordRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalRecord, error) {
	if m.FindByAppointmentIDFunc != nil {
		return m.FindByAppointmentIDFunc(db, appointmentID)
	}
	return nil, nil
}

func (m *MockMedicalRecordRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.MedicalRecord, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(db, doctorID)
	}
	return nil, nil
}

func (m *MockMedicalRecordRepository) FindByPetID(db *gorm.DB, petID uuid.UUID) ([]entity.MedicalRecord, error) {
	if m.FindByPetIDFunc != nil {
		return m.FindByPetIDFunc(db, petID)
	}
	return nil, nil
}

func (m *MockMedicalRecordRepository) UpdateDoctor(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) error {
	atomic.AddInt32(&m.UpdateDoctorCallCount, 1)
	if m.UpdateDoctorFunc != nil {
		return m.UpdateDoctorFunc(db, id, doctorID)
	}
	return nil
}

func (m *MockMedicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, record)
	}
	return nil
}

// --- MockUserRepository ---

var _ repository.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	CreateFunc      func(db *gorm.DB, user *entity.User) error
	FindByIDFunc    func(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc func(db *gorm.DB, email string) (*entity.User, error)
	FindByRoleFunc  func(db *gorm.DB, roleID int) ([]entity.User, error)
	UpdateFunc      func(db *gorm.DB, user *entity.User) error
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(db, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByRole(db *gorm.DB, roleID int) ([]entity.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(db, roleID)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, user)
	}
	return nil
}

// --- MockPetRepository ---

var _ repository.PetRepository = (*MockPetRepository)(nil)

type MockPetRepository struct {
	CreateFunc                func(db *gorm.DB, pet *entity.Pet) error
	FindByIDFunc              func(db *gorm.DB, id uuid.UUID) (*entity.Pet, error)
	FindByOwnerIDFunc         func(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error)
	FindAllFunc               func(db *gorm.DB, limit, offset int) ([]entity.Pet, int64, error)
	UpdateFunc                func(db *gorm.DB, pet *entity.Pet) error
	DeleteFunc                func(db *gorm.DB, id uuid.UUID) error
	CountOpenAppointmentsFunc func(db *gorm.DB, petID uuid.UUID) (int64, error)
}

func (m *MockPetRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, pet)
	}
	return nil
}

func (m *MockPetRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPetRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error) {
	if m.FindByOwnerIDFunc != nil {
		return m.FindByOwnerIDFunc(db, ownerID)
	}
	return nil, nil
}

func (m *MockPetRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Pet, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockPetRepository) Update(db *gorm.DB, pet *entity.Pet) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, pet)
	}
	return nil
}

func (m *MockPetRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id)
	}
	return nil
}

func (m *MockPetRepository) CountOpenAppointments(db *gorm.DB, petID uuid.UUID) (int64, error) {
	if m.CountOpenAppointmentsFunc != nil {
		return m.CountOpenAppointmentsFunc(db, petID)
	}
	return 0, nil
}

// --- MockServiceOptionRepository ---

var _ repository.ServiceOptionRepository = (*MockServiceOptionRepository)(nil)

type MockServiceOptionRepository struct {
	CreateFunc          func(db *gorm.DB, option *entity.ServiceOption) error
	FindByIDFunc        func(db *gorm.DB, id uuid.UUID) (*entity.ServiceOption, error)
	FindByServiceIDFunc func(db *gorm.DB, serviceID uuid.UUID, activeOnly bool) ([]entity.ServiceOption, error)
	UpdateFunc          func(db *gorm.DB, option *entity.ServiceOption) error
	DeleteFunc          func(db *gorm.DB, id uuid.UUID) (int64, error)
}

func (m *MockServiceOptionRepository) Create(db *gorm.DB, option *entity.ServiceOption) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, option)
	}
	return nil
}

func (m *MockServiceOptionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceOption, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockServiceOptionRepository) FindByServiceID(db *gorm.DB, serviceID uuid.UUID, activeOnly bool) ([]entity.ServiceOption, error) {
	if m.FindByServiceIDFunc != nil {
		return m.FindByServiceIDFunc(db, serviceID, activeOnly)
	}
	return nil, nil
}

func (m *MockServiceOptionRepository) Update(db *gorm.DB, option *entity.ServiceOption) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, option)
	}
	return nil
}

func (m *MockServiceOptionRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id)
	}
	return 1, nil
}

// --- MockPaymentRepository ---

var _ repository.PaymentRepository = (*MockPaymentRepository)(nil)

type MockPaymentRepository struct {
	CreateFunc              func(db *gorm.DB, payment *entity.Payment) error
	FindByIDFunc            func(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByAppointmentIDFunc func(db *gorm.DB, appointmentID uuid.UUID) (*entity.Payment, error)
	FindAllFunc             func(db *gorm.DB, status entity.PaymentStatus, limit, offset int) ([]entity.Payment, int64, error)
	SettleFunc              func(db *gorm.DB, id uuid.UUID, method string, paidAt time.Time) (int64, error)
	VoidByAppointmentIDFunc func(db *gorm.DB, appointmentID uuid.UUID) (int64, error)
}

func (m *MockPaymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, payment)
	}
	return nil
}

func (m *MockPaymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPaymentRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Payment, error) {
	if m.FindByAppointmentIDFunc != nil {
		return m.FindByAppointmentIDFunc(db, appointmentID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) FindAll(db *gorm.DB, status entity.PaymentStatus, limit, offset int) ([]entity.Payment, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, status, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockPaymentRepository) Settle(db *gorm.DB, id uuid.UUID, method string, paidAt time.Time) (int64, error) {
	if m.SettleFunc != nil {
		return m.SettleFunc(db, id, method, paidAt)
	}
	return 1, nil
}

func (m *MockPaymentRepository) VoidByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (int64, error) {
	if m.VoidByAppointmentIDFunc != nil {
		return m.VoidByAppointmentIDFunc(db, appointmentID)
	}
	return 1, nil
}

// --- MockAuditService ---

var _ service.AuditService = (*MockAuditService)(nil)

type MockAuditService struct {
	LogCreateFunc func(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdateFunc func(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDeleteFunc func(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error

	Actions []string
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	if m.LogCreateFunc != nil {
		return m.LogCreateFunc(ctx, tx, userID, action, entityName, entityID, newValue)
	}
	return nil
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	if m.LogUpdateFunc != nil {
		return m.LogUpdateFunc(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
	}
	return nil
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	m.Actions = append(m.Actions, action)
	if m.LogDeleteFunc != nil {
		return m.LogDeleteFunc(ctx, tx, userID, action, entityName, entityID, oldValue)
	}
	return nil
}
