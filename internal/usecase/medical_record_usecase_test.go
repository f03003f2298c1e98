package usecase

import (
	"testing"

	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUpdateRecord_AssignedDoctorWritesNotes(t *testing.T) {
	recordID := uuid.New()
	doctorID := uuid.New()

	var saved *entity.MedicalRecord
	recordRepo := &MockMedicalRecordRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			return &entity.MedicalRecord{ID: recordID, DoctorID: doctorID, Diagnosis: "pending review"}, nil
		},
		UpdateFunc: func(db *gorm.DB, record *entity.MedicalRecord) error {
			saved = record
			return nil
		},
	}

	uc := NewMedicalRecordUsecase(newTestDB(), newTestLogger(), recordRepo, &MockPetRepository{})

	resp, err := uc.UpdateRecord(newTestContext(doctorID, entity.RoleIDDoctor), recordID, &dto.UpdateMedicalRecordRequest{
		Diagnosis:   "otitis externa",
		NextCheckup: "2026-10-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, "otitis externa", resp.Diagnosis)
	assert.Equal(t, "otitis externa", saved.Diagnosis)
	assert.NotNil(t, saved.NextCheckup)
	assert.Equal(t, "2026-10-15", saved.NextCheckup.Format("2006-01-02"))
}

func TestUpdateRecord_OtherDoctorRejected(t *testing.T) {
	recordID := uuid.New()

	recordRepo := &MockMedicalRecordRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			return &entity.MedicalRecord{ID: recordID, DoctorID: uuid.New()}, nil
		},
	}

	uc := NewMedicalRecordUsecase(newTestDB(), newTestLogger(), recordRepo, &MockPetRepository{})

	_, err := uc.UpdateRecord(newTestContext(uuid.New(), entity.RoleIDDoctor), recordID, &dto.UpdateMedicalRecordRequest{
		Diagnosis: "otitis externa",
	})

	assert.ErrorIs(t, err, ErrRecordNotYours)
}

func TestUpdateRecord_MissingRecord(t *testing.T) {
	recordRepo := &MockMedicalRecordRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
			return nil, nil
		},
	}

	uc := NewMedicalRecordUsecase(newTestDB(), newTestLogger(), recordRepo, &MockPetRepository{})

	_, err := uc.UpdateRecord(newTestContext(uuid.New(), entity.RoleIDDoctor), uuid.New(), &dto.UpdateMedicalRecordRequest{})

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGetRecordsByPet_CustomerScopedToOwnPets(t *testing.T) {
	petID := uuid.New()
	ownerID := uuid.New()

	petRepo := &MockPetRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
			return &entity.Pet{ID: petID, OwnerID: ownerID}, nil
		},
	}
	recordRepo := &MockMedicalRecordRepository{
		FindByPetIDFunc: func(db *gorm.DB, id uuid.UUID) ([]entity.MedicalRecord, error) {
			return []entity.MedicalRecord{{ID: uuid.New(), DoctorID: uuid.New()}}, nil
		},
	}

	uc := NewMedicalRecordUsecase(newTestDB(), newTestLogger(), recordRepo, petRepo)

	_, err := uc.GetRecordsByPet(newTestContext(uuid.New(), entity.RoleIDCustomer), petID)
	assert.ErrorIs(t, err, ErrPetNotOwned)

	resp, err := uc.GetRecordsByPet(newTestContext(ownerID, entity.RoleIDCustomer), petID)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	// doctors read any pet's history
	resp, err = uc.GetRecordsByPet(newTestContext(uuid.New(), entity.RoleIDDoctor), petID)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}
