package usecase

import (
	"testing"

	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreatePet_SetsOwnerFromContext(t *testing.T) {
	ownerID := uuid.New()

	var created *entity.Pet
	petRepo := &MockPetRepository{
		CreateFunc: func(db *gorm.DB, pet *entity.Pet) error {
			created = pet
			return nil
		},
	}

	uc := NewPetUsecase(newTestDB(), newTestLogger(), petRepo)

	resp, err := uc.CreatePet(newTestContext(ownerID, entity.RoleIDCustomer), &dto.CreatePetRequest{
		Name:        "Milo",
		Species:     "dog",
		Breed:       "beagle",
		Gender:      "M",
		DateOfBirth: "2021-04-12",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, ownerID, created.OwnerID)
	assert.NotNil(t, created.DateOfBirth)
	assert.Equal(t, "2021-04-12", created.DateOfBirth.Format("2006-01-02"))
}

func TestCreatePet_RejectsBadDateOfBirth(t *testing.T) {
	petRepo := &MockPetRepository{}
	uc := NewPetUsecase(newTestDB(), newTestLogger(), petRepo)

	_, err := uc.CreatePet(newTestContext(uuid.New(), entity.RoleIDCustomer), &dto.CreatePetRequest{
		Name:        "Milo",
		Species:     "dog",
		DateOfBirth: "12/04/2021",
	})

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestGetPet_CustomerCannotReadOthersPet(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	petID := uuid.New()

	petRepo := &MockPetRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
			return &entity.Pet{ID: petID, OwnerID: ownerID, Name: "Milo"}, nil
		},
	}

	uc := NewPetUsecase(newTestDB(), newTestLogger(), petRepo)

	_, err := uc.GetPet(newTestContext(strangerID, entity.RoleIDCustomer), petID)
	assert.ErrorIs(t, err, ErrPetNotOwned)

	// staff can read any pet
	resp, err := uc.GetPet(newTestContext(strangerID, entity.RoleIDStaff), petID)
	assert.NoError(t, err)
	assert.Equal(t, "Milo", resp.Name)
}

func TestDeletePet_BlockedByOpenAppointments(t *testing.T) {
	ownerID := uuid.New()
	petID := uuid.New()

	deleted := false
	petRepo := &MockPetRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
			return &entity.Pet{ID: petID, OwnerID: ownerID}, nil
		},
		CountOpenAppointmentsFunc: func(db *gorm.DB, id uuid.UUID) (int64, error) {
			return 2, nil
		},
		DeleteFunc: func(db *gorm.DB, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	uc := NewPetUsecase(newTestDB(), newTestLogger(), petRepo)

	err := uc.DeletePet(newTestContext(ownerID, entity.RoleIDCustomer), petID)

	assert.ErrorIs(t, err, ErrPetHasOpenAppointments)
	assert.False(t, deleted)
}

func TestDeletePet_RemovesIdlePet(t *testing.T) {
	ownerID := uuid.New()
	petID := uuid.New()

	var deletedID uuid.UUID
	petRepo := &MockPetRepository{
		FindByIDFunc: func(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
			return &entity.Pet{ID: petID, OwnerID: ownerID}, nil
		},
		DeleteFunc: func(db *gorm.DB, id uuid.UUID) error {
			deletedID = id
			return nil
		},
	}

	uc := NewPetUsecase(newTestDB(), newTestLogger(), petRepo)

	err := uc.DeletePet(newTestContext(ownerID, entity.RoleIDCustomer), petID)

	assert.NoError(t, err)
	assert.Equal(t, petID, deletedID)
}
