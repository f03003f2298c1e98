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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPetNotFound            = errors.New("pet not found")
	ErrPetNotOwned            = errors.New("pet does not belong to you")
	ErrPetHasOpenAppointments = errors.New("pet has open appointments")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
)

type PetUsecase interface {
	CreatePet(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	GetMyPets(ctx context.Context) (*dto.PetListResponse, error)
	GetPet(ctx context.Context, petID uuid.UUID) (*dto.PetResponse, error)
	GetAllPets(ctx context.Context, page, limit int) ([]dto.PetResponse, int64, error)
	UpdatePet(ctx context.Context, petID uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	DeletePet(ctx context.Context, petID uuid.UUID) error
}

type petUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	petRepo repository.PetRepository
}

func NewPetUsecase(db *gorm.DB, log *logrus.Logger, petRepo repository.PetRepository) PetUsecase {
	return &petUsecase{
		db:      db,
		log:     log,
		petRepo: petRepo,
	}
}

func (u *petUsecase) CreatePet(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	pet := &entity.Pet{
		OwnerID:     userID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Gender:      req.Gender,
		DateOfBirth: dob,
		Notes:       req.Notes,
	}

	if err := u.petRepo.Create(u.db.WithContext(ctx), pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetMyPets(ctx context.Context) (*dto.PetListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pets, err := u.petRepo.FindByOwnerID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find pets for owner %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) GetPet(ctx context.Context, petID uuid.UUID) (*dto.PetResponse, error) {
	pet, err := u.findVisiblePet(ctx, petID)
	if err != nil {
		return nil, err
	}
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetAllPets(ctx context.Context, page, limit int) ([]dto.PetResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	pets, total, err := u.petRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all pets: %+v", err)
		return nil, 0, err
	}

	return converter.PetsToResponses(pets), total, nil
}

func (u *petUsecase) UpdatePet(ctx context.Context, petID uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	pet, err := u.findOwnedPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	pet.Name = req.Name
	pet.Species = req.Species
	pet.Breed = req.Breed
	pet.Gender = req.Gender
	pet.DateOfBirth = dob
	pet.Notes = req.Notes

	if err := u.petRepo.Update(u.db.WithContext(ctx), pet); err != nil {
		u.log.Warnf("Failed to update pet %s: %+v", petID, err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) DeletePet(ctx context.Context, petID uuid.UUID) error {
	pet, err := u.findOwnedPet(ctx, petID)
	if err != nil {
		return err
	}

	open, err := u.petRepo.CountOpenAppointments(u.db.WithContext(ctx), pet.ID)
	if err != nil {
		u.log.Warnf("Failed to count open appointments for pet %s: %+v", petID, err)
		return err
	}
	if open > 0 {
		return ErrPetHasOpenAppointments
	}

	return u.petRepo.Delete(u.db.WithContext(ctx), pet.ID)
}

// findOwnedPet resolves a pet and verifies the caller owns it
func (u *petUsecase) findOwnedPet(ctx context.Context, petID uuid.UUID) (*entity.Pet, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), petID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerID != userID {
		return nil, ErrPetNotOwned
	}
	return pet, nil
}

// findVisiblePet resolves a pet readable by the caller: owners see their own,
// back-office roles see all
func (u *petUsecase) findVisiblePet(ctx context.Context, petID uuid.UUID) (*entity.Pet, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), petID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if roleID == entity.RoleIDCustomer && pet.OwnerID != userID {
		return nil, ErrPetNotOwned
	}
	return pet, nil
}

// parseOptionalDate parses YYYY-MM-DD, treating empty as absent
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
