package usecase

import (
	"context"
	"errors"

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
	ErrRecordNotFound = errors.New("medical record not found")
	ErrRecordNotYours = errors.New("medical record belongs to another doctor")
)

type MedicalRecordUsecase interface {
	UpdateRecord(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetMyRecords(ctx context.Context) (*dto.MedicalRecordListResponse, error)
	GetRecordsByPet(ctx context.Context, petID uuid.UUID) (*dto.MedicalRecordListResponse, error)
}

type medicalRecordUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
	petRepo    repository.PetRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	petRepo repository.PetRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:         db,
		log:        log,
		recordRepo: recordRepo,
		petRepo:    petRepo,
	}
}

// UpdateRecord fills in clinical notes. Only the assigned doctor may write
// them; the doctor association itself is managed by the assignment flow.
func (u *medicalRecordUsecase) UpdateRecord(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical record %s: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.DoctorID != userID {
		return nil, ErrRecordNotYours
	}

	nextCheckup, err := parseOptionalDate(req.NextCheckup)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if nextCheckup != nil {
		record.NextCheckup = nextCheckup
	}

	if err := u.recordRepo.Update(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to update medical record %s: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Medical record updated: id=%s, doctor=%s", id, userID)
	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetMyRecords(ctx context.Context) (*dto.MedicalRecordListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	records, err := u.recordRepo.FindByDoctorID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find medical records for doctor %s: %+v", userID, err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

// GetRecordsByPet returns a pet's medical history. Customers only see their
// own pets; clinic roles see any pet.
func (u *medicalRecordUsecase) GetRecordsByPet(ctx context.Context, petID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
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

	records, err := u.recordRepo.FindByPetID(u.db.WithContext(ctx), petID)
	if err != nil {
		u.log.Warnf("Failed to find medical records for pet %s: %+v", petID, err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}
