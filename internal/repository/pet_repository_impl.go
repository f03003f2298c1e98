package repository

import (
	"errors"

	"petclinic-api/internal/domain/entity"
	domainRepo "petclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	return db.Create(pet).Error
}

func (r *petRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Where("id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Pet, int64, error) {
	var pets []entity.Pet
	var total int64

	if err := db.Model(&entity.Pet{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Owner").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, 0, err
	}
	return pets, total, nil
}

func (r *petRepository) Update(db *gorm.DB, pet *entity.Pet) error {
	return db.Save(pet).Error
}

func (r *petRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Pet{}).Error
}

func (r *petRepository) CountOpenAppointments(db *gorm.DB, petID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("pet_id = ? AND status NOT IN ?", petID,
			[]entity.AppointmentStatus{entity.AppointmentStatusCancelled, entity.AppointmentStatusCompleted}).
		Count(&count).Error
	return count, err
}
