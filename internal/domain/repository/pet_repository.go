package repository

import (
	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Pet, int64, error)
	Update(db *gorm.DB, pet *entity.Pet) error
	Delete(db *gorm.DB, id uuid.UUID) error
	CountOpenAppointments(db *gorm.DB, petID uuid.UUID) (int64, error)
}
