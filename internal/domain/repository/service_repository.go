package repository

import (
	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type ServiceOptionRepository interface {
	Create(db *gorm.DB, option *entity.ServiceOption) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceOption, error)
	FindByServiceID(db *gorm.DB, serviceID uuid.UUID, activeOnly bool) ([]entity.ServiceOption, error)
	Update(db *gorm.DB, option *entity.ServiceOption) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
