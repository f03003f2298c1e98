package repository

import (
	"errors"

	"petclinic-api/internal/domain/entity"
	domainRepo "petclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	err := db.Preload("Options").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindAll(db *gorm.DB, activeOnly bool) ([]entity.Service, error) {
	query := db.Preload("Options")
	if activeOnly {
		query = query.Where("is_active = ?", true).
			Preload("Options", "is_active = ?", true)
	}

	var services []entity.Service
	err := query.Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Save(service).Error
}

func (r *serviceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Service{})
	return result.RowsAffected, result.Error
}

type serviceOptionRepository struct{}

func NewServiceOptionRepository() domainRepo.ServiceOptionRepository {
	return &serviceOptionRepository{}
}

func (r *serviceOptionRepository) Create(db *gorm.DB, option *entity.ServiceOption) error {
	return db.Create(option).Error
}

func (r *serviceOptionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceOption, error) {
	var option entity.ServiceOption
	err := db.Preload("Service").Where("id = ?", id).First(&option).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

func (r *serviceOptionRepository) FindByServiceID(db *gorm.DB, serviceID uuid.UUID, activeOnly bool) ([]entity.ServiceOption, error) {
	query := db.Where("service_id = ?", serviceID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var options []entity.ServiceOption
	err := query.Order("name ASC").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *serviceOptionRepository) Update(db *gorm.DB, option *entity.ServiceOption) error {
	return db.Save(option).Error
}

func (r *serviceOptionRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.ServiceOption{})
	return result.RowsAffected, result.Error
}
