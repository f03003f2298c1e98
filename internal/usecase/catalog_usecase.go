package usecase

import (
	"context"
	"errors"

	"petclinic-api/internal/converter"
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/delivery/http/middleware"
	"petclinic-api/internal/domain/entity"
	"petclinic-api/internal/domain/repository"
	"petclinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound       = errors.New("service not found")
	ErrServiceNameExists     = errors.New("service name already exists")
	ErrServiceOptionNotFound = errors.New("service option not found")
)

type CatalogUsecase interface {
	// Public catalog
	GetCatalog(ctx context.Context) (*dto.ServiceListResponse, error)

	// Admin service CRUD
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	// Admin service option CRUD
	CreateServiceOption(ctx context.Context, req *dto.CreateServiceOptionRequest) (*dto.ServiceOptionResponse, error)
	UpdateServiceOption(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceOptionRequest) (*dto.ServiceOptionResponse, error)
	DeleteServiceOption(ctx context.Context, id uuid.UUID) error
}

type catalogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	optionRepo   repository.ServiceOptionRepository
	catalogCache *service.CatalogCache
	auditService service.AuditService
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	optionRepo repository.ServiceOptionRepository,
	catalogCache *service.CatalogCache,
	auditService service.AuditService,
) CatalogUsecase {
	return &catalogUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		optionRepo:   optionRepo,
		catalogCache: catalogCache,
		auditService: auditService,
	}
}

// GetCatalog serves the public booking catalog: active services with their
// active options, Redis-cached
func (u *catalogUsecase) GetCatalog(ctx context.Context) (*dto.ServiceListResponse, error) {
	if services, found := u.catalogCache.GetServices(ctx); found {
		return &dto.ServiceListResponse{
			Services: converter.ServicesToResponses(services),
			Total:    len(services),
		}, nil
	}

	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx), true)
	if err != nil {
		u.log.Warnf("Failed to load catalog: %+v", err)
		return nil, err
	}

	u.catalogCache.SetServices(ctx, services)

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *catalogUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	svc := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    entity.ServiceCategory(req.Category),
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.serviceRepo.Create(tx, svc); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionServiceCreate, "service", svc.ID.String(), svc)
	})
	if err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrServiceNameExists
		}
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.catalogCache.Invalidate(ctx)
	return converter.ServiceToResponse(svc), nil
}

func (u *catalogUsecase) GetService(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *catalogUsecase) GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx), false)
	if err != nil {
		u.log.Warnf("Failed to find all services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *catalogUsecase) UpdateService(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	oldValue := *svc
	svc.Name = req.Name
	svc.Description = req.Description
	svc.Category = entity.ServiceCategory(req.Category)
	svc.IsActive = req.IsActive

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.serviceRepo.Update(tx, svc); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionServiceUpdate, "service", svc.ID.String(), oldValue, svc)
	})
	if err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrServiceNameExists
		}
		u.log.Warnf("Failed to update service %s: %+v", id, err)
		return nil, err
	}

	u.catalogCache.Invalidate(ctx)
	return converter.ServiceToResponse(svc), nil
}

func (u *catalogUsecase) DeleteService(ctx context.Context, id uuid.UUID) error {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := u.serviceRepo.Delete(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrServiceNotFound
		}
		return u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionServiceDelete, "service", id.String(), nil)
	})
	if err != nil {
		if !errors.Is(err, ErrServiceNotFound) {
			u.log.Warnf("Failed to delete service %s: %+v", id, err)
		}
		return err
	}

	u.catalogCache.Invalidate(ctx)
	return nil
}

func (u *catalogUsecase) CreateServiceOption(ctx context.Context, req *dto.CreateServiceOptionRequest) (*dto.ServiceOptionResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", req.ServiceID, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	option := &entity.ServiceOption{
		ServiceID:       req.ServiceID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.optionRepo.Create(tx, option); err != nil {
			return err
		}
		return u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionOptionCreate, "service_option", option.ID.String(), option)
	})
	if err != nil {
		u.log.Warnf("Failed to create service option: %+v", err)
		return nil, err
	}

	u.catalogCache.Invalidate(ctx)
	return converter.ServiceOptionToResponse(option), nil
}

func (u *catalogUsecase) UpdateServiceOption(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceOptionRequest) (*dto.ServiceOptionResponse, error) {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	option, err := u.optionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service option %s: %+v", id, err)
		return nil, err
	}
	if option == nil {
		return nil, ErrServiceOptionNotFound
	}

	oldValue := *option
	option.Name = req.Name
	option.Price = req.Price
	option.DurationMinutes = req.DurationMinutes
	option.IsActive = req.IsActive

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.optionRepo.Update(tx, option); err != nil {
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionOptionUpdate, "service_option", option.ID.String(), oldValue, option)
	})
	if err != nil {
		u.log.Warnf("Failed to update service option %s: %+v", id, err)
		return nil, err
	}

	u.catalogCache.Invalidate(ctx)
	return converter.ServiceOptionToResponse(option), nil
}

func (u *catalogUsecase) DeleteServiceOption(ctx context.Context, id uuid.UUID) error {
	userID, _ := middleware.GetUserIDFromContext(ctx)

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := u.optionRepo.Delete(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrServiceOptionNotFound
		}
		return u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionOptionDelete, "service_option", id.String(), nil)
	})
	if err != nil {
		if !errors.Is(err, ErrServiceOptionNotFound) {
			u.log.Warnf("Failed to delete service option %s: %+v", id, err)
		}
		return err
	}

	u.catalogCache.Invalidate(ctx)
	return nil
}
