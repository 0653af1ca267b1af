package services

import (
	"context"
	"errors"

	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/internal/storage"
	"nexivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CatalogService manages the public service catalog.
type CatalogService struct {
	catalog repositories.ServiceRepository
	uploads *storage.Gateway
}

func NewCatalogService(catalog repositories.ServiceRepository, uploads *storage.Gateway) *CatalogService {
	return &CatalogService{catalog: catalog, uploads: uploads}
}

func (s *CatalogService) List(db *gorm.DB) ([]models.Service, error) {
	services, err := s.catalog.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return services, nil
}

func (s *CatalogService) Get(db *gorm.DB, id string) (*models.Service, error) {
	service, err := s.catalog.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("service", "Service not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateServiceRequest, image []byte, imageName, imageMime string, createdBy string) (*models.Service, error) {
	service := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    models.ServiceCategory(req.Category),
		Items:       models.StringList(req.Items),
	}
	service.CreatedByID = createdBy

	if len(image) > 0 {
		ref, err := s.uploads.Store(ctx, image, imageName, imageMime)
		if err != nil {
			return nil, apperrors.ErrUploadFailed(err, "Failed to upload service image")
		}
		service.Image = ref
	}

	if err := s.catalog.Create(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "service created", "service_id", service.ID, "name", service.Name)
	return service, nil
}

func (s *CatalogService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateServiceRequest, image []byte, imageName, imageMime string) (*models.Service, error) {
	service, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.Description != "" {
		service.Description = req.Description
	}
	if req.Category != "" {
		service.Category = models.ServiceCategory(req.Category)
	}
	if req.Items != nil {
		service.Items = models.StringList(req.Items)
	}

	if len(image) > 0 {
		ref, err := s.uploads.Store(ctx, image, imageName, imageMime)
		if err != nil {
			return nil, apperrors.ErrUploadFailed(err, "Failed to upload service image")
		}
		service.Image = ref
	}

	if err := s.catalog.Update(db, service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "service updated", "service_id", id)
	return service, nil
}

func (s *CatalogService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.catalog.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("service", "Service not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "service deleted", "service_id", id)
	return nil
}
