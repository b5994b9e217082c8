package services

import (
	"context"

	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

type PermissionServiceInterface interface {
	FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Permission, int64, error)
	FindOne(ctx context.Context, id string) (*db_models.Permission, error)
	Create(ctx context.Context, req request_models.CreatePermissionRequest) (*db_models.Permission, error)
	Delete(ctx context.Context, id string) error
}

type PermissionService struct {
	permissionRepo repositories.PermissionRepository
	logger         *zap.Logger
}

func NewPermissionService(permissionRepo repositories.PermissionRepository, logger *zap.Logger) PermissionServiceInterface {
	return &PermissionService{permissionRepo: permissionRepo, logger: logger}
}

func (s *PermissionService) FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Permission, int64, error) {
	return findPage(ctx, s.logger, p, s.permissionRepo.CountAll, s.permissionRepo.FindPage)
}

func (s *PermissionService) FindOne(ctx context.Context, id string) (*db_models.Permission, error) {
	permission, err := s.permissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.dbError("find permission", err)
	}
	if permission == nil {
		return nil, utils.ErrPermissionNotFound
	}
	return permission, nil
}

func (s *PermissionService) Create(ctx context.Context, req request_models.CreatePermissionRequest) (*db_models.Permission, error) {
	existing, err := s.permissionRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, s.dbError("find permission by name", err)
	}
	if existing != nil {
		return nil, utils.ErrPermissionAlreadyExists
	}

	permission := &db_models.Permission{Name: req.Name}
	if err := s.permissionRepo.Create(ctx, permission); err != nil {
		return nil, s.dbError("create permission", err)
	}
	return permission, nil
}

// Delete detaches the permission from all roles before removing it.
func (s *PermissionService) Delete(ctx context.Context, id string) error {
	deleted, err := s.permissionRepo.Delete(ctx, id)
	if err != nil {
		return s.dbError("delete permission", err)
	}
	if !deleted {
		return utils.ErrPermissionNotFound
	}
	return nil
}

func (s *PermissionService) dbError(op string, err error) error {
	s.logger.Error("permission repository failure", zap.String("op", op), zap.Error(err))
	return utils.DatabaseError(err)
}
