package services

import (
	"context"

	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

type AdminServiceInterface interface {
	AccountServiceInterface[db_models.Admin]
	FindByUsername(ctx context.Context, username string, withPassword bool) (*db_models.Admin, error)
	Create(ctx context.Context, req request_models.CreateAdminRequest) (*db_models.Admin, error)
	Update(ctx context.Context, req request_models.UpdateAdminRequest) (*db_models.Admin, error)
}

type AdminService struct {
	*accountService[db_models.Admin, *db_models.Admin]
}

func NewAdminService(
	repo repositories.AccountRepository[db_models.Admin],
	roleService RoleServiceInterface,
	tx repositories.TransactionManager,
	cfg AccountConfig,
	logger *zap.Logger,
) AdminServiceInterface {
	return &AdminService{
		accountService: newAccountService[db_models.Admin, *db_models.Admin](repo, roleService, tx, utils.ErrAdminNotFound, cfg, logger),
	}
}

func (s *AdminService) FindByUsername(ctx context.Context, username string, withPassword bool) (*db_models.Admin, error) {
	return s.findByField(ctx, repositories.FieldUsername, username, withPassword)
}

func (s *AdminService) Create(ctx context.Context, req request_models.CreateAdminRequest) (*db_models.Admin, error) {
	if err := s.ensureUnique(ctx, repositories.FieldEmail, req.Email, utils.ErrEmailAlreadyInUse); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, repositories.FieldUsername, req.Username, utils.ErrUsernameAlreadyInUse); err != nil {
		return nil, err
	}

	admin := &db_models.Admin{
		AccountBase: db_models.AccountBase{Email: req.Email},
		Username:    req.Username,
	}
	return s.create(ctx, admin, req.Password, req.RoleID)
}

// Update applies the fields present in req. A unique field present in req
// is checked against every admin, this one included.
func (s *AdminService) Update(ctx context.Context, req request_models.UpdateAdminRequest) (*db_models.Admin, error) {
	admin, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := s.ensureUnique(ctx, repositories.FieldEmail, *req.Email, utils.ErrEmailAlreadyInUse); err != nil {
			return nil, err
		}
		admin.Email = *req.Email
	}
	if req.Username != nil {
		if err := s.ensureUnique(ctx, repositories.FieldUsername, *req.Username, utils.ErrUsernameAlreadyInUse); err != nil {
			return nil, err
		}
		admin.Username = *req.Username
	}

	return s.save(ctx, admin)
}
