package services

import (
	"context"

	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

type UserServiceInterface interface {
	AccountServiceInterface[db_models.User]
	Create(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error)
	Update(ctx context.Context, req request_models.UpdateUserRequest) (*db_models.User, error)
}

type UserService struct {
	*accountService[db_models.User, *db_models.User]
}

func NewUserService(
	repo repositories.AccountRepository[db_models.User],
	roleService RoleServiceInterface,
	tx repositories.TransactionManager,
	cfg AccountConfig,
	logger *zap.Logger,
) UserServiceInterface {
	return &UserService{
		accountService: newAccountService[db_models.User, *db_models.User](repo, roleService, tx, utils.ErrUserNotFound, cfg, logger),
	}
}

func (s *UserService) Create(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error) {
	if err := s.ensureUnique(ctx, repositories.FieldEmail, req.Email, utils.ErrEmailAlreadyInUse); err != nil {
		return nil, err
	}

	user := &db_models.User{
		AccountBase: db_models.AccountBase{Email: req.Email},
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	}
	return s.create(ctx, user, req.Password, req.RoleID)
}

func (s *UserService) Update(ctx context.Context, req request_models.UpdateUserRequest) (*db_models.User, error) {
	user, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := s.ensureUnique(ctx, repositories.FieldEmail, *req.Email, utils.ErrEmailAlreadyInUse); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	setIfPresent(&user.FirstName, req.FirstName)
	setIfPresent(&user.LastName, req.LastName)

	return s.save(ctx, user)
}
