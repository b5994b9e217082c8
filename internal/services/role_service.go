package services

import (
	"context"

	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

type RoleServiceInterface interface {
	FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Role, int64, error)
	FindOne(ctx context.Context, id string, populatePermissions bool) (*db_models.Role, error)
	Create(ctx context.Context, req request_models.CreateRoleRequest) (*db_models.Role, error)
	Update(ctx context.Context, req request_models.UpdateRoleNameRequest) (*db_models.Role, error)
	Delete(ctx context.Context, id string) error

	AddAdmins(ctx context.Context, id string, adminIDs []string) (*db_models.Role, error)
	RemoveAdmins(ctx context.Context, id string, adminIDs []string) (*db_models.Role, error)
	AddOrganizers(ctx context.Context, id string, organizerIDs []string) (*db_models.Role, error)
	RemoveOrganizers(ctx context.Context, id string, organizerIDs []string) (*db_models.Role, error)
	AddUsers(ctx context.Context, id string, userIDs []string) (*db_models.Role, error)
	RemoveUsers(ctx context.Context, id string, userIDs []string) (*db_models.Role, error)
	AddMembers(ctx context.Context, kind db_models.AccountKind, id string, accountIDs []string) (*db_models.Role, error)
	RemoveMembers(ctx context.Context, kind db_models.AccountKind, id string, accountIDs []string) (*db_models.Role, error)

	AddPermissions(ctx context.Context, id string, permissionIDs []string) (*db_models.Role, error)
	RemovePermissions(ctx context.Context, id string, permissionIDs []string) (*db_models.Role, error)
	HasPermission(ctx context.Context, id string, permissionName string) (bool, error)
}

type RoleService struct {
	roleRepo       repositories.RoleRepository
	permissionRepo repositories.PermissionRepository
	tx             repositories.TransactionManager
	logger         *zap.Logger
}

func NewRoleService(
	roleRepo repositories.RoleRepository,
	permissionRepo repositories.PermissionRepository,
	tx repositories.TransactionManager,
	logger *zap.Logger,
) RoleServiceInterface {
	return &RoleService{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		tx:             tx,
		logger:         logger,
	}
}

func (s *RoleService) FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Role, int64, error) {
	return findPage(ctx, s.logger, p, s.roleRepo.CountAll, s.roleRepo.FindPage)
}

func (s *RoleService) FindOne(ctx context.Context, id string, populatePermissions bool) (*db_models.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id, populatePermissions)
	if err != nil {
		return nil, s.dbError("find role", err)
	}
	if role == nil {
		return nil, utils.ErrRoleNotFound
	}
	return role, nil
}

// Create does not check name uniqueness; several roles may share a name.
func (s *RoleService) Create(ctx context.Context, req request_models.CreateRoleRequest) (*db_models.Role, error) {
	role := &db_models.Role{Name: req.Name}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, s.dbError("create role", err)
	}
	return role, nil
}

// Update renames the role without rewriting its member sets.
func (s *RoleService) Update(ctx context.Context, req request_models.UpdateRoleNameRequest) (*db_models.Role, error) {
	updated, err := s.roleRepo.UpdateName(ctx, req.ID, req.Name)
	if err != nil {
		return nil, s.dbError("update role", err)
	}
	if !updated {
		return nil, utils.ErrRoleNotFound
	}
	return s.FindOne(ctx, req.ID, false)
}

// Delete detaches the role's permissions so it grants nothing afterwards.
// Accounts pointing at the deleted role are left untouched.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		role, err := s.roleRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return s.dbError("lock role", err)
		}
		if role == nil {
			return utils.ErrRoleNotFound
		}
		if err := s.roleRepo.ClearPermissions(ctx, role); err != nil {
			return s.dbError("clear role permissions", err)
		}
		deleted, err := s.roleRepo.Delete(ctx, id)
		if err != nil {
			return s.dbError("delete role", err)
		}
		if !deleted {
			return utils.ErrRoleNotFound
		}
		return nil
	})
}

func (s *RoleService) AddAdmins(ctx context.Context, id string, adminIDs []string) (*db_models.Role, error) {
	return s.AddMembers(ctx, db_models.AdminKind, id, adminIDs)
}

func (s *RoleService) RemoveAdmins(ctx context.Context, id string, adminIDs []string) (*db_models.Role, error) {
	return s.RemoveMembers(ctx, db_models.AdminKind, id, adminIDs)
}

func (s *RoleService) AddOrganizers(ctx context.Context, id string, organizerIDs []string) (*db_models.Role, error) {
	return s.AddMembers(ctx, db_models.OrganizerKind, id, organizerIDs)
}

func (s *RoleService) RemoveOrganizers(ctx context.Context, id string, organizerIDs []string) (*db_models.Role, error) {
	return s.RemoveMembers(ctx, db_models.OrganizerKind, id, organizerIDs)
}

func (s *RoleService) AddUsers(ctx context.Context, id string, userIDs []string) (*db_models.Role, error) {
	return s.AddMembers(ctx, db_models.UserKind, id, userIDs)
}

func (s *RoleService) RemoveUsers(ctx context.Context, id string, userIDs []string) (*db_models.Role, error) {
	return s.RemoveMembers(ctx, db_models.UserKind, id, userIDs)
}

// AddMembers unions accountIDs into the role's set for kind. Account ids
// are not checked for existence.
func (s *RoleService) AddMembers(ctx context.Context, kind db_models.AccountKind, id string, accountIDs []string) (*db_models.Role, error) {
	return s.mutateMembers(ctx, id, func(role *db_models.Role) bool {
		return role.AddMembers(kind, accountIDs...)
	})
}

func (s *RoleService) RemoveMembers(ctx context.Context, kind db_models.AccountKind, id string, accountIDs []string) (*db_models.Role, error) {
	return s.mutateMembers(ctx, id, func(role *db_models.Role) bool {
		return role.RemoveMembers(kind, accountIDs...)
	})
}

func (s *RoleService) mutateMembers(ctx context.Context, id string, mutate func(*db_models.Role) bool) (*db_models.Role, error) {
	var role *db_models.Role
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		role, err = s.roleRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return s.dbError("lock role", err)
		}
		if role == nil {
			return utils.ErrRoleNotFound
		}
		if !mutate(role) {
			return nil
		}
		if err := s.roleRepo.Update(ctx, role); err != nil {
			return s.dbError("update role members", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) AddPermissions(ctx context.Context, id string, permissionIDs []string) (*db_models.Role, error) {
	return s.mutatePermissions(ctx, id, permissionIDs, s.roleRepo.AppendPermissions)
}

func (s *RoleService) RemovePermissions(ctx context.Context, id string, permissionIDs []string) (*db_models.Role, error) {
	return s.mutatePermissions(ctx, id, permissionIDs, s.roleRepo.RemovePermissions)
}

func (s *RoleService) mutatePermissions(
	ctx context.Context,
	id string,
	permissionIDs []string,
	apply func(ctx context.Context, role *db_models.Role, permissions []db_models.Permission) error,
) (*db_models.Role, error) {
	role, err := s.FindOne(ctx, id, false)
	if err != nil {
		return nil, err
	}

	permissions, err := s.permissionRepo.FindByIDs(ctx, permissionIDs)
	if err != nil {
		return nil, s.dbError("find permissions", err)
	}
	if len(permissions) != len(uniqueStrings(permissionIDs)) {
		return nil, utils.ErrPermissionNotFound
	}

	if err := apply(ctx, role, permissions); err != nil {
		return nil, s.dbError("update role permissions", err)
	}
	return s.FindOne(ctx, id, true)
}

func (s *RoleService) HasPermission(ctx context.Context, id string, permissionName string) (bool, error) {
	ok, err := s.roleRepo.HasPermission(ctx, id, permissionName)
	if err != nil {
		return false, s.dbError("check role permission", err)
	}
	return ok, nil
}

func (s *RoleService) dbError(op string, err error) error {
	s.logger.Error("role repository failure", zap.String("op", op), zap.Error(err))
	return utils.DatabaseError(err)
}
