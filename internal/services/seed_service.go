package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

// Role names created by the seed command.
const (
	SeedAdminRole     = "admin"
	SeedOrganizerRole = "organizer"
	SeedUserRole      = "user"
)

var DefaultPermissions = []string{
	"roles:manage",
	"permissions:manage",
	"admins:manage",
	"organizers:manage",
	"users:manage",
	"events:manage",
	"events:write",
	"coupons:manage",
}

var ErrSeedAdminPassword = errors.New("seed: admin password is required")

type SeedRequest struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// SeedResult holds the ids to put in DEFAULT_*_ROLE_ID.
type SeedResult struct {
	AdminRoleID     string
	OrganizerRoleID string
	UserRoleID      string
	AdminID         string
}

type Seeder struct {
	roleRepo          repositories.RoleRepository
	permissionRepo    repositories.PermissionRepository
	roleService       RoleServiceInterface
	permissionService PermissionServiceInterface
	adminService      AdminServiceInterface
	logger            *zap.Logger
}

func NewSeeder(
	roleRepo repositories.RoleRepository,
	permissionRepo repositories.PermissionRepository,
	roleService RoleServiceInterface,
	permissionService PermissionServiceInterface,
	adminService AdminServiceInterface,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		roleRepo:          roleRepo,
		permissionRepo:    permissionRepo,
		roleService:       roleService,
		permissionService: permissionService,
		adminService:      adminService,
		logger:            logger,
	}
}

// Run creates what is missing and leaves existing rows alone, so it can be
// run on every deploy.
func (s *Seeder) Run(ctx context.Context, req SeedRequest) (*SeedResult, error) {
	if req.AdminUsername != "" && req.AdminPassword == "" {
		return nil, ErrSeedAdminPassword
	}

	permissionIDs := make([]string, 0, len(DefaultPermissions))
	for _, name := range DefaultPermissions {
		permission, err := s.permission(ctx, name)
		if err != nil {
			return nil, err
		}
		permissionIDs = append(permissionIDs, permission.ID.String())
	}

	adminRole, err := s.role(ctx, SeedAdminRole)
	if err != nil {
		return nil, err
	}
	if _, err := s.roleService.AddPermissions(ctx, adminRole.ID.String(), permissionIDs); err != nil {
		return nil, err
	}
	organizerRole, err := s.role(ctx, SeedOrganizerRole)
	if err != nil {
		return nil, err
	}
	userRole, err := s.role(ctx, SeedUserRole)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{
		AdminRoleID:     adminRole.ID.String(),
		OrganizerRoleID: organizerRole.ID.String(),
		UserRoleID:      userRole.ID.String(),
	}
	if req.AdminUsername == "" {
		return result, nil
	}

	admin, err := s.adminService.FindByUsername(ctx, req.AdminUsername, false)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		admin, err = s.adminService.Create(ctx, request_models.CreateAdminRequest{
			Username: req.AdminUsername,
			Email:    req.AdminEmail,
			Password: req.AdminPassword,
			RoleID:   adminRole.ID.String(),
		})
		if err != nil {
			return nil, err
		}
		s.logger.Info("seeded first admin", zap.String("admin_id", admin.ID.String()))
	}
	result.AdminID = admin.ID.String()
	return result, nil
}

func (s *Seeder) permission(ctx context.Context, name string) (*db_models.Permission, error) {
	existing, err := s.permissionRepo.FindByName(ctx, name)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if existing != nil {
		return existing, nil
	}
	return s.permissionService.Create(ctx, request_models.CreatePermissionRequest{Name: name})
}

func (s *Seeder) role(ctx context.Context, name string) (*db_models.Role, error) {
	existing, err := s.roleRepo.FindByName(ctx, name)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if existing != nil {
		return existing, nil
	}
	role, err := s.roleService.Create(ctx, request_models.CreateRoleRequest{Name: name})
	if err != nil {
		return nil, err
	}
	s.logger.Info("seeded role", zap.String("role", name), zap.String("role_id", role.ID.String()))
	return role, nil
}
