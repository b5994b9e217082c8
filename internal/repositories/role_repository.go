package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
)

type RoleRepository interface {
	FindByID(ctx context.Context, id string, populatePermissions bool) (*db_models.Role, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*db_models.Role, error)
	FindByName(ctx context.Context, name string) (*db_models.Role, error)
	FindPage(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Role, error)
	CountAll(ctx context.Context) (int64, error)
	Create(ctx context.Context, role *db_models.Role) error
	Update(ctx context.Context, role *db_models.Role) error
	// UpdateName writes only the name column and reports whether a row matched.
	UpdateName(ctx context.Context, id string, name string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	AppendPermissions(ctx context.Context, role *db_models.Role, permissions []db_models.Permission) error
	RemovePermissions(ctx context.Context, role *db_models.Role, permissions []db_models.Permission) error
	ClearPermissions(ctx context.Context, role *db_models.Role) error
	HasPermission(ctx context.Context, roleID string, permissionName string) (bool, error)
}

type roleRepository struct {
	repository[db_models.Role]
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{repository: repository[db_models.Role]{db: db}}
}

func (r *roleRepository) FindByID(ctx context.Context, id string, populatePermissions bool) (*db_models.Role, error) {
	if !isUUID(id) {
		return nil, nil
	}
	q := conn(ctx, r.db)
	if populatePermissions {
		q = q.Preload("Permissions")
	}
	return first[db_models.Role](q, "id = ?", id)
}

func (r *roleRepository) FindByIDForUpdate(ctx context.Context, id string) (*db_models.Role, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return first[db_models.Role](conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id)
}

func (r *roleRepository) AppendPermissions(ctx context.Context, role *db_models.Role, permissions []db_models.Permission) error {
	return conn(ctx, r.db).Model(role).Omit("Permissions.*").Association("Permissions").Append(permissions)
}

func (r *roleRepository) RemovePermissions(ctx context.Context, role *db_models.Role, permissions []db_models.Permission) error {
	return conn(ctx, r.db).Model(role).Association("Permissions").Delete(permissions)
}

func (r *roleRepository) UpdateName(ctx context.Context, id string, name string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	res := conn(ctx, r.db).Model(&db_models.Role{}).Where("id = ?", id).Update("name", name)
	return res.RowsAffected > 0, res.Error
}

func (r *roleRepository) ClearPermissions(ctx context.Context, role *db_models.Role) error {
	return conn(ctx, r.db).Model(role).Association("Permissions").Clear()
}

// HasPermission ignores soft-deleted roles and permissions.
func (r *roleRepository) HasPermission(ctx context.Context, roleID string, permissionName string) (bool, error) {
	if !isUUID(roleID) {
		return false, nil
	}
	var count int64
	err := conn(ctx, r.db).
		Table("role_permissions").
		Joins("JOIN roles ON roles.id = role_permissions.role_id AND roles.deleted_at IS NULL").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id AND permissions.deleted_at IS NULL").
		Where("role_permissions.role_id = ? AND permissions.name = ?", roleID, permissionName).
		Count(&count).Error
	return count > 0, err
}
