package repositories

import (
	"context"

	"gorm.io/gorm"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
)

type PermissionRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.Permission, error)
	FindByIDs(ctx context.Context, ids []string) ([]db_models.Permission, error)
	FindByName(ctx context.Context, name string) (*db_models.Permission, error)
	FindPage(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Permission, error)
	CountAll(ctx context.Context) (int64, error)
	Create(ctx context.Context, permission *db_models.Permission) error
	// Delete detaches the permission from every role, then deletes it.
	Delete(ctx context.Context, id string) (bool, error)
}

type permissionRepository struct {
	repository[db_models.Permission]
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{repository: repository[db_models.Permission]{db: db}}
}

func (r *permissionRepository) FindByIDs(ctx context.Context, ids []string) ([]db_models.Permission, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if isUUID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}

	var permissions []db_models.Permission
	if err := conn(ctx, r.db).Where("id IN ?", valid).Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepository) Delete(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}

	deleted := false
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		permission, err := first[db_models.Permission](tx, "id = ?", id)
		if err != nil || permission == nil {
			return err
		}
		if err := tx.Model(permission).Association("Roles").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(permission).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
