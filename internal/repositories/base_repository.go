package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventmanager/internal/models/request_models"
)

// repository implements the lookups and writes shared by every entity.
// Lookups return (nil, nil) when no row matches.
type repository[T any] struct {
	db *gorm.DB
}

func paginate(p request_models.PaginationRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: "created_at"},
			Desc:   p.Descending(),
		})
		if p.Unbounded() {
			return db
		}
		return db.Offset(p.Offset()).Limit(p.Size)
	}
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func first[T any](db *gorm.DB, conds ...interface{}) (*T, error) {
	var entity T
	err := db.First(&entity, conds...).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return first[T](conn(ctx, r.db), "id = ?", id)
}

func (r *repository[T]) FindByName(ctx context.Context, name string) (*T, error) {
	return first[T](conn(ctx, r.db), "name = ?", name)
}

func (r *repository[T]) FindPage(ctx context.Context, p request_models.PaginationRequest) ([]T, error) {
	var entities []T
	if err := conn(ctx, r.db).Scopes(paginate(p)).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *repository[T]) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(new(T)).Count(&count).Error
	return count, err
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(entity).Error
}

func (r *repository[T]) Update(ctx context.Context, entity *T) error {
	return conn(ctx, r.db).Omit(clause.Associations).Save(entity).Error
}

// Delete soft deletes the row and reports whether one matched.
func (r *repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	res := conn(ctx, r.db).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
