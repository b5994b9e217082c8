package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
)

// Columns an account can be looked up by.
const (
	FieldEmail                  = "email"
	FieldUsername               = "username"
	FieldResetToken             = "reset_token"
	FieldResetPasswordRequestID = "reset_password_request_id"
	FieldCompanyNumberValue     = "company_number_value"
)

type AccountRepository[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	// FindByField matches one column. The password hash is only loaded
	// when withPassword is set.
	FindByField(ctx context.Context, field string, value any, withPassword bool) (*T, error)
	FindPage(ctx context.Context, p request_models.PaginationRequest) ([]T, error)
	CountAll(ctx context.Context) (int64, error)
	Create(ctx context.Context, account *T) error
	Update(ctx context.Context, account *T) error
	Delete(ctx context.Context, id string) (bool, error)
}

type accountRepository[T any] struct {
	repository[T]
}

func NewAccountRepository[T any](db *gorm.DB) AccountRepository[T] {
	return &accountRepository[T]{repository: repository[T]{db: db}}
}

func NewAdminRepository(db *gorm.DB) AccountRepository[db_models.Admin] {
	return NewAccountRepository[db_models.Admin](db)
}

func NewOrganizerRepository(db *gorm.DB) AccountRepository[db_models.Organizer] {
	return NewAccountRepository[db_models.Organizer](db)
}

func NewUserRepository(db *gorm.DB) AccountRepository[db_models.User] {
	return NewAccountRepository[db_models.User](db)
}

func (r *accountRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return first[T](conn(ctx, r.db).Preload("Role"), "id = ?", id)
}

func (r *accountRepository[T]) FindByField(ctx context.Context, field string, value any, withPassword bool) (*T, error) {
	q := conn(ctx, r.db)
	if !withPassword {
		q = q.Omit("password_hash")
	}
	return first[T](q.Where(clause.Eq{Column: clause.Column{Name: field}, Value: value}))
}

func (r *accountRepository[T]) FindPage(ctx context.Context, p request_models.PaginationRequest) ([]T, error) {
	var accounts []T
	err := conn(ctx, r.db).
		Omit("password_hash").
		Preload("Role").
		Scopes(paginate(p)).
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
