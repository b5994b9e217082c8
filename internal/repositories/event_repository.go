package repositories

import (
	"context"

	"gorm.io/gorm"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
)

type EventTypeRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.EventType, error)
	FindByName(ctx context.Context, name string) (*db_models.EventType, error)
	FindPage(ctx context.Context, p request_models.PaginationRequest) ([]db_models.EventType, error)
	CountAll(ctx context.Context) (int64, error)
	Create(ctx context.Context, eventType *db_models.EventType) error
	Update(ctx context.Context, eventType *db_models.EventType) error
	Delete(ctx context.Context, id string) (bool, error)
}

type EventRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.Event, error)
	FindByName(ctx context.Context, name string) (*db_models.Event, error)
	FindPage(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Event, error)
	CountAll(ctx context.Context) (int64, error)
	Create(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, event *db_models.Event) error
	Delete(ctx context.Context, id string) (bool, error)
}

type EventCouponRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.EventCoupon, error)
	FindPage(ctx context.Context, p request_models.PaginationRequest) ([]db_models.EventCoupon, error)
	CountAll(ctx context.Context) (int64, error)
	Create(ctx context.Context, coupon *db_models.EventCoupon) error
	Update(ctx context.Context, coupon *db_models.EventCoupon) error
}

type eventRepository struct {
	repository[db_models.Event]
}

func NewEventTypeRepository(db *gorm.DB) EventTypeRepository {
	return &repository[db_models.EventType]{db: db}
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{repository: repository[db_models.Event]{db: db}}
}

func NewEventCouponRepository(db *gorm.DB) EventCouponRepository {
	return &repository[db_models.EventCoupon]{db: db}
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*db_models.Event, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return first[db_models.Event](conn(ctx, r.db).Preload("EventType"), "id = ?", id)
}

func (r *eventRepository) FindPage(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Event, error) {
	var events []db_models.Event
	if err := conn(ctx, r.db).Preload("EventType").Scopes(paginate(p)).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
