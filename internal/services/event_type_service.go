package services

import (
	"context"

	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

type EventTypeServiceInterface interface {
	FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.EventType, int64, error)
	FindOne(ctx context.Context, id string) (*db_models.EventType, error)
	Create(ctx context.Context, req request_models.CreateEventTypeRequest) (*db_models.EventType, error)
	Update(ctx context.Context, req request_models.UpdateEventTypeRequest) (*db_models.EventType, error)
	Delete(ctx context.Context, id string) error
}

type EventTypeService struct {
	eventTypeRepo repositories.EventTypeRepository
	logger        *zap.Logger
}

func NewEventTypeService(eventTypeRepo repositories.EventTypeRepository, logger *zap.Logger) EventTypeServiceInterface {
	return &EventTypeService{eventTypeRepo: eventTypeRepo, logger: logger}
}

func (s *EventTypeService) FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.EventType, int64, error) {
	return findPage(ctx, s.logger, p, s.eventTypeRepo.CountAll, s.eventTypeRepo.FindPage)
}

func (s *EventTypeService) FindOne(ctx context.Context, id string) (*db_models.EventType, error) {
	eventType, err := s.eventTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.dbError("find event type", err)
	}
	if eventType == nil {
		return nil, utils.ErrEventTypeNotFound
	}
	return eventType, nil
}

func (s *EventTypeService) ensureNameFree(ctx context.Context, name string) error {
	existing, err := s.eventTypeRepo.FindByName(ctx, name)
	if err != nil {
		return s.dbError("find event type by name", err)
	}
	if existing != nil {
		return utils.ErrEventTypeAlreadyExists
	}
	return nil
}

func (s *EventTypeService) Create(ctx context.Context, req request_models.CreateEventTypeRequest) (*db_models.EventType, error) {
	if err := s.ensureNameFree(ctx, req.Name); err != nil {
		return nil, err
	}

	eventType := &db_models.EventType{Name: req.Name}
	if err := s.eventTypeRepo.Create(ctx, eventType); err != nil {
		return nil, s.dbError("create event type", err)
	}
	return eventType, nil
}

func (s *EventTypeService) Update(ctx context.Context, req request_models.UpdateEventTypeRequest) (*db_models.EventType, error) {
	eventType, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, req.Name); err != nil {
		return nil, err
	}

	eventType.Name = req.Name
	if err := s.eventTypeRepo.Update(ctx, eventType); err != nil {
		return nil, s.dbError("update event type", err)
	}
	return eventType, nil
}

func (s *EventTypeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.eventTypeRepo.Delete(ctx, id)
	if err != nil {
		return s.dbError("delete event type", err)
	}
	if !deleted {
		return utils.ErrEventTypeNotFound
	}
	return nil
}

func (s *EventTypeService) dbError(op string, err error) error {
	s.logger.Error("event type repository failure", zap.String("op", op), zap.Error(err))
	return utils.DatabaseError(err)
}
