package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

type EventServiceInterface interface {
	FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Event, int64, error)
	FindOne(ctx context.Context, id string) (*db_models.Event, error)
	Create(ctx context.Context, req request_models.CreateEventRequest) (*db_models.Event, error)
	Update(ctx context.Context, req request_models.UpdateEventRequest) (*db_models.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventService struct {
	eventRepo        repositories.EventRepository
	eventTypeService EventTypeServiceInterface
	organizerService OrganizerServiceInterface
	logger           *zap.Logger
}

func NewEventService(
	eventRepo repositories.EventRepository,
	eventTypeService EventTypeServiceInterface,
	organizerService OrganizerServiceInterface,
	logger *zap.Logger,
) EventServiceInterface {
	return &EventService{
		eventRepo:        eventRepo,
		eventTypeService: eventTypeService,
		organizerService: organizerService,
		logger:           logger,
	}
}

func (s *EventService) FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.Event, int64, error) {
	return findPage(ctx, s.logger, p, s.eventRepo.CountAll, s.eventRepo.FindPage)
}

func (s *EventService) FindOne(ctx context.Context, id string) (*db_models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.dbError("find event", err)
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	return event, nil
}

func (s *EventService) ensureNameFree(ctx context.Context, name string) error {
	existing, err := s.eventRepo.FindByName(ctx, name)
	if err != nil {
		return s.dbError("find event by name", err)
	}
	if existing != nil {
		return utils.ErrEventAlreadyExists
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, req request_models.CreateEventRequest) (*db_models.Event, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, utils.ErrInvalidEventDates
	}
	if err := s.ensureNameFree(ctx, req.Name); err != nil {
		return nil, err
	}

	eventType, err := s.eventTypeService.FindOne(ctx, req.EventTypeID)
	if err != nil {
		return nil, err
	}
	organizer, err := s.organizerService.FindOne(ctx, req.OrganizerID)
	if err != nil {
		return nil, err
	}

	event := &db_models.Event{
		Name:             req.Name,
		Slug:             slug.Make(req.Name),
		ShortDescription: req.ShortDescription,
		EventTypeID:      eventType.ID,
		Theme:            req.Theme,
		Category:         req.Category,
		Place:            req.Place,
		StartDate:        req.StartDate,
		StartTime:        req.StartTime,
		EndDate:          req.EndDate,
		EndTime:          req.EndTime,
		Cover:            req.Cover,
		OrganizerID:      organizer.ID,
	}
	event.ID = uuid.New()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, s.dbError("create event", err)
	}

	s.logger.Info("event created", zap.String("event_id", event.ID.String()), zap.String("slug", event.Slug))
	return s.FindOne(ctx, event.ID.String())
}

// Update applies the fields present in req; a new name is re-checked for
// uniqueness and re-slugged.
func (s *EventService) Update(ctx context.Context, req request_models.UpdateEventRequest) (*db_models.Event, error) {
	event, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := s.ensureNameFree(ctx, *req.Name); err != nil {
			return nil, err
		}
		event.Name = *req.Name
		event.Slug = slug.Make(*req.Name)
	}
	setIfPresent(&event.ShortDescription, req.ShortDescription)
	setIfPresent(&event.Theme, req.Theme)
	setIfPresent(&event.Category, req.Category)
	setIfPresent(&event.Place, req.Place)
	setIfPresent(&event.StartDate, req.StartDate)
	setIfPresent(&event.StartTime, req.StartTime)
	setIfPresent(&event.EndDate, req.EndDate)
	setIfPresent(&event.EndTime, req.EndTime)
	setIfPresent(&event.Cover, req.Cover)

	if event.EndDate.Before(event.StartDate) {
		return nil, utils.ErrInvalidEventDates
	}

	event.EventType = nil
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, s.dbError("update event", err)
	}
	return s.FindOne(ctx, event.ID.String())
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return s.dbError("delete event", err)
	}
	if !deleted {
		return utils.ErrEventNotFound
	}
	return nil
}

func (s *EventService) dbError(op string, err error) error {
	s.logger.Error("event repository failure", zap.String("op", op), zap.Error(err))
	return utils.DatabaseError(err)
}
