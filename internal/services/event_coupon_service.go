package services

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/repositories"
	"eventmanager/pkg/utils"
)

const (
	couponCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	couponCodeLength   = 10
)

type EventCouponServiceInterface interface {
	FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.EventCoupon, int64, error)
	FindOne(ctx context.Context, id string) (*db_models.EventCoupon, error)
	Create(ctx context.Context, req request_models.CreateEventCouponRequest) (*db_models.EventCoupon, error)
	Update(ctx context.Context, req request_models.UpdateEventCouponRequest) (*db_models.EventCoupon, error)
}

type EventCouponService struct {
	couponRepo   repositories.EventCouponRepository
	eventService EventServiceInterface
	logger       *zap.Logger
	newCode      func() (string, error)
}

func NewEventCouponService(
	couponRepo repositories.EventCouponRepository,
	eventService EventServiceInterface,
	logger *zap.Logger,
) EventCouponServiceInterface {
	return &EventCouponService{
		couponRepo:   couponRepo,
		eventService: eventService,
		logger:       logger,
		newCode: func() (string, error) {
			return gonanoid.Generate(couponCodeAlphabet, couponCodeLength)
		},
	}
}

func (s *EventCouponService) FindAll(ctx context.Context, p request_models.PaginationRequest) ([]db_models.EventCoupon, int64, error) {
	return findPage(ctx, s.logger, p, s.couponRepo.CountAll, s.couponRepo.FindPage)
}

func (s *EventCouponService) FindOne(ctx context.Context, id string) (*db_models.EventCoupon, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.dbError("find event coupon", err)
	}
	if coupon == nil {
		return nil, utils.ErrEventCouponNotFound
	}
	return coupon, nil
}

// Create opens every seat of the formule.
func (s *EventCouponService) Create(ctx context.Context, req request_models.CreateEventCouponRequest) (*db_models.EventCoupon, error) {
	event, err := s.eventService.FindOne(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	code, err := s.newCode()
	if err != nil {
		return nil, err
	}

	coupon := &db_models.EventCoupon{
		Code:            code,
		FormuleQuantity: req.FormuleQuantity,
		AvailableSeats:  req.FormuleQuantity,
		EventID:         event.ID,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, s.dbError("create event coupon", err)
	}
	return coupon, nil
}

func (s *EventCouponService) Update(ctx context.Context, req request_models.UpdateEventCouponRequest) (*db_models.EventCoupon, error) {
	coupon, err := s.FindOne(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.AvailableSeats != nil {
		seats := *req.AvailableSeats
		if seats < 0 || seats > coupon.FormuleQuantity {
			return nil, utils.ErrInvalidAvailableSeats
		}
		coupon.AvailableSeats = seats
	}

	coupon.Event = nil
	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, s.dbError("update event coupon", err)
	}
	return coupon, nil
}

func (s *EventCouponService) dbError(op string, err error) error {
	s.logger.Error("event coupon repository failure", zap.String("op", op), zap.Error(err))
	return utils.DatabaseError(err)
}
