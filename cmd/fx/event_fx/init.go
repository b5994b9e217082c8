package event_fx

import (
	"go.uber.org/fx"

	"eventmanager/internal/repositories"
	"eventmanager/internal/services"
)

var Module = fx.Provide(
	repositories.NewEventTypeRepository,
	repositories.NewEventRepository,
	repositories.NewEventCouponRepository,
	services.NewEventTypeService,
	services.NewEventService,
	services.NewEventCouponService,
)
