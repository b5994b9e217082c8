package response_models

import (
	"time"

	"eventmanager/internal/models/db_models"
)

type EventTypeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type EventResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	ShortDescription string             `json:"short_description"`
	EventTypeID      string             `json:"event_type_id"`
	EventType        *EventTypeResponse `json:"event_type,omitempty"`
	Theme            string             `json:"theme"`
	Category         string             `json:"category"`
	Place            string             `json:"place"`
	StartDate        time.Time          `json:"start_date"`
	StartTime        string             `json:"start_time"`
	EndDate          time.Time          `json:"end_date"`
	EndTime          string             `json:"end_time"`
	Cover            string             `json:"cover,omitempty"`
	OrganizerID      string             `json:"organizer_id"`
	CreatedAt        int64              `json:"created_at"`
	UpdatedAt        int64              `json:"updated_at"`
}

type EventCouponResponse struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	FormuleQuantity int    `json:"formule_quantity"`
	AvailableSeats  int    `json:"available_seats"`
	EventID         string `json:"event_id"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

func NewEventTypeResponse(t *db_models.EventType) EventTypeResponse {
	return EventTypeResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func NewEventResponse(e *db_models.Event) EventResponse {
	resp := EventResponse{
		ID:               e.ID.String(),
		Name:             e.Name,
		Slug:             e.Slug,
		ShortDescription: e.ShortDescription,
		EventTypeID:      e.EventTypeID.String(),
		Theme:            e.Theme,
		Category:         e.Category,
		Place:            e.Place,
		StartDate:        e.StartDate,
		StartTime:        e.StartTime,
		EndDate:          e.EndDate,
		EndTime:          e.EndTime,
		Cover:            e.Cover,
		OrganizerID:      e.OrganizerID.String(),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.EventType != nil {
		t := NewEventTypeResponse(e.EventType)
		resp.EventType = &t
	}
	return resp
}

func NewEventCouponResponse(c *db_models.EventCoupon) EventCouponResponse {
	return EventCouponResponse{
		ID:              c.ID.String(),
		Code:            c.Code,
		FormuleQuantity: c.FormuleQuantity,
		AvailableSeats:  c.AvailableSeats,
		EventID:         c.EventID.String(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
