package request_models

import "time"

type CreateEventTypeRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type UpdateEventTypeRequest struct {
	ID   string `json:"-"`
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type CreateEventRequest struct {
	Name             string    `json:"name" binding:"required,max=200"`
	ShortDescription string    `json:"short_description" binding:"omitempty,max=1000"`
	EventTypeID      string    `json:"event_type_id" binding:"required,uuid"`
	Theme            string    `json:"theme" binding:"required,max=100"`
	Category         string    `json:"category" binding:"required,max=100"`
	Place            string    `json:"place" binding:"required,max=300"`
	StartDate        time.Time `json:"start_date" binding:"required"`
	StartTime        string    `json:"start_time" binding:"required,datetime=15:04"`
	EndDate          time.Time `json:"end_date" binding:"required"`
	EndTime          string    `json:"end_time" binding:"required,datetime=15:04"`
	Cover            string    `json:"cover" binding:"omitempty,url"`
	OrganizerID      string    `json:"organizer_id" binding:"required,uuid"`
}

type UpdateEventRequest struct {
	ID               string     `json:"-"`
	Name             *string    `json:"name" binding:"omitempty,max=200"`
	ShortDescription *string    `json:"short_description" binding:"omitempty,max=1000"`
	Theme            *string    `json:"theme" binding:"omitempty,max=100"`
	Category         *string    `json:"category" binding:"omitempty,max=100"`
	Place            *string    `json:"place" binding:"omitempty,max=300"`
	StartDate        *time.Time `json:"start_date"`
	StartTime        *string    `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndDate          *time.Time `json:"end_date"`
	EndTime          *string    `json:"end_time" binding:"omitempty,datetime=15:04"`
	Cover            *string    `json:"cover" binding:"omitempty,url"`
}

type CreateEventCouponRequest struct {
	EventID         string `json:"event_id" binding:"required,uuid"`
	FormuleQuantity int    `json:"formule_quantity" binding:"required,min=1"`
}

type UpdateEventCouponRequest struct {
	ID             string `json:"-"`
	AvailableSeats *int   `json:"available_seats" binding:"required,min=0"`
}
