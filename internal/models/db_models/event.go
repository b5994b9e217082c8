package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	BaseModel
	Name             string        `gorm:"not null"`
	Slug             string        `gorm:"index"`
	ShortDescription string        `gorm:"type:text"`
	EventTypeID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	EventType        *EventType    `gorm:"foreignKey:EventTypeID"`
	Theme            string        `gorm:"not null"`
	Category         string        `gorm:"not null"`
	Place            string        `gorm:"not null"`
	StartDate        time.Time     `gorm:"not null"`
	StartTime        string        `gorm:"not null"`
	EndDate          time.Time     `gorm:"not null"`
	EndTime          string        `gorm:"not null"`
	Cover            string        `gorm:"size:512"`
	OrganizerID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	Coupons          []EventCoupon `gorm:"foreignKey:EventID"`
}
