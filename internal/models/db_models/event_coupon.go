package db_models

import "github.com/google/uuid"

type EventCoupon struct {
	BaseModel
	Code            string    `gorm:"uniqueIndex;not null"`
	FormuleQuantity int       `gorm:"not null"`
	AvailableSeats  int       `gorm:"not null"`
	EventID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Event           *Event    `gorm:"foreignKey:EventID"`
}
