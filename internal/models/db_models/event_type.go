package db_models

type EventType struct {
	BaseModel
	Name string `gorm:"not null"`
}
