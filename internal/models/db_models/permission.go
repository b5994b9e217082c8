package db_models

type Permission struct {
	BaseModel
	Name  string `gorm:"uniqueIndex;not null"`
	Roles []Role `gorm:"many2many:role_permissions"`
}
