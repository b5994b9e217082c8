package db_models

type PhoneNumber struct {
	Phone       string `gorm:"not null"`
	Value       string `gorm:"uniqueIndex;not null"`
	IsoCode     string
	CountryCode string
}

type Organizer struct {
	AccountBase
	FirstName      string      `gorm:"not null"`
	LastName       string      `gorm:"not null"`
	CompanyName    string      `gorm:"not null"`
	CompanyAddress string      `gorm:"not null"`
	CompanyArea    string      `gorm:"not null"`
	CompanyNumber  PhoneNumber `gorm:"embedded;embeddedPrefix:company_number_"`
	Events         []Event     `gorm:"foreignKey:OrganizerID"`
}

func (o *Organizer) Kind() AccountKind  { return OrganizerKind }
func (o *Organizer) Base() *AccountBase { return &o.AccountBase }
