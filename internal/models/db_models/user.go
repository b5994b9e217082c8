package db_models

type User struct {
	AccountBase
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
}

func (u *User) Kind() AccountKind  { return UserKind }
func (u *User) Base() *AccountBase { return &u.AccountBase }
