package db_models

type Admin struct {
	AccountBase
	Username string `gorm:"uniqueIndex;not null"`
}

func (a *Admin) Kind() AccountKind  { return AdminKind }
func (a *Admin) Base() *AccountBase { return &a.AccountBase }
