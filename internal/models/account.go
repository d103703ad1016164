package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is a bank account that statements are imported into. CCHolding
// is the reserved sub-balance for money already spent on a credit card
// but still sitting in the account.
type Account struct {
	DefaultModel
	Name      string `gorm:"uniqueIndex"`
	Note      string
	Balance   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CCHolding decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Archived  bool
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}
