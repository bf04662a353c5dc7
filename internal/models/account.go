package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
	AccountTypeInvestment AccountType = "INVESTMENT"
	AccountTypeCash       AccountType = "CASH"
	AccountTypeLoan       AccountType = "LOAN"
	AccountTypeOther      AccountType = "OTHER"
)

// Account represents a financial account in the system. Balance is a signed
// fixed-precision amount; its sum across currencies is never converted.
type Account struct {
	Base
	Name      string          `gorm:"size:100;not null" json:"name"`
	Type      AccountType     `gorm:"not null" json:"type"`
	Balance   decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"balance"`
	Currency  string          `gorm:"size:3;not null;default:'CAD'" json:"currency"`
	Color     *string         `gorm:"size:7" json:"color"`
	Icon      *string         `gorm:"size:50" json:"icon"`
	IsActive  bool            `gorm:"not null;default:true" json:"isActive"`
	Notes     *string         `gorm:"size:500" json:"notes"`
	SortOrder int             `gorm:"not null;default:0" json:"sortOrder"`
}

// BeforeCreate hook applies the schema-level currency default. The seed data
// uses USD while the schema default is CAD; that mismatch is inherited
// behavior and left as is.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if err := a.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if a.Currency == "" {
		a.Currency = "CAD"
	}
	return nil
}
