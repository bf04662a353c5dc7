package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// Tags is an ordered list of free-form labels, stored serialized as JSON in
// a single text column so the same model works on Postgres and SQLite.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = Tags{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for tags: %T", value)
	}
	if len(b) == 0 {
		*t = Tags{}
		return nil
	}
	return json.Unmarshal(b, t)
}

// Transaction represents a financial transaction in the system. It is owned
// by exactly one account (rows are removed when the account is hard-deleted)
// and optionally tagged with a category (reference is cleared when the
// category is removed). Transfers reference a second account via ToAccountID.
type Transaction struct {
	Base
	AccountID    string          `gorm:"type:uuid;not null" json:"accountId"`
	CategoryID   *string         `gorm:"type:uuid" json:"categoryId"`
	Type         TransactionType `gorm:"not null" json:"type"`
	Amount       decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	Description  string          `gorm:"size:200;not null" json:"description"`
	Notes        *string         `gorm:"size:1000" json:"notes"`
	Date         time.Time       `gorm:"not null" json:"date"`
	ToAccountID  *string         `gorm:"type:uuid" json:"toAccountId"`
	Tags         Tags            `gorm:"type:text;not null;default:'[]'" json:"tags"`
	ReceiptURL   *string         `gorm:"column:receipt_url" json:"receiptUrl"`
	IsReconciled bool            `gorm:"not null;default:false" json:"isReconciled"`

	// Relationships; these drive the referential actions the services rely on.
	Account   *Account  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Category  *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
	ToAccount *Account  `gorm:"foreignKey:ToAccountID;constraint:OnDelete:SET NULL" json:"-"`
}
