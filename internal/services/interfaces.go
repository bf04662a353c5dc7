package services

import (
	"time"

	"github.com/shopspring/decimal"

	"privfinos/internal/models"
	"privfinos/internal/nullable"
	"privfinos/internal/pagination"
)

// CategoryFilter holds optional filter parameters for listing categories.
// RootsOnly selects categories without a parent; it is distinct from leaving
// ParentID unset, which applies no parent filter at all.
type CategoryFilter struct {
	Type      *models.CategoryType
	IsActive  *bool
	ParentID  *string
	RootsOnly bool
}

// CategoryInput holds the fields accepted when creating a category.
// Optional fields left nil fall back to their schema defaults.
type CategoryInput struct {
	Name      string
	Type      models.CategoryType
	Color     *string
	Icon      *string
	ParentID  *string
	SortOrder *int
	IsActive  *bool
}

// CategoryUpdate holds the fields accepted when updating a category. Absent
// fields are left unchanged; nullable fields carrying an explicit null clear
// the column.
type CategoryUpdate struct {
	Name      *string
	Type      *models.CategoryType
	Color     nullable.String
	Icon      nullable.String
	ParentID  nullable.String
	SortOrder *int
	IsActive  *bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	GetAll(filter CategoryFilter) ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(input CategoryInput) (*models.Category, error)
	Update(id string, input CategoryUpdate) (*models.Category, error)
	Delete(id string) (*models.Category, error)
	HardDelete(id string) error
}

// AccountFilter holds optional filter parameters for listing accounts.
type AccountFilter struct {
	Type     *models.AccountType
	IsActive *bool
}

// AccountInput holds the fields accepted when creating an account.
type AccountInput struct {
	Name      string
	Type      models.AccountType
	Balance   *decimal.Decimal
	Currency  *string
	Color     *string
	Icon      *string
	Notes     *string
	SortOrder *int
	IsActive  *bool
}

// AccountUpdate holds the fields accepted when updating an account. Absent
// fields are left unchanged; nullable fields carrying an explicit null clear
// the column.
type AccountUpdate struct {
	Name      *string
	Type      *models.AccountType
	Balance   *decimal.Decimal
	Currency  *string
	Color     nullable.String
	Icon      nullable.String
	Notes     nullable.String
	SortOrder *int
	IsActive  *bool
}

// AccountBalance is the derived single-account balance view.
type AccountBalance struct {
	AccountID string  `json:"accountId"`
	Balance   float64 `json:"balance"`
	Currency  string  `json:"currency"`
}

// TotalBalance aggregates balances over all active accounts. The sum is
// currency-unaware and the label is hardcoded; see GetTotalBalance.
type TotalBalance struct {
	Total        float64 `json:"total"`
	Currency     string  `json:"currency"`
	AccountCount int     `json:"accountCount"`
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	GetAll(filter AccountFilter) ([]models.Account, error)
	GetByID(id string) (*models.Account, error)
	GetBalance(id string) (*AccountBalance, error)
	Create(input AccountInput) (*models.Account, error)
	Update(id string, input AccountUpdate) (*models.Account, error)
	Delete(id string) (*models.Account, error)
	HardDelete(id string) error
	GetTotalBalance() (*TotalBalance, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	AccountID  *string
	CategoryID *string
	Type       *models.TransactionType
	StartDate  *time.Time
	EndDate    *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     *string
}

// TransactionInput holds the fields accepted when creating a transaction.
type TransactionInput struct {
	AccountID    string
	CategoryID   *string
	Type         models.TransactionType
	Amount       decimal.Decimal
	Description  string
	Notes        *string
	Date         time.Time
	ToAccountID  *string
	Tags         []string
	ReceiptURL   *string
	IsReconciled *bool
}

// TransactionUpdate holds the fields accepted when updating a transaction.
// Absent fields are left unchanged; nullable fields carrying an explicit null
// clear the column.
type TransactionUpdate struct {
	AccountID    *string
	CategoryID   nullable.String
	Type         *models.TransactionType
	Amount       *decimal.Decimal
	Description  *string
	Notes        nullable.String
	Date         *time.Time
	ToAccountID  nullable.String
	Tags         []string
	ReceiptURL   nullable.String
	IsReconciled *bool
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	GetAll(filter TransactionFilter, page pagination.PageRequest) ([]models.Transaction, error)
	GetByID(id string) (*models.Transaction, error)
	Create(input TransactionInput) (*models.Transaction, error)
	Update(id string, input TransactionUpdate) (*models.Transaction, error)
	Delete(id string) error
}
