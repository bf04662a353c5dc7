package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// Category represents a transaction category. Categories form a flat
// parent/child hierarchy: ParentID references another category but carries
// no database-level referential action; the service layer validates it.
type Category struct {
	Base
	Name      string       `gorm:"size:100;not null" json:"name"`
	Type      CategoryType `gorm:"not null" json:"type"`
	Color     *string      `gorm:"size:7" json:"color"`
	Icon      *string      `gorm:"size:50" json:"icon"`
	ParentID  *string      `gorm:"type:uuid" json:"parentId"`
	SortOrder int          `gorm:"not null;default:0" json:"sortOrder"`
	IsActive  bool         `gorm:"not null;default:true" json:"isActive"`
}
