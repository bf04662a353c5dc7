package main

import (
	"fmt"
	"os"

	"privfinos/internal/config"
	"privfinos/internal/database"
	"privfinos/internal/logger"
	"privfinos/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	logger.Init(os.Getenv("NODE_ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	log.Info("Starting database seed")

	err = dbManager.DB().Transaction(func(tx *gorm.DB) error {
		if err := seedCategories(tx); err != nil {
			return err
		}
		return seedAccounts(tx)
	})
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Info("Database seeding completed successfully")
	return nil
}

func seedCategories(tx *gorm.DB) error {
	log := logger.Get()

	incomeCategories := []models.Category{
		{Name: "Salary", Type: models.CategoryTypeIncome, Color: strPtr("#10b981"), Icon: strPtr("💼"), SortOrder: 1, IsActive: true},
		{Name: "Freelance", Type: models.CategoryTypeIncome, Color: strPtr("#3b82f6"), Icon: strPtr("💻"), SortOrder: 2, IsActive: true},
		{Name: "Investment", Type: models.CategoryTypeIncome, Color: strPtr("#8b5cf6"), Icon: strPtr("📈"), SortOrder: 3, IsActive: true},
		{Name: "Business", Type: models.CategoryTypeIncome, Color: strPtr("#f59e0b"), Icon: strPtr("🏢"), SortOrder: 4, IsActive: true},
		{Name: "Gift", Type: models.CategoryTypeIncome, Color: strPtr("#ec4899"), Icon: strPtr("🎁"), SortOrder: 5, IsActive: true},
		{Name: "Other Income", Type: models.CategoryTypeIncome, Color: strPtr("#6366f1"), Icon: strPtr("💰"), SortOrder: 6, IsActive: true},
	}
	if err := tx.Create(&incomeCategories).Error; err != nil {
		return fmt.Errorf("income categories: %w", err)
	}
	log.Infof("Created %d income categories", len(incomeCategories))

	expenseCategories := []models.Category{
		{Name: "Housing", Type: models.CategoryTypeExpense, Color: strPtr("#ef4444"), Icon: strPtr("🏠"), SortOrder: 1, IsActive: true},
		{Name: "Transportation", Type: models.CategoryTypeExpense, Color: strPtr("#f97316"), Icon: strPtr("🚗"), SortOrder: 2, IsActive: true},
		{Name: "Food & Dining", Type: models.CategoryTypeExpense, Color: strPtr("#84cc16"), Icon: strPtr("🍽️"), SortOrder: 3, IsActive: true},
		{Name: "Utilities", Type: models.CategoryTypeExpense, Color: strPtr("#06b6d4"), Icon: strPtr("⚡"), SortOrder: 4, IsActive: true},
		{Name: "Healthcare", Type: models.CategoryTypeExpense, Color: strPtr("#ef4444"), Icon: strPtr("🏥"), SortOrder: 5, IsActive: true},
		{Name: "Entertainment", Type: models.CategoryTypeExpense, Color: strPtr("#ec4899"), Icon: strPtr("🎬"), SortOrder: 6, IsActive: true},
		{Name: "Shopping", Type: models.CategoryTypeExpense, Color: strPtr("#a855f7"), Icon: strPtr("🛍️"), SortOrder: 7, IsActive: true},
		{Name: "Education", Type: models.CategoryTypeExpense, Color: strPtr("#3b82f6"), Icon: strPtr("📚"), SortOrder: 8, IsActive: true},
		{Name: "Personal Care", Type: models.CategoryTypeExpense, Color: strPtr("#8b5cf6"), Icon: strPtr("💆"), SortOrder: 9, IsActive: true},
		{Name: "Other Expense", Type: models.CategoryTypeExpense, Color: strPtr("#64748b"), Icon: strPtr("📦"), SortOrder: 10, IsActive: true},
	}
	if err := tx.Create(&expenseCategories).Error; err != nil {
		return fmt.Errorf("expense categories: %w", err)
	}
	log.Infof("Created %d expense categories", len(expenseCategories))

	parents := make(map[string]models.Category, len(expenseCategories))
	for _, c := range expenseCategories {
		parents[c.Name] = c
	}

	subcategories := map[string][]string{
		"Housing":        {"Rent/Mortgage", "Property Tax", "Home Insurance", "Repairs & Maintenance"},
		"Transportation": {"Gas/Fuel", "Car Payment", "Car Insurance", "Public Transit", "Parking"},
		"Food & Dining":  {"Groceries", "Restaurants", "Coffee Shops", "Delivery"},
	}

	for parentName, names := range subcategories {
		parent := parents[parentName]
		children := make([]models.Category, 0, len(names))
		for i, name := range names {
			children = append(children, models.Category{
				Name:      name,
				Type:      models.CategoryTypeExpense,
				Color:     parent.Color,
				ParentID:  strPtr(parent.ID),
				SortOrder: i + 1,
				IsActive:  true,
			})
		}
		if err := tx.Create(&children).Error; err != nil {
			return fmt.Errorf("%s subcategories: %w", parentName, err)
		}
		log.Infof("Created %d %s subcategories", len(children), parentName)
	}

	return nil
}

func seedAccounts(tx *gorm.DB) error {
	accounts := []models.Account{
		{Name: "Checking Account", Type: models.AccountTypeChecking, Balance: decimal.RequireFromString("5000.00"), Currency: "USD", Color: strPtr("#3b82f6"), Icon: strPtr("🏦"), SortOrder: 1, IsActive: true},
		{Name: "Savings Account", Type: models.AccountTypeSavings, Balance: decimal.RequireFromString("10000.00"), Currency: "USD", Color: strPtr("#10b981"), Icon: strPtr("💰"), SortOrder: 2, IsActive: true},
		{Name: "Credit Card", Type: models.AccountTypeCreditCard, Balance: decimal.RequireFromString("-500.00"), Currency: "USD", Color: strPtr("#ef4444"), Icon: strPtr("💳"), SortOrder: 3, IsActive: true, Notes: strPtr("Main credit card for rewards")},
		{Name: "Cash", Type: models.AccountTypeCash, Balance: decimal.RequireFromString("200.00"), Currency: "USD", Color: strPtr("#84cc16"), Icon: strPtr("💵"), SortOrder: 4, IsActive: true},
	}
	if err := tx.Create(&accounts).Error; err != nil {
		return fmt.Errorf("accounts: %w", err)
	}
	logger.Get().Infof("Created %d accounts", len(accounts))
	return nil
}

func strPtr(s string) *string {
	return &s
}
