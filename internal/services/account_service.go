package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "privfinos/internal/errors"
	"privfinos/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// GetAll retrieves accounts matching the given filters, ordered by sort
// order and then newest first.
func (s *accountService) GetAll(filter AccountFilter) ([]models.Account, error) {
	q := s.db.Model(&models.Account{})

	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	var accounts []models.Account
	if err := q.Order("sort_order ASC, created_at DESC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetByID retrieves an account by ID.
func (s *accountService) GetByID(id string) (*models.Account, error) {
	return findAccount(s.db, id)
}

// GetBalance returns the balance view for a single account.
func (s *accountService) GetBalance(id string) (*AccountBalance, error) {
	account, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &AccountBalance{
		AccountID: account.ID,
		Balance:   account.Balance.InexactFloat64(),
		Currency:  account.Currency,
	}, nil
}

// Create creates a new account. The balance is coerced to the two-decimal
// storage representation.
func (s *accountService) Create(input AccountInput) (*models.Account, error) {
	account := &models.Account{
		Name:     input.Name,
		Type:     input.Type,
		Balance:  decimal.Zero,
		Color:    input.Color,
		Icon:     input.Icon,
		Notes:    input.Notes,
		IsActive: true,
	}
	if input.Balance != nil {
		account.Balance = input.Balance.Round(2)
	}
	if input.Currency != nil {
		account.Currency = *input.Currency
	}
	if input.SortOrder != nil {
		account.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// Update applies a partial update to an existing account.
func (s *accountService) Update(id string, input AccountUpdate) (*models.Account, error) {
	var account *models.Account

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = findAccount(tx, id)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Type != nil {
			updates["type"] = *input.Type
		}
		if input.Balance != nil {
			updates["balance"] = input.Balance.Round(2)
		}
		if input.Currency != nil {
			updates["currency"] = *input.Currency
		}
		if input.Color.Present() {
			updates["color"] = input.Color.Ptr()
		}
		if input.Icon.Present() {
			updates["icon"] = input.Icon.Ptr()
		}
		if input.Notes.Present() {
			updates["notes"] = input.Notes.Ptr()
		}
		if input.SortOrder != nil {
			updates["sort_order"] = *input.SortOrder
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		if len(updates) == 0 {
			// A body with no recognized fields still moves the timestamp.
			updates["updated_at"] = time.Now()
		}
		if err := tx.Model(account).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reload to get fresh data
		if err := tx.First(account, "id = ?", id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Delete soft-deletes an account by marking it inactive. Its transactions
// are untouched.
func (s *accountService) Delete(id string) (*models.Account, error) {
	var account *models.Account

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = findAccount(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(account).Update("is_active", false).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// HardDelete permanently removes an account. Dependent transactions are
// removed by the database's cascade action, not by application code.
func (s *accountService) HardDelete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		account, err := findAccount(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(account).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GetTotalBalance sums the balance of every active account. The sum is a
// naive total over potentially mixed currencies and the currency label is
// hardcoded; changing either would change observable output.
func (s *accountService) GetTotalBalance() (*TotalBalance, error) {
	var accounts []models.Account
	if err := s.db.Where("is_active = ?", true).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	total := decimal.Zero
	for i := range accounts {
		total = total.Add(accounts[i].Balance)
	}

	return &TotalBalance{
		Total:        total.InexactFloat64(),
		Currency:     "USD",
		AccountCount: len(accounts),
	}, nil
}

// findAccount fetches an account by ID within the given handle, mapping a
// missing row to the typed not-found error.
func findAccount(tx *gorm.DB, id string) (*models.Account, error) {
	var account models.Account
	if err := tx.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}
