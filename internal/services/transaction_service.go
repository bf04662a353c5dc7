package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "privfinos/internal/errors"
	"privfinos/internal/models"
	"privfinos/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// GetAll retrieves transactions matching the given filters, newest first.
func (s *transactionService) GetAll(filter TransactionFilter, page pagination.PageRequest) ([]models.Transaction, error) {
	page.Defaults()

	q := s.db.Model(&models.Transaction{})

	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	if filter.MinAmount != nil {
		q = q.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Where("amount <= ?", *filter.MaxAmount)
	}
	if filter.Search != nil && *filter.Search != "" {
		q = q.Where("description LIKE ?", "%"+*filter.Search+"%")
	}

	var transactions []models.Transaction
	if err := q.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetByID retrieves a transaction by ID.
func (s *transactionService) GetByID(id string) (*models.Transaction, error) {
	return findTransaction(s.db, id)
}

// Create creates a new transaction after validating every referenced row.
func (s *transactionService) Create(input TransactionInput) (*models.Transaction, error) {
	transaction := &models.Transaction{
		AccountID:   input.AccountID,
		CategoryID:  input.CategoryID,
		Type:        input.Type,
		Amount:      input.Amount.Round(2),
		Description: input.Description,
		Notes:       input.Notes,
		Date:        input.Date,
		ToAccountID: input.ToAccountID,
		Tags:        models.Tags(input.Tags),
		ReceiptURL:  input.ReceiptURL,
	}
	if transaction.Tags == nil {
		transaction.Tags = models.Tags{}
	}
	if input.IsReconciled != nil {
		transaction.IsReconciled = *input.IsReconciled
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkReferences(tx, input.AccountID, input.CategoryID, input.ToAccountID); err != nil {
			return err
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// Update applies a partial update, re-validating any changed references.
func (s *transactionService) Update(id string, input TransactionUpdate) (*models.Transaction, error) {
	var transaction *models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		transaction, err = findTransaction(tx, id)
		if err != nil {
			return err
		}

		accountID := transaction.AccountID
		if input.AccountID != nil {
			accountID = *input.AccountID
		}
		toAccountID := transaction.ToAccountID
		if input.ToAccountID.Present() {
			toAccountID = input.ToAccountID.Ptr()
		}
		if err := s.checkReferences(tx, accountID, input.CategoryID.Ptr(), toAccountID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if input.AccountID != nil {
			updates["account_id"] = *input.AccountID
		}
		if input.CategoryID.Present() {
			updates["category_id"] = input.CategoryID.Ptr()
		}
		if input.Type != nil {
			updates["type"] = *input.Type
		}
		if input.Amount != nil {
			updates["amount"] = input.Amount.Round(2)
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Notes.Present() {
			updates["notes"] = input.Notes.Ptr()
		}
		if input.Date != nil {
			updates["date"] = *input.Date
		}
		if input.ToAccountID.Present() {
			updates["to_account_id"] = input.ToAccountID.Ptr()
		}
		if input.Tags != nil {
			updates["tags"] = models.Tags(input.Tags)
		}
		if input.ReceiptURL.Present() {
			updates["receipt_url"] = input.ReceiptURL.Ptr()
		}
		if input.IsReconciled != nil {
			updates["is_reconciled"] = *input.IsReconciled
		}

		if len(updates) == 0 {
			// A body with no recognized fields still moves the timestamp.
			updates["updated_at"] = time.Now()
		}
		if err := tx.Model(transaction).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reload to get fresh data
		if err := tx.First(transaction, "id = ?", id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// Delete permanently removes a transaction. There is no soft-delete flag on
// transactions.
func (s *transactionService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := findTransaction(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// checkReferences validates the account, optional category, and optional
// destination account of a transaction.
func (s *transactionService) checkReferences(tx *gorm.DB, accountID string, categoryID, toAccountID *string) error {
	if _, err := findAccount(tx, accountID); err != nil {
		return err
	}
	if categoryID != nil {
		if _, err := findCategory(tx, *categoryID); err != nil {
			return err
		}
	}
	if toAccountID != nil {
		if *toAccountID == accountID {
			return apperrors.ErrSameAccountTransfer
		}
		if _, err := findAccount(tx, *toAccountID); err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.Code == apperrors.ErrAccountNotFound.Code {
				return apperrors.WithMessage(apperrors.ErrAccountNotFound, "Destination account not found")
			}
			return err
		}
	}
	return nil
}

// findTransaction fetches a transaction by ID within the given handle,
// mapping a missing row to the typed not-found error.
func findTransaction(tx *gorm.DB, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := tx.First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}
