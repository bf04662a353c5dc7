package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"privfinos/internal/models"
	"privfinos/internal/nullable"
	"privfinos/internal/pagination"
	"privfinos/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	AccountID    string                 `json:"accountId" binding:"required,uuid"`
	CategoryID   *string                `json:"categoryId" binding:"omitempty,uuid"`
	Type         models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount       *float64               `json:"amount" binding:"required"`
	Description  string                 `json:"description" binding:"required,min=1,max=200"`
	Notes        *string                `json:"notes" binding:"omitempty,max=1000"`
	Date         time.Time              `json:"date" binding:"required"`
	ToAccountID  *string                `json:"toAccountId" binding:"omitempty,uuid"`
	Tags         []string               `json:"tags"`
	ReceiptURL   *string                `json:"receiptUrl" binding:"omitempty,url"`
	IsReconciled *bool                  `json:"isReconciled"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Nullable fields sent as explicit JSON null clear the column.
type UpdateTransactionRequest struct {
	AccountID    *string                 `json:"accountId" binding:"omitempty,uuid"`
	CategoryID   nullable.String         `json:"categoryId" binding:"omitempty,uuid"`
	Type         *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	Amount       *float64                `json:"amount"`
	Description  *string                 `json:"description" binding:"omitempty,min=1,max=200"`
	Notes        nullable.String         `json:"notes" binding:"omitempty,max=1000"`
	Date         *time.Time              `json:"date"`
	ToAccountID  nullable.String         `json:"toAccountId" binding:"omitempty,uuid"`
	Tags         []string                `json:"tags"`
	ReceiptURL   nullable.String         `json:"receiptUrl" binding:"omitempty,url"`
	IsReconciled *bool                   `json:"isReconciled"`
}

// transactionListQuery represents the query filters for listing transactions.
type transactionListQuery struct {
	AccountID  *string                 `form:"accountId" binding:"omitempty,uuid"`
	CategoryID *string                 `form:"categoryId" binding:"omitempty,uuid"`
	Type       *models.TransactionType `form:"type" binding:"omitempty,transaction_type"`
	StartDate  *string                 `form:"startDate"`
	EndDate    *string                 `form:"endDate"`
	MinAmount  *float64                `form:"minAmount"`
	MaxAmount  *float64                `form:"maxAmount"`
	Search     *string                 `form:"search"`
	pagination.PageRequest
}

// GetAll handles listing transactions with optional filters
// @Summary     List transactions
// @Tags        transactions
// @Produce     json
// @Param       accountId query string false "Filter by account"
// @Param       categoryId query string false "Filter by category"
// @Param       type query string false "Filter by transaction type"
// @Param       startDate query string false "Earliest date (RFC 3339)"
// @Param       endDate query string false "Latest date (RFC 3339)"
// @Param       minAmount query number false "Minimum amount"
// @Param       maxAmount query number false "Maximum amount"
// @Param       search query string false "Description substring"
// @Param       limit query int false "Page size (default 50, max 100)"
// @Param       offset query int false "Page offset"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /transactions [get]
func (h *TransactionHandler) GetAll(c *gin.Context) {
	var query transactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	filter := services.TransactionFilter{
		AccountID:  query.AccountID,
		CategoryID: query.CategoryID,
		Type:       query.Type,
		Search:     query.Search,
	}
	if query.StartDate != nil {
		t, err := time.Parse(time.RFC3339, *query.StartDate)
		if err != nil {
			respondValidationError(c, errors.New("invalid startDate filter"))
			return
		}
		filter.StartDate = &t
	}
	if query.EndDate != nil {
		t, err := time.Parse(time.RFC3339, *query.EndDate)
		if err != nil {
			respondValidationError(c, errors.New("invalid endDate filter"))
			return
		}
		filter.EndDate = &t
	}
	if query.MinAmount != nil {
		minAmount := decimal.NewFromFloat(*query.MinAmount)
		filter.MinAmount = &minAmount
	}
	if query.MaxAmount != nil {
		maxAmount := decimal.NewFromFloat(*query.MaxAmount)
		filter.MaxAmount = &maxAmount
	}

	transactions, err := h.transactionService.GetAll(filter, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, transactions)
}

// GetByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, transaction)
}

// Create handles the creation of a new transaction
// @Summary     Create a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	transaction, err := h.transactionService.Create(services.TransactionInput{
		AccountID:    req.AccountID,
		CategoryID:   req.CategoryID,
		Type:         req.Type,
		Amount:       decimal.NewFromFloat(*req.Amount),
		Description:  req.Description,
		Notes:        req.Notes,
		Date:         req.Date,
		ToAccountID:  req.ToAccountID,
		Tags:         req.Tags,
		ReceiptURL:   req.ReceiptURL,
		IsReconciled: req.IsReconciled,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusCreated, transaction)
}

// Update handles updating a transaction
// @Summary     Update transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Updated transaction details"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	input := services.TransactionUpdate{
		AccountID:    req.AccountID,
		CategoryID:   req.CategoryID,
		Type:         req.Type,
		Description:  req.Description,
		Notes:        req.Notes,
		Date:         req.Date,
		ToAccountID:  req.ToAccountID,
		Tags:         req.Tags,
		ReceiptURL:   req.ReceiptURL,
		IsReconciled: req.IsReconciled,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	transaction, err := h.transactionService.Update(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, transaction)
}

// Delete handles permanently deleting a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.transactionService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Transaction deleted"})
}
