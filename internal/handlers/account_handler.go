package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"privfinos/internal/models"
	"privfinos/internal/nullable"
	"privfinos/internal/services"
)

// AccountHandler handles account-related requests
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name      string             `json:"name" binding:"required,min=1,max=100"`
	Type      models.AccountType `json:"type" binding:"required,account_type"`
	Balance   *float64           `json:"balance"`
	Currency  *string            `json:"currency" binding:"omitempty,iso4217"`
	Color     *string            `json:"color" binding:"omitempty,hex_color"`
	Icon      *string            `json:"icon" binding:"omitempty,max=50"`
	Notes     *string            `json:"notes" binding:"omitempty,max=500"`
	SortOrder *int               `json:"sortOrder"`
	IsActive  *bool              `json:"isActive"`
}

// UpdateAccountRequest represents the request payload for updating an
// account. Nullable fields sent as explicit JSON null clear the column.
type UpdateAccountRequest struct {
	Name      *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Type      *models.AccountType `json:"type" binding:"omitempty,account_type"`
	Balance   *float64            `json:"balance"`
	Currency  *string             `json:"currency" binding:"omitempty,iso4217"`
	Color     nullable.String     `json:"color" binding:"omitempty,hex_color"`
	Icon      nullable.String     `json:"icon" binding:"omitempty,max=50"`
	Notes     nullable.String     `json:"notes" binding:"omitempty,max=500"`
	SortOrder *int                `json:"sortOrder"`
	IsActive  *bool               `json:"isActive"`
}

// accountListQuery represents the query filters for listing accounts.
type accountListQuery struct {
	Type     *models.AccountType `form:"type" binding:"omitempty,account_type"`
	IsActive *bool               `form:"isActive"`
}

// GetAll handles listing accounts with optional filters
// @Summary     List accounts
// @Tags        accounts
// @Produce     json
// @Param       type query string false "Filter by account type"
// @Param       isActive query bool false "Filter by active flag"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /accounts [get]
func (h *AccountHandler) GetAll(c *gin.Context) {
	var query accountListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	accounts, err := h.accountService.GetAll(services.AccountFilter{
		Type:     query.Type,
		IsActive: query.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, accounts)
}

// GetByID handles the retrieval of a specific account
// @Summary     Get account by ID
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	account, err := h.accountService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, account)
}

// GetBalance handles the single-account balance view
// @Summary     Get account balance
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /accounts/{id}/balance [get]
func (h *AccountHandler) GetBalance(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	balance, err := h.accountService.GetBalance(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, balance)
}

// GetTotalBalance handles the aggregate balance over all active accounts
// @Summary     Get total balance
// @Description Naive sum over active accounts regardless of currency
// @Tags        accounts
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      /accounts/balance/total [get]
func (h *AccountHandler) GetTotalBalance(c *gin.Context) {
	total, err := h.accountService.GetTotalBalance()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, total)
}

// Create handles the creation of a new account
// @Summary     Create an account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	input := services.AccountInput{
		Name:      req.Name,
		Type:      req.Type,
		Currency:  req.Currency,
		Color:     req.Color,
		Icon:      req.Icon,
		Notes:     req.Notes,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	}
	if req.Balance != nil {
		balance := decimal.NewFromFloat(*req.Balance)
		input.Balance = &balance
	}

	account, err := h.accountService.Create(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusCreated, account)
}

// Update handles updating an account
// @Summary     Update account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id path string true "Account ID"
// @Param       request body UpdateAccountRequest true "Updated account details"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	input := services.AccountUpdate{
		Name:      req.Name,
		Type:      req.Type,
		Currency:  req.Currency,
		Color:     req.Color,
		Icon:      req.Icon,
		Notes:     req.Notes,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	}
	if req.Balance != nil {
		balance := decimal.NewFromFloat(*req.Balance)
		input.Balance = &balance
	}

	account, err := h.accountService.Update(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, account)
}

// Delete handles soft-deleting an account
// @Summary     Soft-delete account
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	account, err := h.accountService.Delete(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, account)
}

// HardDelete handles permanently deleting an account
// @Summary     Permanently delete account
// @Description Removes the account; dependent transactions cascade away
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /accounts/{id}/hard [delete]
func (h *AccountHandler) HardDelete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.accountService.HardDelete(id); err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"success": true, "message": "Account permanently deleted"})
}
