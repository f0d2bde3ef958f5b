package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/subtrack/subtrack_backend/internal/apperrors"
	portssvc "github.com/subtrack/subtrack_backend/internal/core/ports/services"
	"github.com/subtrack/subtrack_backend/internal/dto"
	"github.com/subtrack/subtrack_backend/internal/middleware"
)

// masterAccountHandler handles HTTP requests related to master accounts.
type masterAccountHandler struct {
	accountService portssvc.MasterAccountSvcFacade
}

// registerMasterAccountRoutes registers routes related to master accounts.
func registerMasterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.MasterAccountSvcFacade) {
	h := &masterAccountHandler{accountService: accountService}

	accounts := rg.Group("/master-accounts")
	{
		accounts.POST("", h.createMasterAccount)
		accounts.GET("", h.listMasterAccounts)
		accounts.GET("/:id", h.getMasterAccountByID)
		accounts.PATCH("/:id", h.updateMasterAccount)
		accounts.DELETE("/:id", h.deleteMasterAccount)
		accounts.POST("/bulk-delete", h.bulkDeleteMasterAccounts)
	}
}

// createMasterAccount godoc
// @Summary Create a new master account
// @Description Adds a capacity pool for a product
// @Tags master-accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateMasterAccountRequest true "Master account details"
// @Success 201 {object} dto.MasterAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to create master account"
// @Router /master-accounts [post]
func (h *masterAccountHandler) createMasterAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMasterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMasterAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateMasterAccount(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create master account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create master account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMasterAccountResponse(account))
}

// listMasterAccounts godoc
// @Summary List master accounts
// @Tags master-accounts
// @Produce json
// @Param productId query string false "Filter by product"
// @Success 200 {array} dto.MasterAccountResponse
// @Failure 500 {object} map[string]string "Failed to list master accounts"
// @Router /master-accounts [get]
func (h *masterAccountHandler) listMasterAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMasterAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.accountService.ListMasterAccounts(c.Request.Context(), params.ProductID)
	if err != nil {
		logger.Error("Failed to list master accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list master accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMasterAccountResponses(accounts))
}

// getMasterAccountByID godoc
// @Summary Get a master account by ID
// @Tags master-accounts
// @Produce json
// @Param id path string true "Master account ID"
// @Success 200 {object} dto.MasterAccountResponse
// @Failure 404 {object} map[string]string "Master account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve master account"
// @Router /master-accounts/{id} [get]
func (h *masterAccountHandler) getMasterAccountByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	account, err := h.accountService.GetMasterAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Master account not found"})
		} else {
			logger.Error("Failed to get master account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve master account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMasterAccountResponse(account))
}

// updateMasterAccount godoc
// @Summary Update a master account
// @Description Updates name, capacity or active flag; the usage counter is not settable
// @Tags master-accounts
// @Accept json
// @Produce json
// @Param id path string true "Master account ID"
// @Param account body dto.UpdateMasterAccountRequest true "Fields to update"
// @Success 200 {object} dto.MasterAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Master account not found"
// @Failure 500 {object} map[string]string "Failed to update master account"
// @Router /master-accounts/{id} [patch]
func (h *masterAccountHandler) updateMasterAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.UpdateMasterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMasterAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateMasterAccount(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Master account not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update master account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update master account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMasterAccountResponse(account))
}

// deleteMasterAccount godoc
// @Summary Delete a master account
// @Description Releases the account's subscriptions before removing it
// @Tags master-accounts
// @Produce json
// @Param id path string true "Master account ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Master account not found"
// @Failure 500 {object} map[string]string "Failed to delete master account"
// @Router /master-accounts/{id} [delete]
func (h *masterAccountHandler) deleteMasterAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	if err := h.accountService.DeleteMasterAccount(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Master account not found"})
		} else {
			logger.Error("Failed to delete master account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete master account"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// bulkDeleteMasterAccounts godoc
// @Summary Bulk delete master accounts
// @Description Deletes each id independently and reports how many succeeded
// @Tags master-accounts
// @Accept json
// @Produce json
// @Param body body dto.BulkIDsRequest true "Account ids"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to delete master accounts"
// @Router /master-accounts/bulk-delete [post]
func (h *masterAccountHandler) bulkDeleteMasterAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkDeleteMasterAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deleted, err := h.accountService.BulkDeleteMasterAccounts(c.Request.Context(), req.IDs)
	if err != nil {
		logger.Error("Failed to bulk delete master accounts in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete master accounts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}
