package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactions portssvc.TransactionSvcFacade
	refresher    portssvc.RefresherSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactions portssvc.TransactionSvcFacade, refresher portssvc.RefresherSvcFacade) {
	h := &transactionHandler{transactions: transactions, refresher: refresher}

	routes := rg.Group("/transactions")
	{
		routes.GET("", h.listTransactions)
		routes.POST("", h.createTransaction)
		routes.PUT("/:id", h.updateTransaction)
		routes.DELETE("/:id", h.deleteTransaction)
	}
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.refresher.EnsureFresh(ctx); err != nil {
		respondError(c, err, "Failed to refresh transactions")
		return
	}
	resp := dto.NewCollectionResponse(dto.ToListTransactionResponse(h.transactions.ListTransactions(ctx)), h.refresher.Meta())
	c.JSON(http.StatusOK, resp)
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	txn, err := h.transactions.AddTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	txn, err := h.transactions.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	if err := h.transactions.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
