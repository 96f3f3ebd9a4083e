package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
)

// accountHandler handles HTTP requests related to money-manager accounts.
type accountHandler struct {
	accounts  portssvc.AccountSvcFacade
	refresher portssvc.RefresherSvcFacade
}

func registerAccountRoutes(rg *gin.RouterGroup, accounts portssvc.AccountSvcFacade, refresher portssvc.RefresherSvcFacade) {
	h := &accountHandler{accounts: accounts, refresher: refresher}

	routes := rg.Group("/accounts")
	{
		routes.GET("", h.listAccounts)
		routes.POST("", h.createAccount)
		routes.PUT("/:id", h.updateAccount)
		routes.DELETE("/:id", h.deleteAccount)
	}
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.refresher.EnsureFresh(ctx); err != nil {
		respondError(c, err, "Failed to refresh accounts")
		return
	}
	resp := dto.NewCollectionResponse(dto.ToListAccountResponse(h.accounts.ListAccounts(ctx)), h.refresher.Meta())
	c.JSON(http.StatusOK, resp)
}

func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	account, err := h.accounts.AddAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	account, err := h.accounts.UpdateAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) deleteAccount(c *gin.Context) {
	if err := h.accounts.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}
