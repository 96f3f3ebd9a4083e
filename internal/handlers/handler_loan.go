package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
)

// loanHandler handles HTTP requests related to loans and returns.
type loanHandler struct {
	loans     portssvc.LoanSvcFacade
	refresher portssvc.RefresherSvcFacade
}

func registerLoanRoutes(rg *gin.RouterGroup, loans portssvc.LoanSvcFacade, refresher portssvc.RefresherSvcFacade) {
	h := &loanHandler{loans: loans, refresher: refresher}

	routes := rg.Group("/loans")
	{
		routes.GET("", h.listLoans)
		routes.POST("", h.createLoan)
		routes.PUT("/:id", h.updateLoan)
		routes.DELETE("/:id", h.deleteLoan)
	}
}

func (h *loanHandler) listLoans(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.refresher.EnsureFresh(ctx); err != nil {
		respondError(c, err, "Failed to refresh loans")
		return
	}
	resp := dto.NewCollectionResponse(dto.ToListLoanResponse(h.loans.ListLoans(ctx)), h.refresher.Meta())
	c.JSON(http.StatusOK, resp)
}

func (h *loanHandler) createLoan(c *gin.Context) {
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	loan, err := h.loans.AddLoan(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create loan")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

func (h *loanHandler) updateLoan(c *gin.Context) {
	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	loan, err := h.loans.UpdateLoan(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

func (h *loanHandler) deleteLoan(c *gin.Context) {
	if err := h.loans.DeleteLoan(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete loan")
		return
	}
	c.Status(http.StatusNoContent)
}
