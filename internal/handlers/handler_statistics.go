package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
)

// statisticsHandler serves the cached, backend-computed aggregates.
type statisticsHandler struct {
	statistics portssvc.StatisticsSvcFacade
	refresher  portssvc.RefresherSvcFacade
}

func registerStatisticsRoutes(rg *gin.RouterGroup, statistics portssvc.StatisticsSvcFacade, refresher portssvc.RefresherSvcFacade) {
	h := &statisticsHandler{statistics: statistics, refresher: refresher}

	routes := rg.Group("/statistics")
	{
		routes.GET("/loans", h.getLoanStatistics)
		routes.GET("/money", h.getMoneyStatistics)
	}
}

func (h *statisticsHandler) getLoanStatistics(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.refresher.EnsureFresh(ctx); err != nil {
		respondError(c, err, "Failed to refresh statistics")
		return
	}
	c.JSON(http.StatusOK, h.statistics.LoanStatistics(ctx))
}

func (h *statisticsHandler) getMoneyStatistics(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.refresher.EnsureFresh(ctx); err != nil {
		respondError(c, err, "Failed to refresh statistics")
		return
	}
	c.JSON(http.StatusOK, h.statistics.MoneyStatistics(ctx))
}
