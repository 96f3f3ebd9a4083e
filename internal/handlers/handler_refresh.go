package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
)

// refreshHandler exposes the manual pull-to-refresh entry point. It always
// reloads, bypassing the freshness policy.
type refreshHandler struct {
	refresher portssvc.RefresherSvcFacade
}

func registerRefreshRoute(rg *gin.RouterGroup, refresher portssvc.RefresherSvcFacade) {
	h := &refreshHandler{refresher: refresher}
	rg.POST("/refresh", h.refreshAll)
}

func (h *refreshHandler) refreshAll(c *gin.Context) {
	if err := h.refresher.RefreshAll(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to refresh data")
		return
	}
	meta := h.refresher.Meta()
	c.JSON(http.StatusOK, gin.H{"isLoading": meta.IsLoading, "isError": meta.IsError, "lastFetched": meta.LastFetched})
}
