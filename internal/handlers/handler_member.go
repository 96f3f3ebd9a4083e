package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
)

// memberHandler handles HTTP requests related to loan-tracker members.
type memberHandler struct {
	members   portssvc.MemberSvcFacade
	refresher portssvc.RefresherSvcFacade
}

func registerMemberRoutes(rg *gin.RouterGroup, members portssvc.MemberSvcFacade, refresher portssvc.RefresherSvcFacade) {
	h := &memberHandler{members: members, refresher: refresher}

	routes := rg.Group("/members")
	{
		routes.GET("", h.listMembers)
		routes.POST("", h.createMember)
		routes.PUT("/:id", h.updateMember)
		routes.DELETE("/:id", h.deleteMember)
	}
}

func (h *memberHandler) listMembers(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.refresher.EnsureFresh(ctx); err != nil {
		respondError(c, err, "Failed to refresh members")
		return
	}
	resp := dto.NewCollectionResponse(dto.ToListMemberResponse(h.members.ListMembers(ctx)), h.refresher.Meta())
	c.JSON(http.StatusOK, resp)
}

func (h *memberHandler) createMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := h.members.AddMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *memberHandler) updateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := h.members.UpdateMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *memberHandler) deleteMember(c *gin.Context) {
	if err := h.members.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete member")
		return
	}
	c.Status(http.StatusNoContent)
}
