package handler

import (
	"net/http"

	"leadintake/internal/leads/service"
	"leadintake/internal/leads/transport"
	"leadintake/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the token-gated internal lead surface.
type Handler struct {
	svc *service.Service
}

const msgInvalidRequest = "invalid request"

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the internal lead routes on the given group.
// The group is expected to carry the internal auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", h.Ping)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id/state", h.UpdateState)
}

func (h *Handler) Ping(c *gin.Context) {
	httpkit.OK(c, transport.PingResponse{Message: "internal leads endpoint"})
}

func (h *Handler) List(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgInvalidRequest, nil)
		return
	}

	page, err := h.svc.List(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, page)
}

func (h *Handler) GetByID(c *gin.Context) {
	lead, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, lead)
}

func (h *Handler) UpdateState(c *gin.Context) {
	var req transport.UpdateLeadStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgInvalidRequest, nil)
		return
	}

	lead, err := h.svc.UpdateState(c.Request.Context(), c.Param("id"), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, lead)
}
