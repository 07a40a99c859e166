package handler

import (
	"net/http"

	"leadintake/internal/leads/service"
	"leadintake/internal/leads/transport"
	"leadintake/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// PublicHandler exposes the unauthenticated lead submission surface.
type PublicHandler struct {
	svc *service.Service
}

const msgInvalidForm = "invalid form data"

func NewPublicHandler(svc *service.Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// RegisterRoutes mounts the public lead routes on the given group.
func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", h.Ping)
	rg.POST("", h.Create)
}

func (h *PublicHandler) Ping(c *gin.Context) {
	httpkit.OK(c, transport.PingResponse{Message: "public leads endpoint"})
}

// Create accepts the prospect form: first_name, last_name, email plus the
// resume file part.
func (h *PublicHandler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, msgInvalidForm, nil)
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "resume file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusUnprocessableEntity, "failed to read resume upload", nil)
		return
	}
	defer file.Close()

	lead, err := h.svc.Create(c.Request.Context(), req, service.ResumeUpload{
		Reader:      file,
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, lead)
}
