package handlers

import (
	"net/http"

	"nexivo_backend/internal/services"
	"nexivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	*BaseHandler
	contact *services.ContactService
}

func NewContactHandler(base *BaseHandler, contact *services.ContactService) *ContactHandler {
	return &ContactHandler{BaseHandler: base, contact: contact}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact/send", h.Send)
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.contact.Send(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
