package handlers

import (
	"net/http"

	"nexivo_backend/internal/middleware"
	"nexivo_backend/internal/services"
	"nexivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JoinHandler struct {
	*BaseHandler
	joins *services.JoinService
}

func NewJoinHandler(base *BaseHandler, joins *services.JoinService) *JoinHandler {
	return &JoinHandler{BaseHandler: base, joins: joins}
}

func (h *JoinHandler) RegisterRoutes(rg *gin.RouterGroup) {
	join := rg.Group("/join")
	{
		join.POST("/register", h.Create)
	}

	admin := rg.Group("/join")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", h.List)
	}
}

func (h *JoinHandler) Create(c *gin.Context) {
	var req dto.CreateJoinRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	request, err := h.joins.Create(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Join request submitted", "request": request})
}

func (h *JoinHandler) List(c *gin.Context) {
	db := h.GetDB(c)
	list, err := h.joins.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": list})
}
