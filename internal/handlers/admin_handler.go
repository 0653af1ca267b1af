package handlers

import (
	"net/http"

	"nexivo_backend/internal/middleware"
	"nexivo_backend/internal/services"
	"nexivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	users       *services.UserService
	joins       *services.JoinService
	subscribers *services.SubscriberService
}

func NewAdminHandler(base *BaseHandler, users *services.UserService, joins *services.JoinService, subscribers *services.SubscriberService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, users: users, joins: joins, subscribers: subscribers}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Subscribing is open to anyone.
	rg.POST("/admin/subscribe", h.Subscribe)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/delete-user/:id", h.DeleteUser)
		admin.GET("/join-requests", h.ListJoinRequests)
		admin.GET("/subscribers", h.ListSubscribers)
	}
}

func (h *AdminHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	subscriber, created, err := h.subscribers.Subscribe(c.Request.Context(), db, req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Already subscribed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed", "subscriber": subscriber})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	db := h.GetDB(c)
	users, err := h.users.ListUsers(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	db := h.GetDB(c)
	if err := h.users.DeleteAccount(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ListJoinRequests(c *gin.Context) {
	db := h.GetDB(c)
	list, err := h.joins.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": list})
}

func (h *AdminHandler) ListSubscribers(c *gin.Context) {
	db := h.GetDB(c)
	list, err := h.subscribers.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": list})
}
