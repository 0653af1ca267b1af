package handlers

import (
	"net/http"

	"nexivo_backend/internal/middleware"
	"nexivo_backend/internal/services"
	"nexivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	*BaseHandler
	catalog     *services.CatalogService
	enrollments *services.EnrollmentService
	users       *services.UserService
}

func NewServiceHandler(base *BaseHandler, catalog *services.CatalogService, enrollments *services.EnrollmentService, users *services.UserService) *ServiceHandler {
	return &ServiceHandler{BaseHandler: base, catalog: catalog, enrollments: enrollments, users: users}
}

func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	svc := rg.Group("/services")
	{
		svc.GET("", h.List)
	}

	authed := rg.Group("/services")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/choose", h.ChooseServices)
		authed.POST("/enroll", h.Enroll)
	}

	admin := rg.Group("/services")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.GET("/enrollments", h.ListEnrollments)
		admin.PATCH("/enrollments/:id/status", h.UpdateEnrollmentStatus)
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	db := h.GetDB(c)
	list, err := h.catalog.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	image, name, mime, err := ReadFormFile(c, "image")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	userID, _ := h.GetAndAuthorizeUserID(c)
	db := h.GetDB(c)
	service, err := h.catalog.Create(c.Request.Context(), db, &req, image, name, mime, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Service created", "service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	image, name, mime, err := ReadFormFile(c, "image")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	service, err := h.catalog.Update(c.Request.Context(), db, c.Param("id"), &req, image, name, mime)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service updated", "service": service})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)
	if err := h.catalog.Delete(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (h *ServiceHandler) ChooseServices(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChooseServicesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	user, err := h.users.ChooseServices(c.Request.Context(), db, userID, req.Services)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Services selected", "user": user})
}

func (h *ServiceHandler) Enroll(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	enrollment, err := h.enrollments.Create(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Enrollment submitted", "enrollment": enrollment})
}

func (h *ServiceHandler) ListEnrollments(c *gin.Context) {
	db := h.GetDB(c)
	list, err := h.enrollments.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": list})
}

func (h *ServiceHandler) UpdateEnrollmentStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	enrollment, err := h.enrollments.UpdateStatus(c.Request.Context(), db, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "enrollment": enrollment})
}
