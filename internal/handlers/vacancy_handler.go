package handlers

import (
	"net/http"

	"nexivo_backend/internal/middleware"
	"nexivo_backend/internal/services"
	"nexivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	*BaseHandler
	vacancies *services.VacancyService
}

func NewVacancyHandler(base *BaseHandler, vacancies *services.VacancyService) *VacancyHandler {
	return &VacancyHandler{BaseHandler: base, vacancies: vacancies}
}

func (h *VacancyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vacancy := rg.Group("/vacancy")
	{
		vacancy.GET("", h.List)
		vacancy.GET("/:id", h.Get)
		vacancy.POST("/apply", h.Apply)
	}

	admin := rg.Group("/vacancy")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.GET("/applications/all", h.ListApplications)
		admin.PATCH("/applications/:id/status", h.UpdateApplicationStatus)
	}
}

func (h *VacancyHandler) List(c *gin.Context) {
	db := h.GetDB(c)
	list, err := h.vacancies.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacancies": list})
}

func (h *VacancyHandler) Get(c *gin.Context) {
	db := h.GetDB(c)
	vacancy, err := h.vacancies.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vacancy": vacancy})
}

func (h *VacancyHandler) Create(c *gin.Context) {
	var req dto.CreateVacancyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	vacancy, err := h.vacancies.Create(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vacancy created", "vacancy": vacancy})
}

func (h *VacancyHandler) Update(c *gin.Context) {
	var req dto.UpdateVacancyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	vacancy, err := h.vacancies.Update(c.Request.Context(), db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vacancy updated", "vacancy": vacancy})
}

func (h *VacancyHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)
	if err := h.vacancies.Delete(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vacancy deleted"})
}

func (h *VacancyHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	cv, name, mime, err := ReadFormFile(c, "cv")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	application, err := h.vacancies.Apply(c.Request.Context(), db, req.VacancyID, &req, cv, name, mime)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted", "application": application})
}

func (h *VacancyHandler) ListApplications(c *gin.Context) {
	db := h.GetDB(c)
	list, err := h.vacancies.ListApplications(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": list})
}

func (h *VacancyHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	application, err := h.vacancies.UpdateApplicationStatus(c.Request.Context(), db, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "application": application})
}
