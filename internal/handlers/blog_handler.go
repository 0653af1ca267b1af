package handlers

import (
	"net/http"

	"nexivo_backend/internal/middleware"
	"nexivo_backend/internal/services"
	"nexivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogs *services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{BaseHandler: base, blogs: blogs}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.List)
		blogs.GET("/:id", h.Get)
		blogs.POST("/:id/react", h.React)
	}

	admin := rg.Group("/blogs")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *BlogHandler) List(c *gin.Context) {
	db := h.GetDB(c)
	list, err := h.blogs.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": list})
}

func (h *BlogHandler) Get(c *gin.Context) {
	db := h.GetDB(c)
	blog, err := h.blogs.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	thumbnail, name, mime, err := ReadFormFile(c, "thumbnail")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	blog, err := h.blogs.Create(c.Request.Context(), db, &req, thumbnail, name, mime)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Blog created", "blog": blog})
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req dto.UpdateBlogRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	thumbnail, name, mime, err := ReadFormFile(c, "thumbnail")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	blog, err := h.blogs.Update(c.Request.Context(), db, c.Param("id"), &req, thumbnail, name, mime)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog updated", "blog": blog})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)
	if err := h.blogs.Delete(c.Request.Context(), db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}

func (h *BlogHandler) React(c *gin.Context) {
	var req dto.ReactionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	blog, err := h.blogs.React(c.Request.Context(), db, c.Param("id"), req.Kind)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}
