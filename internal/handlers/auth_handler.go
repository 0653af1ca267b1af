package handlers

import (
	"net/http"

	"nexivo_backend/internal/middleware"
	"nexivo_backend/internal/services"
	"nexivo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	auth  *services.AuthService
	users *services.UserService
}

func NewAuthHandler(base *BaseHandler, auth *services.AuthService, users *services.UserService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, auth: auth, users: users}
}

// RegisterRoutes mounts the account routes under /user.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/send-otp", h.SendOTP)
		user.POST("/login", h.Login)
		user.POST("/verify-email", h.VerifyEmail)
	}

	authed := rg.Group("/user")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/profile", h.GetProfile)
		authed.PUT("/edit-profile", h.EditProfile)
		authed.DELETE("/delete-profile", h.DeleteProfile)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.auth.Register(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":           "Registration successful. Please verify your email.",
		"user":              resp.User,
		"accountCount":      resp.AccountCount,
		"accountsRemaining": resp.AccountsRemaining,
	})
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	accounts, err := h.auth.SendOTP(c.Request.Context(), db, req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to email", "accounts": accounts})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	resp, err := h.auth.Login(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if resp.Token == "" {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Multiple accounts found. Pick one and retry with userId.",
			"accounts": resp.Accounts,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	if err := h.auth.VerifyEmail(c.Request.Context(), db, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	user, err := h.users.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) EditProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	image, name, mime, err := ReadFormFile(c, "profileImage")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)
	user, err := h.users.UpdateProfile(c.Request.Context(), db, userID, &req, image, name, mime)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

func (h *AuthHandler) DeleteProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.users.DeleteAccount(c.Request.Context(), db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}
