package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/validator"
	"nexivo_backend/pkg/apperrors"
	"nexivo_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MaxUploadSize bounds any single uploaded file.
const MaxUploadSize = 10 << 20

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB pulls the gorm handle (pool or per-test transaction) out of the
// gin context. DBMiddleware guarantees it is there; a miss means the
// server is miswired, so panicking is the right call.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

// BindAndValidate_Form binds multipart/urlencoded form fields. File parts
// are read separately with ReadFormFile.
func (h *BaseHandler) BindAndValidate_Form(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind form body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	ctx := c.Request.Context()

	userIDVal, exists := c.Get("userID")
	if !exists {
		logger.CtxWarn(ctx, "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok || userIDStr == "" {
		logger.CtxWarn(ctx, "Unauthorized access: invalid userID in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid user ID in context"))
		return "", false
	}

	return userIDStr, true
}

// ReadFormFile loads one multipart file part into memory. A missing part
// is not an error: the caller decides whether the file is mandatory.
func ReadFormFile(c *gin.Context, field string) (data []byte, name string, mimeType string, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", "", nil
	}
	if fileHeader.Size > MaxUploadSize {
		return nil, "", "", apperrors.NewBadRequestError(fmt.Sprintf("File %q exceeds the %d MB limit", field, MaxUploadSize>>20))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", "", apperrors.InternalError(err)
	}
	defer closeQuietly(f)

	data, err = io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, "", "", apperrors.InternalError(err)
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, "", "", apperrors.NewBadRequestError(fmt.Sprintf("File %q exceeds the %d MB limit", field, MaxUploadSize>>20))
	}

	return data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), nil
}

func closeQuietly(f multipart.File) {
	_ = f.Close()
}
