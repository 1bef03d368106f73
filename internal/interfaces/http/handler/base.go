package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bukubiz/backend/internal/domain/shared"
	"github.com/bukubiz/backend/internal/infrastructure/logger"
	"github.com/bukubiz/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common response helpers for HTTP handlers
type BaseHandler struct{}

// Success sends a 200 response with the given data
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response with the given data
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with data and pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response for malformed input
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.respondError(c, dto.ErrCodeBadRequest, message)
}

// Error maps an application error to its HTTP response. Domain errors carry
// a code that decides the status; anything else is an internal error.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.respondError(c, code, domainErr.Message)
		return
	}

	logger.FromContext(c.Request.Context()).Error("unhandled error", zap.Error(err))
	h.respondError(c, dto.ErrCodeInternal, "internal server error")
}

func (h *BaseHandler) respondError(c *gin.Context, code, message string) {
	requestID := logger.GetRequestID(c.Request.Context())
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// parseUUIDParam parses a UUID path parameter, responding 400 on failure.
// The bool result reports whether parsing succeeded.
func (h *BaseHandler) parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.respondError(c, dto.ErrCodeInvalidInput, "invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
