// Package web holds the HTTP boundary: handler type, response helpers and
// the error policy applied to everything the service returns.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
)

// A Handler is a gin handler that returns an error instead of writing
// error responses itself. The Error middleware translates the error.
type Handler func(ctx *gin.Context) error

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Respond writes data as JSON with the given status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) {
	ctx.JSON(statusCode, data)
}

// Wrap adapts a Handler into a gin.HandlerFunc, applying the error policy:
// client-addressable errors surface their details, everything else is
// logged in full and returned as a generic message.
func Wrap(log logger.Logger, handler Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := handler(ctx); err != nil {
			RespondError(ctx, log, err)
		}
	}
}

// RespondError normalizes err to a StandardError, logs the full detail
// server-side and writes the client-safe representation.
func RespondError(ctx *gin.Context, log logger.Logger, err error) {
	stdErr := normalizeError(err)

	log.Error("request failed", map[string]interface{}{
		"path":      ctx.FullPath(),
		"method":    ctx.Request.Method,
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
		"category":  apperrors.GetErrorCategory(stdErr.Code),
	})

	status := apperrors.HTTPStatus(stdErr.Code)
	resp := ErrorResponse{Error: stdErr.Message}
	if apperrors.SafeForClient(stdErr.Code) {
		resp.Code = string(stdErr.Code)
		if stdErr.Details != "" {
			resp.Error = stdErr.Message + ": " + stdErr.Details
		}
	} else {
		resp.Error = "Internal server error"
	}

	ctx.AbortWithStatusJSON(status, resp)
}

func normalizeError(err error) *apperrors.StandardError {
	if stdErr, ok := err.(*apperrors.StandardError); ok {
		return stdErr
	}
	return &apperrors.StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
	}
}

// CORS returns middleware mirroring the permissive headers the site's
// browser clients expect. An empty allowedOrigins list means any origin.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")

		if len(allowed) == 0 {
			ctx.Header("Access-Control-Allow-Origin", "*")
		} else if allowed[origin] {
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
		}
		ctx.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
