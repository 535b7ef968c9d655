// internal/handlers/notifications/send-donation-confirmation/handler.go
package senddonationconfirmation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
)

const Route = "/api/send-donation-confirmation"

type Handler struct {
	service *Service
	logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"handler": "send-donation-confirmation"}),
	}
}

func (h *Handler) Handle(ctx *gin.Context) error {
	var input Input
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return errors.NewValidationFailedError(err.Error())
	}

	output, err := h.service.Execute(ctx.Request.Context(), &input)
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, output)
	return nil
}
