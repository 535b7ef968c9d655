// internal/handlers/contact/send-contact-notification/handler.go
package sendcontactnotification

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/validation"
)

const Route = "/api/send-contact-notification"

type Handler struct {
	service *Service
	logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"handler": "send-contact-notification"}),
	}
}

// Handle validates the raw body against the input schema before decoding,
// so missing-field errors name every offending field at once.
func (h *Handler) Handle(ctx *gin.Context) error {
	var raw map[string]interface{}
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		return errors.NewValidationFailedError(err.Error())
	}

	result := validation.ValidateInput(raw, GetInputSchema())
	if !result.Valid {
		return errors.NewValidationFailedError(strings.Join(result.GetErrorMessages(), "; "))
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return errors.NewValidationFailedError(err.Error())
	}
	var input Input
	if err := json.Unmarshal(data, &input); err != nil {
		return errors.NewValidationFailedError(err.Error())
	}

	output, err := h.service.Execute(ctx.Request.Context(), &input)
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, output)
	return nil
}
