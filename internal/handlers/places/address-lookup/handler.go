// internal/handlers/places/address-lookup/handler.go
package addresslookup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"therapy-paws/internal/common/logger"
)

const (
	AutocompleteRoute = "/api/address/autocomplete"
	DetailsRoute      = "/api/address/details"
)

type Handler struct {
	service *Service
	logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"handler": "address-lookup"}),
	}
}

func (h *Handler) HandleAutocomplete(ctx *gin.Context) error {
	output := h.service.Autocomplete(ctx.Request.Context(), ctx.Query("q"), ctx.Query("country"))
	ctx.JSON(http.StatusOK, output)
	return nil
}

func (h *Handler) HandleDetails(ctx *gin.Context) error {
	output, err := h.service.Details(ctx.Request.Context(), ctx.Query("placeId"))
	if err != nil {
		return err
	}

	ctx.JSON(http.StatusOK, output)
	return nil
}
