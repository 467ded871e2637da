package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/slangdict/internal/adapters/http/dto"
	"github.com/jsamuelsen/slangdict/internal/app"
	"github.com/jsamuelsen/slangdict/internal/domain"
)

// LookupHandler handles definition lookup HTTP endpoints.
type LookupHandler struct {
	service *app.LookupService
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(service *app.LookupService) *LookupHandler {
	return &LookupHandler{
		service: service,
	}
}

// toLookupResponse converts a lookup result to an HTTP response.
func toLookupResponse(result *app.LookupResult) *dto.LookupResponse {
	resp := &dto.LookupResponse{
		Term: result.Term,
		Status: dto.StatusResponse{
			State:   string(result.Status.State),
			Message: result.Status.Message,
		},
	}

	if result.Definition != nil {
		resp.Result = dto.NewRenderedDefinition(result.Definition)
	}

	return resp
}

// Define handles GET /api/v1/define?term=<term>
// Looks up the given term and returns its top definition.
//
// @Summary Look up a slang term
// @Description Fetches the top dictionary definition for the given term
// @Tags definitions
// @Produce json
// @Param term query string true "Term to look up"
// @Success 200 {object} dto.LookupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/define [get]
func (h *LookupHandler) Define(c *gin.Context) {
	var req dto.LookupRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		// The only validatable field is the term, and its only failure
		// mode is being absent or blank. Surface the canonical prompt
		// instead of the generic validator message.
		if dto.IsValidationError(err) {
			dto.HandleError(c, domain.NewValidationError("term", "enter a term"))
			return
		}

		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"invalid query parameters",
		).WithTraceID(dto.GetTraceID(c)))

		return
	}

	result, err := h.service.Lookup(c.Request.Context(), req.Term)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLookupResponse(result))
}

// RegisterLookupRoutes registers lookup routes on the given router group.
func (h *LookupHandler) RegisterLookupRoutes(rg *gin.RouterGroup) {
	rg.GET("/define", h.Define)
}
