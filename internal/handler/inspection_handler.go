package handler

import (
	"github.com/gin-gonic/gin"

	"fahs/internal/service"
)

// InspectionHandler handles lookup of past inspections by ID.
type InspectionHandler struct {
	resultService service.ResultService
}

// NewInspectionHandler creates a new InspectionHandler.
func NewInspectionHandler(resultService service.ResultService) *InspectionHandler {
	return &InspectionHandler{resultService: resultService}
}

// Get handles GET /api/v1/inspections/:id
// @Summary Look up a past inspection
// @Description Return the stored result for an inspection ID issued by the analysis service
// @Tags inspections
// @Produce json
// @Param id path string true "Inspection ID"
// @Success 200 {object} Response{data=domain.InspectionResult} "Stored result"
// @Failure 404 {object} ErrorResponseBody "Inspection not found"
// @Router /inspections/{id} [get]
func (h *InspectionHandler) Get(c *gin.Context) {
	result, err := h.resultService.GetInspection(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
