package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fahs/internal/export"
	"fahs/internal/middleware"
	"fahs/internal/service"
)

// ResultHandler handles the results-viewer endpoints.
type ResultHandler struct {
	resultService service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

func (h *ResultHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := middleware.GetSessionID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing session context")
		return uuid.Nil, false
	}
	return sessionID, true
}

// Result handles GET /api/v1/sessions/current/result
// @Summary Get the raw inspection result
// @Description Return the stored analysis payload exactly as the analysis service produced it
// @Tags results
// @Produce json
// @Success 200 {object} domain.InspectionResult "Stored result"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No result stored; restart the flow"
// @Security BearerAuth
// @Router /sessions/current/result [get]
func (h *ResultHandler) Result(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	payload, err := h.resultService.RawPayload(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Scorecard handles GET /api/v1/sessions/current/scorecard
// @Summary Get the rendered scorecard
// @Description Return the results view model: verdict block, per-criterion cards, and detail lines
// @Tags results
// @Produce json
// @Success 200 {object} Response{data=render.Scorecard} "Rendered scorecard"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No result stored; restart the flow"
// @Security BearerAuth
// @Router /sessions/current/scorecard [get]
func (h *ResultHandler) Scorecard(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	card, err := h.resultService.Scorecard(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, card)
}

// Report handles GET /api/v1/sessions/current/report
// @Summary Open the PDF report
// @Description Redirect to the PDF report hosted by the analysis service
// @Tags results
// @Success 302 "Redirect to the report"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No report attached to this result"
// @Security BearerAuth
// @Router /sessions/current/report [get]
func (h *ResultHandler) Report(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	url, err := h.resultService.ReportURL(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// Share handles POST /api/v1/sessions/current/share
// @Summary Share the report by email
// @Description Email the report link to the given address, or to the configured ministry address when omitted
// @Tags results
// @Accept json
// @Produce json
// @Param request body ShareRequest false "Recipient"
// @Success 200 {object} Response{data=MessageResponse} "Report shared"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No result or report available"
// @Security BearerAuth
// @Router /sessions/current/share [post]
func (h *ResultHandler) Share(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req ShareRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
	}

	if err := h.resultService.Share(c.Request.Context(), sessionID, req.Email); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "report link sent"})
}

// ExportCSV handles GET /api/v1/sessions/current/export/csv
// @Summary Export the scorecard as CSV
// @Description Download the scorecard as a UTF-8 CSV file (with BOM for Excel)
// @Tags results
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No result stored; restart the flow"
// @Security BearerAuth
// @Router /sessions/current/export/csv [get]
func (h *ResultHandler) ExportCSV(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.resultService.GetResult(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	buf.Write(export.BOM)
	w := export.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteResult(result); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, err)
		return
	}

	filename := exportFilename(result.RestaurantName, "csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX handles GET /api/v1/sessions/current/export/xlsx
// @Summary Export the scorecard as XLSX
// @Description Download the scorecard as an Excel workbook
// @Tags results
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "XLSX file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No result stored; restart the flow"
// @Security BearerAuth
// @Router /sessions/current/export/xlsx [get]
func (h *ResultHandler) ExportXLSX(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	result, err := h.resultService.GetResult(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	f, err := export.BuildWorkbook(result)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := exportFilename(result.RestaurantName, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// exportFilename builds a download name from the restaurant name and the
// current date. Spaces become underscores so the header stays simple.
func exportFilename(restaurantName, ext string) string {
	name := strings.ReplaceAll(strings.TrimSpace(restaurantName), " ", "_")
	if name == "" {
		name = "inspection"
	}
	return fmt.Sprintf("%s_%s.%s", name, time.Now().Format("2006-01-02"), ext)
}
