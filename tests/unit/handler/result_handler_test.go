package handler_test

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fahs/internal/domain"
	"fahs/internal/export"
	"fahs/internal/handler"
	"fahs/internal/render"
	"fahs/mocks"
)

func sampleResult() *domain.InspectionResult {
	return &domain.InspectionResult{
		InspectionID:       "INS-1",
		RestaurantName:     "مطعم الذواقة",
		CommercialRegister: "1010123456",
		OverallStatus:      domain.StatusCompliant,
		OverallScore:       95.3,
		Timestamp:          "2025-06-14T09:30:00",
		Criteria: []domain.CriterionResult{
			{CriterionID: 1, CriterionName: "نظافة الأسقف", Status: domain.StatusCompliant, Score: 96, Confidence: 0.92},
		},
		PDFReport: "/reports/INS-1.pdf",
	}
}

func TestResultHandler_Result_RawPassthrough(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewResultHandler(resultSvc)

	sessionID := uuid.New()
	raw := []byte(`{"inspection_id":"INS-1","overall_status":"compliant"}`)
	resultSvc.On("RawPayload", mock.Anything, sessionID).Return(raw, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/current/result", http.NoBody)
	setSessionContext(c, sessionID)

	h.Result(c)

	assert.Equal(t, http.StatusOK, w.Code)
	// The payload is served verbatim, not re-encoded.
	assert.Equal(t, raw, w.Body.Bytes())
}

func TestResultHandler_Result_NotStored(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewResultHandler(resultSvc)

	sessionID := uuid.New()
	resultSvc.On("RawPayload", mock.Anything, sessionID).Return(nil, domain.ErrResultNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/current/result", http.NoBody)
	setSessionContext(c, sessionID)

	h.Result(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RESULT_NOT_FOUND", resp.Error.Code)
	// The client is told where to restart the flow.
	assert.Equal(t, "/api/v1/sessions", resp.Error.Redirect)
}

func TestResultHandler_Scorecard(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewResultHandler(resultSvc)

	sessionID := uuid.New()
	card := render.BuildScorecard(sampleResult())
	resultSvc.On("Scorecard", mock.Anything, sessionID).Return(&card, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/current/scorecard", http.NoBody)
	setSessionContext(c, sessionID)

	h.Scorecard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "مستوفي للمعايير")
	assert.Contains(t, w.Body.String(), "95.3/100")
}

func TestResultHandler_Report_Redirects(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewResultHandler(resultSvc)

	sessionID := uuid.New()
	resultSvc.On("ReportURL", mock.Anything, sessionID).
		Return("https://restaurant-inspection-api.onrender.com/reports/INS-1.pdf", nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/current/report", http.NoBody)
	setSessionContext(c, sessionID)

	h.Report(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://restaurant-inspection-api.onrender.com/reports/INS-1.pdf", w.Header().Get("Location"))
}

func TestResultHandler_Report_Unavailable(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewResultHandler(resultSvc)

	sessionID := uuid.New()
	resultSvc.On("ReportURL", mock.Anything, sessionID).Return("", domain.ErrReportUnavailable)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/current/report", http.NoBody)
	setSessionContext(c, sessionID)

	h.Report(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResultHandler_ExportCSV(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewResultHandler(resultSvc)

	sessionID := uuid.New()
	resultSvc.On("GetResult", mock.Anything, sessionID).Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/current/export/csv", http.NoBody)
	setSessionContext(c, sessionID)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	// Verify BOM
	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, export.BOM, body[:3])

	// Parse CSV (skip BOM)
	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // header + 1 criterion

	assert.Equal(t, "Inspection ID", records[0][0])
	assert.Equal(t, "INS-1", records[1][0])
	assert.Equal(t, "نظافة الأسقف", records[1][4])
}

func TestResultHandler_ExportXLSX(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewResultHandler(resultSvc)

	sessionID := uuid.New()
	resultSvc.On("GetResult", mock.Anything, sessionID).Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/current/export/xlsx", http.NoBody)
	setSessionContext(c, sessionID)

	h.ExportXLSX(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestResultHandler_Share(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewResultHandler(resultSvc)

	sessionID := uuid.New()
	resultSvc.On("Share", mock.Anything, sessionID, "owner@example.com").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := strings.NewReader(`{"email":"owner@example.com"}`)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/sessions/current/share", body)
	c.Request.Header.Set("Content-Type", "application/json")
	setSessionContext(c, sessionID)

	h.Share(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resultSvc.AssertExpectations(t)
}

func TestInspectionHandler_Get(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewInspectionHandler(resultSvc)

	resultSvc.On("GetInspection", mock.Anything, "INS-1").Return(sampleResult(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/inspections/INS-1", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "INS-1"}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INS-1")
}

func TestInspectionHandler_Get_NotFound(t *testing.T) {
	resultSvc := new(mocks.MockResultService)
	h := handler.NewInspectionHandler(resultSvc)

	resultSvc.On("GetInspection", mock.Anything, "INS-404").Return(nil, domain.ErrResultNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/inspections/INS-404", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "INS-404"}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
