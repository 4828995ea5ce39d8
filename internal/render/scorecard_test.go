package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fahs/internal/domain"
)

func compliantResult() *domain.InspectionResult {
	return &domain.InspectionResult{
		InspectionID:       "INS-2025-000123",
		RestaurantName:     "مطعم الذواقة",
		CommercialRegister: "1010123456",
		OverallStatus:      domain.StatusCompliant,
		OverallScore:       95.3,
		Timestamp:          "2025-06-14T09:30:00Z",
		Criteria: []domain.CriterionResult{
			{
				CriterionID:   1,
				CriterionName: "نظافة الأسقف",
				Status:        domain.StatusCompliant,
				Score:         96.0,
				Confidence:    0.92,
			},
		},
		PDFReport: "/reports/INS-2025-000123.pdf",
	}
}

func TestBuildScorecard_CompliantVerdict(t *testing.T) {
	card := BuildScorecard(compliantResult())

	assert.Equal(t, domain.StatusCompliant, card.Verdict.Status)
	assert.Equal(t, "🎉", card.Verdict.Icon)
	assert.Equal(t, "success", card.Verdict.Color)
	assert.Equal(t, "مستوفي للمعايير", card.Verdict.Title)
	assert.Equal(t, "95.3/100", card.Verdict.Score)
	assert.True(t, card.HasPDFReport)

	require.Len(t, card.Criteria, 1)
	assert.Equal(t, "مستوفي", card.Criteria[0].Label)
	assert.Equal(t, "✓", card.Criteria[0].Icon)
	assert.Equal(t, "92%", card.Criteria[0].Confidence)
}

func TestBuildScorecard_NeedsImprovementVerdict(t *testing.T) {
	result := compliantResult()
	result.OverallStatus = domain.StatusNeedsImprovement
	result.OverallScore = 71.0

	card := BuildScorecard(result)

	assert.Equal(t, "⚠️", card.Verdict.Icon)
	assert.Equal(t, "warning", card.Verdict.Color)
	assert.Equal(t, "يحتاج تحسينات", card.Verdict.Title)
	assert.Equal(t, "71.0/100", card.Verdict.Score)
}

func TestBuildScorecard_UnknownStatusFallsBack(t *testing.T) {
	result := compliantResult()
	result.OverallStatus = "partially_compliant"
	result.Criteria[0].Status = "unknown"

	card := BuildScorecard(result)

	// Anything outside the taxonomy renders as non_compliant.
	assert.Equal(t, domain.StatusNonCompliant, card.Verdict.Status)
	assert.Equal(t, "غير مستوفي", card.Verdict.Title)
	assert.Equal(t, "danger", card.Criteria[0].Color)
	assert.Equal(t, "✗", card.Criteria[0].Icon)
}

func TestBuildScorecard_NoPDFReport(t *testing.T) {
	result := compliantResult()
	result.PDFReport = ""

	card := BuildScorecard(result)
	assert.False(t, card.HasPDFReport)
}

func TestBuildScorecard_DetailLinesKeepInsertionOrder(t *testing.T) {
	var details domain.CriterionDetails
	raw := []byte(`{"zone_c":{"description":"ثالث"},"zone_a":{"description":"أول"},"zone_b":{"clean":true},"zone_d":{"description":"رابع"}}`)
	require.NoError(t, json.Unmarshal(raw, &details))

	result := compliantResult()
	result.Criteria[0].Details = details

	card := BuildScorecard(result)

	// Entries render in the order the payload wrote them; entries without a
	// description are skipped.
	assert.Equal(t, []string{"ثالث", "أول", "رابع"}, card.Criteria[0].Details)
}

func TestBuildScorecard_IsPure(t *testing.T) {
	result := compliantResult()
	first := BuildScorecard(result)
	second := BuildScorecard(result)

	assert.Equal(t, first, second)

	// Building the card must not mutate the result.
	assert.Equal(t, domain.StatusCompliant, result.OverallStatus)
	assert.Equal(t, 95.3, result.OverallScore)
}
