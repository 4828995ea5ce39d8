package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fahs/internal/domain"
)

func sampleResult(t *testing.T) *domain.InspectionResult {
	t.Helper()

	var details domain.CriterionDetails
	require.NoError(t, json.Unmarshal([]byte(`{"dining":{"description":"الصالة"},"kitchen":{"description":"المطبخ"}}`), &details))

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
				Details:       details,
			},
			{
				CriterionID:   2,
				CriterionName: "الإضاءة",
				Status:        domain.StatusNeedsImprovement,
				Score:         70.5,
				Confidence:    0.8,
			},
		},
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 9)
	assert.Equal(t, "Inspection ID", row[0])
	assert.Equal(t, "Details", row[8])
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteResult(sampleResult(t)))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 criteria

	first := records[1]
	assert.Equal(t, "INS-2025-000123", first[0])
	assert.Equal(t, "مطعم الذواقة", first[1])
	assert.Equal(t, "1", first[3])
	assert.Equal(t, "نظافة الأسقف", first[4])
	assert.Equal(t, "مستوفي", first[5])
	assert.Equal(t, "96.0", first[6])
	assert.Equal(t, "92%", first[7])
	assert.Equal(t, "الصالة; المطبخ", first[8])

	second := records[2]
	assert.Equal(t, "يحتاج تحسين", second[5])
	assert.Equal(t, "", second[8])
}

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook(sampleResult(t))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	name, err := f.GetCellValue("Scorecard", "B1")
	require.NoError(t, err)
	assert.Equal(t, "مطعم الذواقة", name)

	score, err := f.GetCellValue("Scorecard", "B6")
	require.NoError(t, err)
	assert.Equal(t, "95.3/100", score)

	// Criteria table starts after the summary block and a blank row.
	header, err := f.GetCellValue("Scorecard", "A8")
	require.NoError(t, err)
	assert.Equal(t, "Criterion ID", header)

	criterion, err := f.GetCellValue("Scorecard", "B9")
	require.NoError(t, err)
	assert.Equal(t, "نظافة الأسقف", criterion)
}
