package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriterionDetails_PreservesKeyOrder(t *testing.T) {
	raw := []byte(`{"front":{"description":"المدخل"},"kitchen":{"description":"المطبخ","grease":true},"storage":{"description":"المستودع"}}`)

	var details CriterionDetails
	require.NoError(t, json.Unmarshal(raw, &details))

	require.Len(t, details, 3)
	assert.Equal(t, "front", details[0].Key)
	assert.Equal(t, "kitchen", details[1].Key)
	assert.Equal(t, "storage", details[2].Key)
	assert.Equal(t, "المطبخ", details[1].Description)
}

func TestCriterionDetails_RoundTrip(t *testing.T) {
	raw := []byte(`{"zone_b":{"description":"ب","score":4.5},"zone_a":{"description":"أ"},"zone_c":{"flag":false}}`)

	var details CriterionDetails
	require.NoError(t, json.Unmarshal(raw, &details))

	out, err := json.Marshal(details)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))

	// Key order survives the round trip, which JSONEq does not check.
	var again CriterionDetails
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, "zone_b", again[0].Key)
	assert.Equal(t, "zone_a", again[1].Key)
	assert.Equal(t, "zone_c", again[2].Key)
}

func TestCriterionDetails_EntriesWithoutDescription(t *testing.T) {
	raw := []byte(`{"a":{"clean":true},"b":{"description":""}}`)

	var details CriterionDetails
	require.NoError(t, json.Unmarshal(raw, &details))

	require.Len(t, details, 2)
	assert.Empty(t, details[0].Description)
	assert.Empty(t, details[1].Description)
}

func TestCriterionDetails_Null(t *testing.T) {
	var details CriterionDetails
	require.NoError(t, json.Unmarshal([]byte(`null`), &details))
	assert.Nil(t, details)

	out, err := json.Marshal(details)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestCriterionDetails_RejectsNonObject(t *testing.T) {
	var details CriterionDetails
	assert.Error(t, json.Unmarshal([]byte(`["a","b"]`), &details))
}

func TestInspectionResult_DecodeFullPayload(t *testing.T) {
	payload := []byte(`{
		"inspection_id": "INS-2025-000123",
		"restaurant_name": "مطعم الذواقة",
		"commercial_register": "1010123456",
		"overall_status": "compliant",
		"overall_score": 95.3,
		"timestamp": "2025-06-14T09:30:00.123456",
		"criteria": [
			{
				"criterion_id": 3,
				"criterion_name": "نظافة الأرضيات",
				"status": "needs_improvement",
				"score": 72.5,
				"confidence": 0.88,
				"details": {"prep_area":{"description":"منطقة التحضير"},"dining":{"description":"الصالة"}}
			}
		],
		"pdf_report": "/reports/INS-2025-000123.pdf"
	}`)

	var result InspectionResult
	require.NoError(t, json.Unmarshal(payload, &result))

	assert.Equal(t, "INS-2025-000123", result.InspectionID)
	assert.Equal(t, StatusCompliant, result.OverallStatus)
	assert.Equal(t, 95.3, result.OverallScore)
	// The timestamp stays the string the analysis service produced.
	assert.Equal(t, "2025-06-14T09:30:00.123456", result.Timestamp)

	require.Len(t, result.Criteria, 1)
	criterion := result.Criteria[0]
	assert.Equal(t, StatusNeedsImprovement, criterion.Status)
	require.Len(t, criterion.Details, 2)
	assert.Equal(t, "prep_area", criterion.Details[0].Key)
}

func TestComplianceStatus_Normalize(t *testing.T) {
	assert.Equal(t, StatusCompliant, StatusCompliant.Normalize())
	assert.Equal(t, StatusNeedsImprovement, StatusNeedsImprovement.Normalize())
	assert.Equal(t, StatusNonCompliant, ComplianceStatus("partially_compliant").Normalize())
	assert.Equal(t, StatusNonCompliant, ComplianceStatus("").Normalize())
}
