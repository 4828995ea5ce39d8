// Package render projects an InspectionResult into the scorecard view model
// the results page displays. Projection is pure: the same result always
// yields an identical scorecard, and no presentation concern leaks back into
// the domain.
package render

import (
	"fmt"

	"fahs/internal/domain"
)

// Scorecard is the fully rendered results view.
type Scorecard struct {
	Verdict            VerdictCard     `json:"verdict"`
	RestaurantName     string          `json:"restaurant_name"`
	CommercialRegister string          `json:"commercial_register"`
	InspectionID       string          `json:"inspection_id"`
	Timestamp          string          `json:"timestamp"`
	Criteria           []CriterionCard `json:"criteria"`
	HasPDFReport       bool            `json:"has_pdf_report"`
}

// VerdictCard is the overall summary block.
type VerdictCard struct {
	Status  domain.ComplianceStatus `json:"status"`
	Icon    string                  `json:"icon"`
	Color   string                  `json:"color"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Score   string                  `json:"score"`
}

// CriterionCard is one rendered compliance dimension.
type CriterionCard struct {
	CriterionID int                     `json:"criterion_id"`
	Name        string                  `json:"name"`
	Status      domain.ComplianceStatus `json:"status"`
	Icon        string                  `json:"icon"`
	Color       string                  `json:"color"`
	Label       string                  `json:"label"`
	Score       float64                 `json:"score"`
	Confidence  string                  `json:"confidence"`
	Details     []string                `json:"details"`
}

// verdictStyle is the fixed per-status presentation lookup. Any status
// outside the table renders with the non_compliant entry.
type verdictStyle struct {
	icon    string
	color   string
	title   string
	message string
	label   string
	mark    string
}

var verdictStyles = map[domain.ComplianceStatus]verdictStyle{
	domain.StatusCompliant: {
		icon:    "🎉",
		color:   "success",
		title:   "مستوفي للمعايير",
		message: "تهانينا! المنشأة مستوفية لجميع المعايير المطلوبة",
		label:   "مستوفي",
		mark:    "✓",
	},
	domain.StatusNeedsImprovement: {
		icon:    "⚠️",
		color:   "warning",
		title:   "يحتاج تحسينات",
		message: "المنشأة بحاجة إلى بعض التحسينات البسيطة",
		label:   "يحتاج تحسين",
		mark:    "⚠",
	},
	domain.StatusNonCompliant: {
		icon:    "❌",
		color:   "danger",
		title:   "غير مستوفي",
		message: "يرجى معالجة النقاط غير المستوفاة قبل إعادة الفحص",
		label:   "غير مستوفي",
		mark:    "✗",
	},
}

func styleFor(status domain.ComplianceStatus) verdictStyle {
	return verdictStyles[status.Normalize()]
}

// BuildScorecard renders the complete results view from a stored result.
func BuildScorecard(result *domain.InspectionResult) Scorecard {
	style := styleFor(result.OverallStatus)

	card := Scorecard{
		Verdict: VerdictCard{
			Status:  result.OverallStatus.Normalize(),
			Icon:    style.icon,
			Color:   style.color,
			Title:   style.title,
			Message: style.message,
			Score:   fmt.Sprintf("%.1f/100", result.OverallScore),
		},
		RestaurantName:     result.RestaurantName,
		CommercialRegister: result.CommercialRegister,
		InspectionID:       result.InspectionID,
		Timestamp:          result.Timestamp,
		Criteria:           make([]CriterionCard, 0, len(result.Criteria)),
		HasPDFReport:       result.PDFReport != "",
	}

	for _, criterion := range result.Criteria {
		card.Criteria = append(card.Criteria, buildCriterionCard(criterion))
	}
	return card
}

func buildCriterionCard(criterion domain.CriterionResult) CriterionCard {
	style := styleFor(criterion.Status)
	return CriterionCard{
		CriterionID: criterion.CriterionID,
		Name:        criterion.CriterionName,
		Status:      criterion.Status.Normalize(),
		Icon:        style.mark,
		Color:       style.color,
		Label:       style.label,
		Score:       criterion.Score,
		Confidence:  fmt.Sprintf("%.0f%%", criterion.Confidence*100),
		Details:     detailLines(criterion.Details),
	}
}

// detailLines collects every description in the mapping's insertion order.
// Areas without a description are silently skipped.
func detailLines(details domain.CriterionDetails) []string {
	lines := make([]string, 0, len(details))
	for _, area := range details {
		if area.Description != "" {
			lines = append(lines, area.Description)
		}
	}
	return lines
}
