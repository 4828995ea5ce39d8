package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"fahs/internal/domain"
	"fahs/internal/render"
)

const sheetName = "Scorecard"

// BuildWorkbook renders the result as an XLSX workbook with a summary block
// followed by one row per criterion. The caller owns closing the file.
func BuildWorkbook(result *domain.InspectionResult) (*excelize.File, error) {
	card := render.BuildScorecard(result)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Restaurant", card.RestaurantName},
		{"Commercial Register", card.CommercialRegister},
		{"Inspection ID", card.InspectionID},
		{"Inspected At", card.Timestamp},
		{"Overall Status", card.Verdict.Title},
		{"Overall Score", card.Verdict.Score},
	}
	row := 1
	for _, pair := range summary {
		if err := setRow(f, row, pair); err != nil {
			return nil, err
		}
		row++
	}

	// Blank row, then the criteria table.
	row++
	header := []interface{}{"Criterion ID", "Criterion", "Status", "Score", "Confidence", "Details"}
	if err := setRow(f, row, header); err != nil {
		return nil, err
	}
	row++

	for _, criterion := range card.Criteria {
		values := []interface{}{
			criterion.CriterionID,
			criterion.Name,
			criterion.Label,
			criterion.Score,
			criterion.Confidence,
			strings.Join(criterion.Details, "; "),
		}
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
		row++
	}

	return f, nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
