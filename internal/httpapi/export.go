package httpapi

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/studyhub/internal/navigation"
)

const reviewSheet = "Review"

// ReviewWorkbook renders a finished test as an xlsx file: one row per
// question followed by a score line.
func ReviewWorkbook(res navigation.ResultView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reviewSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headers := []string{"#", "Question", "Your Answer", "Correct Answer", "Result", "Explanation"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(reviewSheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, r := range res.Review {
		result := "Incorrect"
		if r.Match {
			result = "Correct"
		}
		row := []any{r.Number, r.Prompt, r.Chosen, string(r.Correct), result, r.Explanation}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(reviewSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	summary := []any{"Score", fmt.Sprintf("%d / %d", res.Score, res.Total), fmt.Sprintf("%d%%", res.Percent)}
	cell, _ := excelize.CoordinatesToCellName(1, len(res.Review)+3)
	if err := f.SetSheetRow(reviewSheet, cell, &summary); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
