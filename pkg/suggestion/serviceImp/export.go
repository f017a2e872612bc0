package serviceImp

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Suggestions"

var exportHeader = []any{"Title", "Description", "Priority", "Category", "Completed", "Due Date", "Created"}

func (s *suggestionSvc) Export(ctx context.Context, farmerID string, w io.Writer) error {
	f, err := s.farmers.FindByID(ctx, farmerID)
	if err != nil {
		return err
	}
	list, err := s.r.ListByFarmer(ctx, f.ID)
	if err != nil {
		return err
	}

	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName(x.GetSheetName(0), exportSheet); err != nil {
		return err
	}
	if err := x.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	bold, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := x.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, sug := range list {
		due := ""
		if sug.DueDate != nil {
			due = sug.DueDate.Format("2006-01-02")
		}
		done := "no"
		if sug.IsCompleted {
			done = "yes"
		}
		row := []any{sug.Title, sug.Description, sug.Priority, sug.Category, done, due, sug.CreatedAt.Format("2006-01-02 15:04")}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	_ = x.SetColWidth(exportSheet, "A", "A", 36)
	_ = x.SetColWidth(exportSheet, "B", "B", 60)

	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
