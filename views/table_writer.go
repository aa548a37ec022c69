package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"location-mapper/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// SaveTable persists a Dataset using the same extension rule as the loader:
// .csv writes comma-separated text, anything else an xlsx workbook. The
// header row is written first; no row index column is added. Parent
// directory creation is the caller's concern, not the save step's.
func SaveTable(ds *models.Dataset, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return writeCSV(ds, path)
	}
	return writeWorkbook(ds, path)
}

func writeCSV(ds *models.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	w := csv.NewWriter(bw)

	if err := w.Write(ds.Columns); err != nil {
		return fmt.Errorf("csv write header: %w", err)
	}
	if err := w.WriteAll(ds.Rows); err != nil {
		return fmt.Errorf("csv write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("csv flush %s: %w", path, err)
	}
	return nil
}

func writeWorkbook(ds *models.Dataset, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setSheetRow(f, 1, ds.Columns); err != nil {
		return err
	}
	for i, row := range ds.Rows {
		if err := setSheetRow(f, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("workbook save %s: %w", path, err)
	}
	return nil
}

func setSheetRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("workbook row %d: %w", rowNum, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("workbook row %d: %w", rowNum, err)
	}
	return nil
}
