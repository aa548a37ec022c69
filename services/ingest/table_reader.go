package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"location-mapper/models"
	"location-mapper/utils"

	"github.com/xuri/excelize/v2"
)

// LoadTable reads a tabular file into a Dataset. The format is picked by
// extension: .csv parses as comma-separated text, anything else as an xlsx
// workbook. A workbook that fails to parse is retried once as CSV, which
// recovers exports that carry an .xlsx name over comma-separated content.
// No schema validation happens here; missing columns surface downstream.
func LoadTable(path string) (*models.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readCSV(path)
	}

	ds, wbErr := readWorkbook(path)
	if wbErr == nil {
		return ds, nil
	}
	utils.L().Warn("workbook parse failed for %s, retrying as csv: %v", path, wbErr)

	ds, csvErr := readCSV(path)
	if csvErr != nil {
		return nil, fmt.Errorf("load %s: workbook: %v; csv fallback: %w", path, wbErr, csvErr)
	}
	return ds, nil
}

func readWorkbook(path string) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return models.NewDataset(nil, nil), nil
	}
	return models.NewDataset(rows[0], rows[1:]), nil
}

func readCSV(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are padded by the Dataset
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return models.NewDataset(nil, nil), nil
	}
	return models.NewDataset(records[0], records[1:]), nil
}
