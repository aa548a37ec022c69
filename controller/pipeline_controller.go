package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"location-mapper/models"
	"location-mapper/services/ingest"
	"location-mapper/utils"
	"location-mapper/views"
)

// Sentinel outcomes the presentation layer tells apart from plain errors.
var (
	// ErrBadFilterDate means the user's filter text does not parse as MM/DD/YYYY.
	ErrBadFilterDate = errors.New("invalid filter date")
	// ErrNoData means the date filter (or an empty input) left nothing to write.
	// It is informational: no output files exist after this outcome.
	ErrNoData = errors.New("no data for the specified date")
)

// Result describes a finished run: which artifacts were written, and why
// the map may have been skipped.
type Result struct {
	TablePath  string
	MapPath    string // empty when the map was skipped or failed
	Rows       int
	MapSkipped bool
	MapNote    string // informational reason when MapSkipped
}

// PipelineController runs one full extract-transform-load pass over a
// location table: load, derive display columns, filter, sort, save, map.
// It holds no state between runs and touches no files beyond the paths
// named per call, so any presentation layer can sit in front of it.
type PipelineController struct {
	cfg *utils.Config
}

// NewPipelineController wires a controller to a column/map configuration.
// A nil cfg falls back to the stock cache-export defaults.
func NewPipelineController(cfg *utils.Config) *PipelineController {
	if cfg == nil {
		cfg = utils.DefaultConfig()
	}
	return &PipelineController{cfg: cfg}
}

// Run executes one analysis pass. filterDate is MM/DD/YYYY or blank for no
// filtering. Nothing is written before every row has converted cleanly; a
// map failure after a successful table write is the one accepted partial
// outcome, in which case the returned Result still carries the table path
// alongside the error.
func (pc *PipelineController) Run(inputPath, outputPath, filterDate string) (*Result, error) {
	cols := pc.cfg.Columns

	// Parse the filter before touching any file, so a malformed date
	// aborts with nothing written.
	wantDate, err := utils.ParseFilterDate(filterDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFilterDate, err)
	}

	ds, err := ingest.LoadTable(inputPath)
	if err != nil {
		return nil, err
	}
	utils.L().Info("loaded %d rows, %d columns from %s", ds.Len(), len(ds.Columns), inputPath)

	if err := deriveTimestamps(ds, cols); err != nil {
		return nil, err
	}

	if wantDate != "" {
		if err := ds.FilterEqual(cols.DateOnly, wantDate); err != nil {
			return nil, err
		}
		utils.L().Info("date filter %s kept %d rows", wantDate, ds.Len())
	}
	if ds.Len() == 0 {
		return nil, ErrNoData
	}

	if err := deriveSpeeds(ds, cols); err != nil {
		return nil, err
	}

	if err := ds.SortBy(cols.DisplayTimestamp); err != nil {
		return nil, err
	}

	if err := views.SaveTable(ds, outputPath); err != nil {
		return nil, fmt.Errorf("save table: %w", err)
	}
	res := &Result{TablePath: outputPath, Rows: ds.Len()}
	utils.L().Info("table saved to %s  (rows=%d)", outputPath, ds.Len())

	latCol, latOK := ds.ResolveColumn(cols.Latitude)
	lonCol, lonOK := ds.ResolveColumn(cols.Longitude)
	if !latOK || !lonOK {
		res.MapSkipped = true
		res.MapNote = fmt.Sprintf("coordinate columns %v / %v not found, map not generated",
			cols.Latitude, cols.Longitude)
		utils.L().Info("%s", res.MapNote)
		return res, nil
	}

	// The map always lands next to the output table under a fixed name.
	mapPath := filepath.Join(filepath.Dir(outputPath), pc.cfg.Map.FileName)
	if err := pc.writeMap(ds, latCol, lonCol, mapPath); err != nil {
		// Table write already succeeded; the artifact stays on disk.
		return res, fmt.Errorf("save map: %w", err)
	}
	res.MapPath = mapPath
	utils.L().Info("map saved to %s  (markers=%d)", mapPath, ds.Len())
	return res, nil
}

// deriveTimestamps adds the display-timestamp and date-only columns. A raw
// timestamp that does not parse aborts the run; this is intentionally
// stricter than the per-row speed fallback.
func deriveTimestamps(ds *models.Dataset, cols utils.ColumnsConfig) error {
	raw, err := ds.Column(cols.Timestamp)
	if err != nil {
		return err
	}
	display := make([]string, len(raw))
	dates := make([]string, len(raw))
	for i, v := range raw {
		s, err := utils.FormatAppleTime(v)
		if err != nil {
			return fmt.Errorf("column %s row %d: %w", cols.Timestamp, i+1, err)
		}
		display[i] = s
		dates[i] = s[:10]
	}
	if err := ds.SetColumn(cols.DisplayTimestamp, display); err != nil {
		return err
	}
	return ds.SetColumn(cols.DateOnly, dates)
}

// deriveSpeeds adds the display-speed column. Conversion failures degrade
// to "0 MPH" per row and never abort the run; only a missing speed column
// is fatal.
func deriveSpeeds(ds *models.Dataset, cols utils.ColumnsConfig) error {
	raw, err := ds.Column(cols.Speed)
	if err != nil {
		return err
	}
	display := make([]string, len(raw))
	for i, v := range raw {
		display[i] = utils.ConvertZSpeed(v)
	}
	return ds.SetColumn(cols.DisplaySpeed, display)
}

// writeMap renders every row as a circle marker, centred on the mean
// coordinate of the final dataset. Rows are already sorted, so marker
// order in the document equals output row order.
func (pc *PipelineController) writeMap(ds *models.Dataset, latCol, lonCol, mapPath string) error {
	cols := pc.cfg.Columns

	centerLat, err := ds.ColumnMean(latCol)
	if err != nil {
		return err
	}
	centerLon, err := ds.ColumnMean(lonCol)
	if err != nil {
		return err
	}

	lats, err := ds.Column(latCol)
	if err != nil {
		return err
	}
	lons, err := ds.Column(lonCol)
	if err != nil {
		return err
	}
	ids, err := ds.Column(cols.RowID)
	if err != nil {
		return err
	}
	speeds, err := ds.Column(cols.DisplaySpeed)
	if err != nil {
		return err
	}
	stamps, err := ds.Column(cols.DisplayTimestamp)
	if err != nil {
		return err
	}

	points := make([]views.MapPoint, ds.Len())
	for i := range points {
		lat, err := strconv.ParseFloat(strings.TrimSpace(lats[i]), 64)
		if err != nil {
			return fmt.Errorf("column %s row %d: %q is not numeric", latCol, i+1, lats[i])
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lons[i]), 64)
		if err != nil {
			return fmt.Errorf("column %s row %d: %q is not numeric", lonCol, i+1, lons[i])
		}
		points[i] = views.MapPoint{
			Lat: lat,
			Lon: lon,
			Popup: fmt.Sprintf(
				"<strong>%s:</strong> %s<br><strong>%s:</strong> %s<br><strong>Timestamp:</strong> %s",
				cols.RowID, ids[i], cols.DisplaySpeed, speeds[i], stamps[i]),
		}
	}
	return views.WriteMap(mapPath, centerLat, centerLon, pc.cfg.Map, points)
}
