package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"grievance-map-go/internal/logger"
	"grievance-map-go/internal/types"
)

// Load reads the grievance workbook, auto-detecting columns by header
// heuristics. Rows without usable coordinates are skipped quietly;
// rows with an empty block name are kept, since excluding them from
// the statistics table is the aggregator's policy, not the loader's.
func Load(path string) ([]types.GrievanceRecord, error) {
	log := logger.New().WithComponent("dataset.loader").WithField("path", path)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	header := rows[0]
	idIdx := -1
	blockIdx := -1
	grievanceIdx := -1
	latIdx := -1
	lngIdx := -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "block") || strings.Contains(l, "region") || strings.Contains(l, "area"):
			if blockIdx == -1 {
				blockIdx = i
			}
		case strings.Contains(l, "grievance") || strings.Contains(l, "complaint") || strings.Contains(l, "description"):
			if grievanceIdx == -1 {
				grievanceIdx = i
			}
		case strings.Contains(l, "lat"):
			if latIdx == -1 {
				latIdx = i
			}
		case strings.Contains(l, "lng") || strings.Contains(l, "lon"):
			if lngIdx == -1 {
				lngIdx = i
			}
		case strings.Contains(l, "id") || strings.Contains(l, "sl"):
			if idIdx == -1 {
				idIdx = i
			}
		}
	}
	if blockIdx == -1 || latIdx == -1 || lngIdx == -1 {
		return nil, fmt.Errorf("missing block/lat/lng columns in header %v", header)
	}
	log.WithField("columns", fmt.Sprintf("id=%d block=%d grievance=%d lat=%d lng=%d",
		idIdx, blockIdx, grievanceIdx, latIdx, lngIdx)).Info("detected dataset columns")

	var out []types.GrievanceRecord
	for i, r := range rows {
		if i == 0 {
			continue
		}
		rec := types.GrievanceRecord{}
		if idIdx >= 0 && idIdx < len(r) {
			rec.ID, _ = strconv.Atoi(strings.TrimSpace(r[idIdx]))
		}
		if rec.ID <= 0 {
			rec.ID = i
		}
		if blockIdx < len(r) {
			rec.Block = r[blockIdx]
		}
		if grievanceIdx >= 0 && grievanceIdx < len(r) {
			rec.Grievance = r[grievanceIdx]
		}
		lat, latErr := parseCoord(r, latIdx)
		lng, lngErr := parseCoord(r, lngIdx)
		if latErr != nil || lngErr != nil {
			// skip rows without usable coordinates quietly
			log.WithField("row", i+1).Debug("skipping row with unparseable coordinates")
			continue
		}
		rec.Lat, rec.Lng = lat, lng
		out = append(out, rec)
	}
	log.WithField("records", len(out)).Info("grievance dataset loaded")
	return out, nil
}

func parseCoord(row []string, idx int) (float64, error) {
	if idx < 0 || idx >= len(row) {
		return 0, fmt.Errorf("column %d out of range", idx)
	}
	return strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
}
