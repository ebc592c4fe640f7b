package batch

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocable/internal/cable"
)

// Workbook column layout of the first sheet, one analysis per row below a
// header row:
//
//	A span (m), B a_eff (m2), C e_modulus (kN/m2), D self_weight (kN/m),
//	E point position (m), F point magnitude (kN),
//	G line start (m), H line end (m), I line start mag, J line end mag (kN/m)
//
// The self-weight and both load groups are optional per row. Rows that fail
// to parse are skipped, matching the forgiving import behaviour users expect
// from spreadsheet uploads.
func FromWorkbook(r io.Reader) ([]cable.Params, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var items []cable.Params
	for i := 1; i < len(rows); i++ {
		params, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		items = append(items, params)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no parsable rows in sheet %q", sheet)
	}
	return items, nil
}

func parseRow(row []string) (cable.Params, error) {
	if len(row) < 3 {
		return cable.Params{}, fmt.Errorf("row too short")
	}
	span, err := cell(row, 0)
	if err != nil {
		return cable.Params{}, err
	}
	area, err := cell(row, 1)
	if err != nil {
		return cable.Params{}, err
	}
	modulus, err := cell(row, 2)
	if err != nil {
		return cable.Params{}, err
	}

	params := cable.Params{Span: span, AreaEff: area, Modulus: modulus}
	if w, err := cell(row, 3); err == nil {
		params.SelfWeight = w
	}
	if pos, err := cell(row, 4); err == nil {
		if mag, err := cell(row, 5); err == nil {
			params.PointLoads = append(params.PointLoads, cable.PointLoad{Position: pos, Magnitude: mag})
		}
	}
	if start, err := cell(row, 6); err == nil {
		end, errEnd := cell(row, 7)
		w1, errW1 := cell(row, 8)
		w2, errW2 := cell(row, 9)
		if errEnd == nil && errW1 == nil && errW2 == nil {
			params.LineLoads = append(params.LineLoads, cable.LineLoad{
				StartPos: start, EndPos: end, StartMag: w1, EndMag: w2,
			})
		}
	}
	return params, nil
}

func cell(row []string, i int) (float64, error) {
	if i >= len(row) || row[i] == "" {
		return 0, fmt.Errorf("missing cell %d", i)
	}
	return strconv.ParseFloat(row[i], 64)
}
