package batch

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocable/internal/cable"
)

func TestRunMixedItems(t *testing.T) {
	good := cable.Params{
		Span: 5, AreaEff: 0.01, Modulus: 210e6,
		PointLoads: []cable.PointLoad{{Position: 2.5, Magnitude: 100}},
	}
	bad := cable.Params{
		Span: 5, AreaEff: 0.01, Modulus: 210e6,
		PointLoads: []cable.PointLoad{{Position: 99, Magnitude: 100}},
	}

	out, err := Run([]cable.Params{good, bad, good})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(out))
	}
	if out[0].Result == nil || out[0].Error != "" {
		t.Errorf("item 0 should succeed: %+v", out[0])
	}
	if out[1].Result != nil || out[1].Error == "" {
		t.Errorf("item 1 should fail without aborting the batch: %+v", out[1])
	}
	if out[2].Result == nil {
		t.Errorf("item 2 should still run after a failure")
	}

	if _, err := Run(nil); err == nil {
		t.Error("empty batch must be rejected")
	}
}

func TestFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []string{"span", "a_eff", "e_modulus", "self_weight",
		"p_pos", "p_mag", "l_start", "l_end", "l_w1", "l_w2"}
	for i, h := range header {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}
	// Row 2: point load only. Row 3: line load with self-weight.
	// Row 4: junk, must be skipped.
	for i, v := range []string{"5", "0.01", "210000000", "", "2.5", "100"} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"2", v)
	}
	for i, v := range []string{"8", "0.005", "195000000", "0.6", "", "", "1", "7", "2", "4"} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"3", v)
	}
	f.SetCellValue(sheet, "A4", "not-a-number")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	items, err := FromWorkbook(&buf)
	if err != nil {
		t.Fatalf("FromWorkbook: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("parsed %d items, want 2", len(items))
	}
	if len(items[0].PointLoads) != 1 || items[0].PointLoads[0].Magnitude != 100 {
		t.Errorf("row 2 point load not parsed: %+v", items[0])
	}
	if items[1].SelfWeight != 0.6 || len(items[1].LineLoads) != 1 {
		t.Errorf("row 3 self-weight/line load not parsed: %+v", items[1])
	}

	out, err := Run(items)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, oc := range out {
		if oc.Error != "" {
			t.Errorf("imported item %d failed: %s", i, oc.Error)
		}
	}
}
