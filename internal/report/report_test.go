package report

import (
	"bytes"
	"testing"

	"github.com/alexiusacademia/gocable/internal/cable"
)

func TestWriteProducesPDF(t *testing.T) {
	params := cable.Params{
		Span: 5, AreaEff: 0.01, Modulus: 210e6,
		PointLoads: []cable.PointLoad{{Position: 2.5, Magnitude: 100}},
	}
	res, err := cable.RunAnalysis(params)
	if err != nil {
		t.Fatalf("RunAnalysis: %v", err)
	}

	var buf bytes.Buffer
	meta := Meta{Project: "Test span", Author: "QA", Notes: "unit test"}
	if err := Write(&buf, meta, params, res); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty report")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
}
