// Package report renders a cable analysis into a PDF calculation note.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gocable/internal/cable"
)

// Meta carries the title-block fields of a report.
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Write renders the parameters and solved result as an A4 PDF.
func Write(w io.Writer, meta Meta, params cable.Params, res *cable.Result) error {
	if meta.Title == "" {
		meta.Title = "Cable Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Input")
	row(pdf, "Span", "%.3f m", params.Span)
	row(pdf, "Effective area", "%.6f m2", params.AreaEff)
	row(pdf, "Elastic modulus", "%.0f kN/m2", params.Modulus)
	if params.SelfWeight > 0 {
		row(pdf, "Self-weight", "%.3f kN/m", params.SelfWeight)
	}
	if params.SupportHMax > 0 {
		row(pdf, "Support capacity H_max", "%.2f kN", params.SupportHMax)
	}
	if params.SupportKH > 0 {
		row(pdf, "Support stiffness k_h", "%.0f kN/m", params.SupportKH)
	}
	for _, pl := range params.PointLoads {
		row(pdf, "Point load", "%.2f kN at %.3f m", pl.Magnitude, pl.Position)
	}
	for _, ll := range params.LineLoads {
		row(pdf, "Line load", "%.2f-%.2f kN/m on [%.2f, %.2f] m",
			ll.StartMag, ll.EndMag, ll.StartPos, ll.EndPos)
	}
	pdf.Ln(4)

	section(pdf, "Results")
	row(pdf, "Horizontal tension H", "%.3f kN", res.H)
	row(pdf, "Max sag f", "%.4f m at x = %.3f m", res.Sag, res.SagPosition)
	row(pdf, "Max tension T_max", "%.3f kN at x = %.3f m", res.TensionMax, res.TensionPos)
	row(pdf, "Reactions", "R_left = %.3f kN, R_right = %.3f kN", res.ReactLeft, res.ReactRight)
	row(pdf, "Strain", "%.6e", res.Strain)
	row(pdf, "Cable length", "%.4f m (elongation %.5f m)", res.Length, res.Elongation)
	if res.ConstrainedByHMax {
		row(pdf, "Support", "saturated at H_max (utilization %.2f)", res.HUtilization)
	}
	if res.DeltaH != 0 {
		row(pdf, "Support displacement", "%.5f m", res.DeltaH)
	}
	pdf.Ln(4)

	status := fmt.Sprintf("Converged in %d iterations (%s).", res.Iterations, res.Method)
	if !res.Converged {
		status = fmt.Sprintf("DID NOT CONVERGE within %d iterations (%s); values are best effort.",
			res.Iterations, res.Method)
	}
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, status, "", "L", false)
	if res.Warning != "" {
		pdf.MultiCell(0, 5, "Warning: "+res.Warning, "", "L", false)
	}
	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 5, meta.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label, format string, args ...interface{}) {
	pdf.Cell(60, 5, label)
	pdf.Cell(0, 5, fmt.Sprintf(format, args...))
	pdf.Ln(5)
}
