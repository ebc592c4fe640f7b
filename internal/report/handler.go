package report

import (
	"encoding/json"
	"net/http"

	"github.com/alexiusacademia/gocable/internal/cable"
)

// Input is the JSON payload of a report request: title block plus the full
// analysis parameters. The analysis is run server-side so the PDF always
// matches its inputs.
type Input struct {
	Meta     Meta         `json:"meta"`
	Analysis cable.Params `json:"analysis"`
}

// Handler streams generated PDF reports.
type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := cable.RunAnalysis(in.Analysis)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"cable-report.pdf\"")
	if err := Write(w, in.Meta, in.Analysis, res); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
