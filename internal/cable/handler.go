package cable

import (
	"encoding/json"
	"net/http"
)

// Handler exposes RunAnalysis over HTTP as a thin JSON adapter.
type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var params Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := RunAnalysis(params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
