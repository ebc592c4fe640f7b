package ec2

import (
	"encoding/json"
	"net/http"
)

// Input is the JSON shape of an anchor-group check request.
type Input struct {
	DiameterMM  float64 `json:"diameter_mm"`
	Count       int     `json:"count"`
	SpacingMM   float64 `json:"spacing_mm"`
	EdgeDistMM  float64 `json:"edge_dist_mm"`
	EmbedmentMM float64 `json:"embedment_mm"`
	FukMPa      float64 `json:"fuk_mpa"`
	FckMPa      float64 `json:"fck_mpa"`
	Cracked     bool    `json:"cracked"`
	TensionKN   float64 `json:"tension_kn"`
	ShearKN     float64 `json:"shear_kn"`
}

// Handler exposes the anchor-group check over HTTP.
type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	g := Group{
		Diameter:  in.DiameterMM,
		Count:     in.Count,
		Spacing:   in.SpacingMM,
		EdgeDist:  in.EdgeDistMM,
		Embedment: in.EmbedmentMM,
		Fuk:       in.FukMPa,
		Fck:       in.FckMPa,
		Cracked:   in.Cracked,
		TensionEd: in.TensionKN,
		ShearEd:   in.ShearKN,
	}
	res, err := g.Check()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
