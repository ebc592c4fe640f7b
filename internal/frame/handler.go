package frame

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Input is the JSON model accepted by the frame analysis endpoint. Node and
// member indices are zero-based and refer to the order of the arrays.
type Input struct {
	Nodes []struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"nodes"`
	Members []struct {
		Start   int     `json:"start"`
		End     int     `json:"end"`
		E       float64 `json:"e_modulus"`
		A       float64 `json:"area"`
		Inertia float64 `json:"inertia"`
	} `json:"members"`
	Supports []struct {
		Node int  `json:"node"`
		Dx   bool `json:"dx"`
		Dy   bool `json:"dy"`
		Rz   bool `json:"rz"`
	} `json:"supports"`
	NodalLoads []struct {
		Node   int     `json:"node"`
		Fx     float64 `json:"fx"`
		Fy     float64 `json:"fy"`
		Moment float64 `json:"moment"`
	} `json:"nodal_loads"`
	MemberUDLs []struct {
		Member int     `json:"member"`
		W      float64 `json:"w"`
	} `json:"member_udls"`
}

// Model builds an analysable Model from the wire form.
func (in Input) Model() (*Model, error) {
	m := NewModel()
	for _, n := range in.Nodes {
		m.AddNode(n.X, n.Y)
	}
	for i, mem := range in.Members {
		sec := Section{E: mem.E, A: mem.A, I: mem.Inertia}
		if _, err := m.AddMember(mem.Start, mem.End, sec); err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
	}
	for _, s := range in.Supports {
		if err := m.Support(s.Node, s.Dx, s.Dy, s.Rz); err != nil {
			return nil, fmt.Errorf("support: %w", err)
		}
	}
	for _, l := range in.NodalLoads {
		if err := m.AddNodalLoad(l.Node, l.Fx, l.Fy, l.Moment); err != nil {
			return nil, fmt.Errorf("nodal load: %w", err)
		}
	}
	for _, u := range in.MemberUDLs {
		if err := m.AddMemberUDL(u.Member, u.W); err != nil {
			return nil, fmt.Errorf("udl: %w", err)
		}
	}
	return m, nil
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	model, err := in.Model()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sol, err := model.Analyze()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sol); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
