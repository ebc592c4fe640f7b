// Package ec2 implements simplified fastener-group capacity checks to
// EN 1992-4 (Eurocode 2 Part 4): steel and concrete cone resistance in
// tension, steel and concrete edge resistance in shear, and the combined
// tension-shear interaction. The checks cover a single row of identical
// anchors; pry-out and splitting modes are outside this module.
package ec2

import (
	"fmt"
	"math"
)

// Group describes a single row of identical anchors in a concrete member
// with the actions applied to the group. Dimensions in mm, strengths in MPa,
// actions in kN.
type Group struct {
	Diameter  float64 // anchor diameter (mm)
	Count     int     // number of anchors in the row
	Spacing   float64 // spacing between anchors (mm); ignored for Count == 1
	EdgeDist  float64 // distance to the nearest free edge (mm)
	Embedment float64 // effective embedment depth hef (mm)

	Fuk float64 // steel ultimate strength (MPa)
	Fck float64 // concrete cylinder strength (MPa)

	Cracked bool // cracked concrete assumption

	TensionEd float64 // applied group tension NEd (kN)
	ShearEd   float64 // applied group shear VEd (kN)
}

// CheckResult reports every verified failure mode separately plus the
// governing utilization.
type CheckResult struct {
	// Resistances (kN)
	SteelTension  float64 `json:"n_rd_s"`  // NRd,s
	ConcreteCone  float64 `json:"n_rd_c"`  // NRd,c
	SteelShear    float64 `json:"v_rd_s"`  // VRd,s
	ConcreteEdge  float64 `json:"v_rd_c"`  // VRd,c
	TensionRd     float64 `json:"n_rd"`    // governing tension resistance
	ShearRd       float64 `json:"v_rd"`    // governing shear resistance

	// Utilizations
	TensionUtil     float64 `json:"tension_util"`
	ShearUtil       float64 `json:"shear_util"`
	InteractionUtil float64 `json:"interaction_util"`

	GoverningMode string `json:"governing_mode"`
	OK            bool   `json:"ok"`
}

// StressArea returns the tensile stress area of one anchor. The gross area
// is reduced to the standard threaded stress area.
func (g *Group) StressArea() float64 {
	return 0.78 * math.Pi * g.Diameter * g.Diameter / 4
}

// Check verifies the group against EN 1992-4 and returns the per-mode
// resistances and utilizations. Geometry and materials are validated first;
// a malformed group is a caller bug and fails with an error.
func (g *Group) Check() (*CheckResult, error) {
	if g.Diameter <= 0 || g.Count < 1 {
		return nil, fmt.Errorf("invalid anchor layout: d=%.1f mm, n=%d", g.Diameter, g.Count)
	}
	if g.Count > 1 && g.Spacing <= 0 {
		return nil, fmt.Errorf("spacing required for %d anchors", g.Count)
	}
	if g.Embedment <= 0 || g.EdgeDist <= 0 {
		return nil, fmt.Errorf("invalid embedment/edge geometry: hef=%.1f mm, c=%.1f mm", g.Embedment, g.EdgeDist)
	}
	if g.Fuk <= 0 || g.Fck <= 0 {
		return nil, fmt.Errorf("invalid material strengths: fuk=%.1f MPa, fck=%.1f MPa", g.Fuk, g.Fck)
	}

	res := &CheckResult{}
	n := float64(g.Count)
	as := g.StressArea()

	// Steel tension, EN 1992-4 Eq. 7.13: NRd,s = As * fuk / gammaMs
	res.SteelTension = n * as * g.Fuk / GammaMs / 1000

	// Concrete cone, EN 1992-4 Section 7.2.1.4.
	// NRk,c0 = k1 * sqrt(fck) * hef^1.5 for a single anchor away from edges,
	// scaled by the projected-area ratio Ac/Ac0 and the edge factor psi_s.
	k1 := K1Uncracked
	if g.Cracked {
		k1 = K1Cracked
	}
	n0 := k1 * math.Sqrt(g.Fck) * math.Pow(g.Embedment, 1.5) // N
	scr := ScrN(g.Embedment)
	ccr := CcrN(g.Embedment)
	width := math.Min(2*g.EdgeDist, scr)
	length := scr
	if g.Count > 1 {
		length += (n - 1) * math.Min(g.Spacing, scr)
	}
	areaRatio := width * length / (scr * scr)
	psiS := 0.7 + 0.3*g.EdgeDist/ccr
	if psiS > 1 {
		psiS = 1
	}
	res.ConcreteCone = n0 * areaRatio * psiS / GammaMc / 1000

	// Steel shear, EN 1992-4 Eq. 7.34: VRd,s = k6 * As * fuk / gammaMs
	res.SteelShear = n * K6Shear * as * g.Fuk / GammaMsShear / 1000

	// Concrete edge, simplified from EN 1992-4 Eq. 7.40 for an anchor row
	// loaded towards the edge: VRk,c = 1.7 * sqrt(fck) * c1^1.5 per anchor.
	res.ConcreteEdge = n * 1.7 * math.Sqrt(g.Fck) * math.Pow(g.EdgeDist, 1.5) / GammaMc / 1000

	res.TensionRd = math.Min(res.SteelTension, res.ConcreteCone)
	res.ShearRd = math.Min(res.SteelShear, res.ConcreteEdge)

	if res.TensionRd > 0 {
		res.TensionUtil = g.TensionEd / res.TensionRd
	}
	if res.ShearRd > 0 {
		res.ShearUtil = g.ShearEd / res.ShearRd
	}
	res.InteractionUtil = math.Pow(math.Max(res.TensionUtil, 0), InteractionExp) +
		math.Pow(math.Max(res.ShearUtil, 0), InteractionExp)

	switch {
	case res.TensionUtil >= res.ShearUtil && res.TensionRd == res.SteelTension:
		res.GoverningMode = "steel tension"
	case res.TensionUtil >= res.ShearUtil:
		res.GoverningMode = "concrete cone"
	case res.ShearRd == res.SteelShear:
		res.GoverningMode = "steel shear"
	default:
		res.GoverningMode = "concrete edge"
	}

	res.OK = res.TensionUtil <= 1 && res.ShearUtil <= 1 && res.InteractionUtil <= 1
	return res, nil
}
