package ec2

import (
	"math"
	"testing"
)

func validGroup() Group {
	return Group{
		Diameter:  16,
		Count:     4,
		Spacing:   150,
		EdgeDist:  200,
		Embedment: 100,
		Fuk:       800,
		Fck:       30,
		TensionEd: 60,
		ShearEd:   30,
	}
}

func TestSteelTensionResistance(t *testing.T) {
	g := validGroup()
	res, err := g.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	// NRd,s = n * 0.78 * pi*d^2/4 * fuk / 1.4
	as := 0.78 * math.Pi * 16 * 16 / 4
	want := 4 * as * 800 / GammaMs / 1000
	if math.Abs(res.SteelTension-want) > 1e-9 {
		t.Errorf("NRd,s = %.3f kN, want %.3f", res.SteelTension, want)
	}
}

func TestConcreteConeSingleAnchorFarFromEdge(t *testing.T) {
	g := validGroup()
	g.Count = 1
	g.EdgeDist = 1000 // far edge: no reduction
	res, err := g.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	want := K1Uncracked * math.Sqrt(30) * math.Pow(100, 1.5) / GammaMc / 1000
	if math.Abs(res.ConcreteCone-want) > 1e-9 {
		t.Errorf("NRd,c = %.3f kN, want unreduced %.3f", res.ConcreteCone, want)
	}
}

func TestCrackedConcreteReducesCone(t *testing.T) {
	sound := validGroup()
	resSound, err := sound.Check()
	if err != nil {
		t.Fatal(err)
	}
	cracked := validGroup()
	cracked.Cracked = true
	resCracked, err := cracked.Check()
	if err != nil {
		t.Fatal(err)
	}
	wantRatio := K1Cracked / K1Uncracked
	ratio := resCracked.ConcreteCone / resSound.ConcreteCone
	if math.Abs(ratio-wantRatio) > 1e-9 {
		t.Errorf("cracked/uncracked cone ratio = %.4f, want %.4f", ratio, wantRatio)
	}
}

func TestCloseEdgeReducesCone(t *testing.T) {
	far := validGroup()
	far.EdgeDist = 600
	resFar, err := far.Check()
	if err != nil {
		t.Fatal(err)
	}
	near := validGroup()
	near.EdgeDist = 60
	resNear, err := near.Check()
	if err != nil {
		t.Fatal(err)
	}
	if resNear.ConcreteCone >= resFar.ConcreteCone {
		t.Errorf("close edge must reduce cone capacity: %.2f >= %.2f",
			resNear.ConcreteCone, resFar.ConcreteCone)
	}
}

func TestInteraction(t *testing.T) {
	g := validGroup()
	res, err := g.Check()
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pow(res.TensionUtil, InteractionExp) + math.Pow(res.ShearUtil, InteractionExp)
	if math.Abs(res.InteractionUtil-want) > 1e-12 {
		t.Errorf("interaction = %.6f, want %.6f", res.InteractionUtil, want)
	}

	// Overload the group: the check must fail but not error.
	g.TensionEd = 10 * res.TensionRd
	over, err := g.Check()
	if err != nil {
		t.Fatal(err)
	}
	if over.OK {
		t.Error("10x overload cannot verify")
	}
	if over.TensionUtil <= 1 {
		t.Errorf("tension utilization = %.3f, want > 1", over.TensionUtil)
	}
}

func TestGroupValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Group)
	}{
		{"zero diameter", func(g *Group) { g.Diameter = 0 }},
		{"zero count", func(g *Group) { g.Count = 0 }},
		{"missing spacing", func(g *Group) { g.Spacing = 0 }},
		{"zero embedment", func(g *Group) { g.Embedment = 0 }},
		{"zero edge distance", func(g *Group) { g.EdgeDist = 0 }},
		{"zero steel strength", func(g *Group) { g.Fuk = 0 }},
		{"zero concrete strength", func(g *Group) { g.Fck = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := validGroup()
			tc.mutate(&g)
			if _, err := g.Check(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// A single anchor needs no spacing.
	g := validGroup()
	g.Count = 1
	g.Spacing = 0
	if _, err := g.Check(); err != nil {
		t.Errorf("single anchor without spacing must be valid: %v", err)
	}
}
