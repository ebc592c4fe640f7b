package frame

import (
	"math"
	"testing"
)

var testSection = Section{E: 210e6, A: 0.01, I: 1e-4}

func TestCantileverTipLoad(t *testing.T) {
	m := NewModel()
	root := m.AddNode(0, 0)
	tip := m.AddNode(2, 0)
	if _, err := m.AddMember(root, tip, testSection); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if err := m.Support(root, true, true, true); err != nil {
		t.Fatalf("Support: %v", err)
	}
	if err := m.AddNodalLoad(tip, 0, -10, 0); err != nil {
		t.Fatalf("AddNodalLoad: %v", err)
	}

	sol, err := m.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	ei := testSection.E * testSection.I
	wantDy := -10.0 * 8 / (3 * ei) // -PL^3/3EI
	wantRz := -10.0 * 4 / (2 * ei) // -PL^2/2EI
	d := sol.Displacements[tip]
	if math.Abs(d.Dy-wantDy) > 1e-12 {
		t.Errorf("tip dy = %.6e, want %.6e", d.Dy, wantDy)
	}
	if math.Abs(d.Rz-wantRz) > 1e-12 {
		t.Errorf("tip rz = %.6e, want %.6e", d.Rz, wantRz)
	}

	r := sol.Reactions[root]
	if math.Abs(r.Fy-10) > 1e-9 {
		t.Errorf("support Fy = %.6f, want 10", r.Fy)
	}
	if math.Abs(r.Mz-20) > 1e-9 {
		t.Errorf("support Mz = %.6f, want 20", r.Mz)
	}
}

func TestAxialBar(t *testing.T) {
	m := NewModel()
	a := m.AddNode(0, 0)
	b := m.AddNode(4, 0)
	if _, err := m.AddMember(a, b, testSection); err != nil {
		t.Fatal(err)
	}
	if err := m.Support(a, true, true, true); err != nil {
		t.Fatal(err)
	}
	if err := m.AddNodalLoad(b, 10, 0, 0); err != nil {
		t.Fatal(err)
	}
	sol, err := m.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := 10.0 * 4 / (testSection.E * testSection.A) // PL/EA
	if got := sol.Displacements[b].Dx; math.Abs(got-want) > 1e-15 {
		t.Errorf("axial extension = %.6e, want %.6e", got, want)
	}
	if n := sol.MemberForces[0].NJ; math.Abs(n-10) > 1e-9 {
		t.Errorf("axial end force = %.6f, want 10", n)
	}
}

func TestSimplySupportedUDL(t *testing.T) {
	m := NewModel()
	a := m.AddNode(0, 0)
	b := m.AddNode(4, 0)
	mb, err := m.AddMember(a, b, testSection)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Support(a, true, true, false); err != nil {
		t.Fatal(err)
	}
	if err := m.Support(b, false, true, false); err != nil {
		t.Fatal(err)
	}
	if err := m.AddMemberUDL(mb, 5); err != nil {
		t.Fatal(err)
	}

	sol, err := m.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Each support takes w*L/2 = 10 kN.
	if r := sol.Reactions[a]; math.Abs(r.Fy-10) > 1e-9 {
		t.Errorf("left reaction = %.6f, want 10", r.Fy)
	}
	if r := sol.Reactions[b]; math.Abs(r.Fy-10) > 1e-9 {
		t.Errorf("right reaction = %.6f, want 10", r.Fy)
	}

	// End rotations: wL^3/24EI, antisymmetric.
	ei := testSection.E * testSection.I
	wantRot := 5.0 * 64 / (24 * ei)
	ra := sol.Displacements[a].Rz
	rb := sol.Displacements[b].Rz
	if math.Abs(math.Abs(ra)-wantRot) > 1e-12 {
		t.Errorf("left rotation magnitude = %.6e, want %.6e", math.Abs(ra), wantRot)
	}
	if math.Abs(ra+rb) > 1e-15 {
		t.Errorf("rotations not antisymmetric: %.6e vs %.6e", ra, rb)
	}

	// Pinned ends carry no moment.
	mf := sol.MemberForces[0]
	if math.Abs(mf.MI) > 1e-9 || math.Abs(mf.MJ) > 1e-9 {
		t.Errorf("pinned end moments = %.6e / %.6e, want 0", mf.MI, mf.MJ)
	}
	if math.Abs(mf.VI-10) > 1e-9 {
		t.Errorf("end shear = %.6f, want 10", mf.VI)
	}
}

func TestPortalFrameSway(t *testing.T) {
	m := NewModel()
	baseL := m.AddNode(0, 0)
	baseR := m.AddNode(4, 0)
	topL := m.AddNode(0, 3)
	topR := m.AddNode(4, 3)
	for _, pair := range [][2]int{{baseL, topL}, {topL, topR}, {baseR, topR}} {
		if _, err := m.AddMember(pair[0], pair[1], testSection); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Support(baseL, true, true, true); err != nil {
		t.Fatal(err)
	}
	if err := m.Support(baseR, true, true, true); err != nil {
		t.Fatal(err)
	}
	if err := m.AddNodalLoad(topL, 20, 0, 0); err != nil {
		t.Fatal(err)
	}

	sol, err := m.Analyze()
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	// Both eaves sway the same way; horizontal base reactions balance the load.
	if sol.Displacements[topL].Dx <= 0 {
		t.Errorf("loaded eave must sway with the load, dx = %.6e", sol.Displacements[topL].Dx)
	}
	sumFx := sol.Reactions[baseL].Fx + sol.Reactions[baseR].Fx
	if math.Abs(sumFx+20) > 1e-9 {
		t.Errorf("base shear sum = %.6f, want -20", sumFx)
	}
	sumFy := sol.Reactions[baseL].Fy + sol.Reactions[baseR].Fy
	if math.Abs(sumFy) > 1e-9 {
		t.Errorf("vertical reactions must cancel, sum = %.6f", sumFy)
	}
}

func TestModelValidation(t *testing.T) {
	m := NewModel()
	a := m.AddNode(0, 0)
	b := m.AddNode(1, 0)

	if _, err := m.AddMember(a, 7, testSection); err == nil {
		t.Error("unknown node must be rejected")
	}
	if _, err := m.AddMember(a, a, testSection); err == nil {
		t.Error("self-loop must be rejected")
	}
	if _, err := m.AddMember(a, b, Section{}); err == nil {
		t.Error("empty section must be rejected")
	}
	if err := m.Support(9, true, true, true); err == nil {
		t.Error("support on unknown node must be rejected")
	}
	if err := m.AddNodalLoad(9, 1, 0, 0); err == nil {
		t.Error("load on unknown node must be rejected")
	}
	if err := m.AddMemberUDL(3, 1); err == nil {
		t.Error("UDL on unknown member must be rejected")
	}
}

func TestUnstableModelRejected(t *testing.T) {
	m := NewModel()
	a := m.AddNode(0, 0)
	b := m.AddNode(2, 0)
	if _, err := m.AddMember(a, b, testSection); err != nil {
		t.Fatal(err)
	}
	// No supports at all.
	if err := m.AddNodalLoad(b, 0, -1, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Analyze(); err == nil {
		t.Error("unsupported model must fail to analyze")
	}
}
