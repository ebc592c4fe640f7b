package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Displacement is the solved state of one node.
type Displacement struct {
	Dx float64 `json:"dx"` // m
	Dy float64 `json:"dy"` // m
	Rz float64 `json:"rz"` // rad
}

// Reaction is the support force recovered at a restrained node.
type Reaction struct {
	Fx float64 `json:"fx"` // kN
	Fy float64 `json:"fy"` // kN
	Mz float64 `json:"mz"` // kN·m
}

// EndForces are the member forces in local axes: axial N, shear V and
// bending moment M at each end.
type EndForces struct {
	NI float64 `json:"n_i"`
	VI float64 `json:"v_i"`
	MI float64 `json:"m_i"`
	NJ float64 `json:"n_j"`
	VJ float64 `json:"v_j"`
	MJ float64 `json:"m_j"`
}

// Solution is the outcome of an analysis, indexed like the model's nodes and
// members.
type Solution struct {
	Displacements []Displacement   `json:"displacements"`
	Reactions     map[int]Reaction `json:"reactions"`
	MemberForces  []EndForces      `json:"member_forces"`
}

// localStiffness fills the 6x6 member stiffness in local axes.
func localStiffness(sec Section, l float64) *mat.Dense {
	ea := sec.E * sec.A / l
	ei := sec.E * sec.I
	l2 := l * l
	l3 := l2 * l
	return mat.NewDense(6, 6, []float64{
		ea, 0, 0, -ea, 0, 0,
		0, 12 * ei / l3, 6 * ei / l2, 0, -12 * ei / l3, 6 * ei / l2,
		0, 6 * ei / l2, 4 * ei / l, 0, -6 * ei / l2, 2 * ei / l,
		-ea, 0, 0, ea, 0, 0,
		0, -12 * ei / l3, -6 * ei / l2, 0, 12 * ei / l3, -6 * ei / l2,
		0, 6 * ei / l2, 2 * ei / l, 0, -6 * ei / l2, 4 * ei / l,
	})
}

// transform fills the local-to-global rotation for direction cosines c, s.
func transform(c, s float64) *mat.Dense {
	return mat.NewDense(6, 6, []float64{
		c, s, 0, 0, 0, 0,
		-s, c, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, c, s, 0,
		0, 0, 0, -s, c, 0,
		0, 0, 0, 0, 0, 1,
	})
}

// fixedEndLocal returns the equivalent nodal load vector in local axes for a
// uniform global-Y load w (downward positive) on a member with direction
// cosines c, s and length l.
func fixedEndLocal(w, c, s, l float64) []float64 {
	ax := -w * s // global (0,-w) projected on local x
	tr := -w * c // global (0,-w) projected on local y
	return []float64{
		ax * l / 2,
		tr * l / 2,
		tr * l * l / 12,
		ax * l / 2,
		tr * l / 2,
		-tr * l * l / 12,
	}
}

// Analyze assembles the global stiffness, solves the free degrees of freedom
// and recovers reactions and member end forces. An unconstrained or
// mechanism model surfaces as a solve error.
func (m *Model) Analyze() (*Solution, error) {
	if len(m.nodes) == 0 || len(m.members) == 0 {
		return nil, fmt.Errorf("model needs nodes and members")
	}
	if len(m.supports) == 0 {
		return nil, fmt.Errorf("model has no supports")
	}

	ndof := 3 * len(m.nodes)
	k := mat.NewDense(ndof, ndof, nil)
	f := make([]float64, ndof)

	// Assemble members and their fixed-end loads.
	kg := mat.NewDense(6, 6, nil)
	tmp := mat.NewDense(6, 6, nil)
	for mi, mb := range m.members {
		c, s, l := m.direction(mb)
		kl := localStiffness(mb.Section, l)
		t := transform(c, s)

		// kg = T' * kl * T
		tmp.Mul(kl, t)
		kg.Mul(t.T(), tmp)

		dofs := memberDOFs(mb)
		for a := 0; a < 6; a++ {
			for b := 0; b < 6; b++ {
				k.Set(dofs[a], dofs[b], k.At(dofs[a], dofs[b])+kg.At(a, b))
			}
		}

		if w, ok := m.udls[mi]; ok && w != 0 {
			fl := fixedEndLocal(w, c, s, l)
			flv := mat.NewVecDense(6, fl)
			var fgv mat.VecDense
			fgv.MulVec(t.T(), flv)
			for a := 0; a < 6; a++ {
				f[dofs[a]] += fgv.AtVec(a)
			}
		}
	}
	for _, nl := range m.loads {
		f[3*nl.Node] += nl.Fx
		f[3*nl.Node+1] += nl.Fy
		f[3*nl.Node+2] += nl.Mz
	}

	free := m.freeDOFs()
	if len(free) == 0 {
		return nil, fmt.Errorf("model is fully restrained")
	}

	// Partition and solve K_ff * u_f = F_f.
	kff := mat.NewDense(len(free), len(free), nil)
	ff := mat.NewVecDense(len(free), nil)
	for a, ga := range free {
		ff.SetVec(a, f[ga])
		for b, gb := range free {
			kff.Set(a, b, k.At(ga, gb))
		}
	}
	var uf mat.VecDense
	if err := uf.SolveVec(kff, ff); err != nil {
		return nil, fmt.Errorf("singular system, model is likely a mechanism: %w", err)
	}

	u := make([]float64, ndof)
	for a, ga := range free {
		u[ga] = uf.AtVec(a)
	}

	sol := &Solution{
		Displacements: make([]Displacement, len(m.nodes)),
		Reactions:     make(map[int]Reaction),
		MemberForces:  make([]EndForces, len(m.members)),
	}
	for n := range m.nodes {
		sol.Displacements[n] = Displacement{Dx: u[3*n], Dy: u[3*n+1], Rz: u[3*n+2]}
	}

	// Reactions: R = K*u - F on restrained freedoms.
	uv := mat.NewVecDense(ndof, u)
	var kuv mat.VecDense
	kuv.MulVec(k, uv)
	for n, r := range m.supports {
		var rx, ry, rm float64
		if r.Dx {
			rx = kuv.AtVec(3*n) - f[3*n]
		}
		if r.Dy {
			ry = kuv.AtVec(3*n+1) - f[3*n+1]
		}
		if r.Rz {
			rm = kuv.AtVec(3*n+2) - f[3*n+2]
		}
		sol.Reactions[n] = Reaction{Fx: rx, Fy: ry, Mz: rm}
	}

	// Member end forces in local axes: f_local = kl*(T*u_e) - fixed-end loads.
	for mi, mb := range m.members {
		c, s, l := m.direction(mb)
		kl := localStiffness(mb.Section, l)
		t := transform(c, s)

		dofs := memberDOFs(mb)
		ue := mat.NewVecDense(6, nil)
		for a := 0; a < 6; a++ {
			ue.SetVec(a, u[dofs[a]])
		}
		var ul, fl mat.VecDense
		ul.MulVec(t, ue)
		fl.MulVec(kl, &ul)

		end := []float64{fl.AtVec(0), fl.AtVec(1), fl.AtVec(2), fl.AtVec(3), fl.AtVec(4), fl.AtVec(5)}
		if w, ok := m.udls[mi]; ok && w != 0 {
			fixed := fixedEndLocal(w, c, s, l)
			for a := range end {
				end[a] -= fixed[a]
			}
		}
		sol.MemberForces[mi] = EndForces{
			NI: end[0], VI: end[1], MI: end[2],
			NJ: end[3], VJ: end[4], MJ: end[5],
		}
	}
	return sol, nil
}

func memberDOFs(mb Member) [6]int {
	return [6]int{
		3 * mb.I, 3*mb.I + 1, 3*mb.I + 2,
		3 * mb.J, 3*mb.J + 1, 3*mb.J + 2,
	}
}

func (m *Model) freeDOFs() []int {
	var free []int
	for n := range m.nodes {
		r := m.supports[n]
		if !r.Dx {
			free = append(free, 3*n)
		}
		if !r.Dy {
			free = append(free, 3*n+1)
		}
		if !r.Rz {
			free = append(free, 3*n+2)
		}
	}
	return free
}
