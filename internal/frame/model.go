// Package frame is a small 2D frame finite-element analyzer built on the
// direct stiffness method, three degrees of freedom per node (dx, dy, rz).
// A Model is an explicitly owned handle: there is no package-level state, so
// independent analyses never interfere.
package frame

import (
	"fmt"
	"math"
)

// Node is a joint of the frame (m).
type Node struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Section carries the member stiffness properties: modulus (kN/m²), area
// (m²) and second moment of area (m⁴).
type Section struct {
	E float64 `json:"e"`
	A float64 `json:"a"`
	I float64 `json:"i"`
}

// Member connects two nodes with a prismatic section.
type Member struct {
	I       int     `json:"node_i"`
	J       int     `json:"node_j"`
	Section Section `json:"section"`
}

// Restraint marks which node freedoms are fixed.
type Restraint struct {
	Dx bool `json:"dx"`
	Dy bool `json:"dy"`
	Rz bool `json:"rz"`
}

// NodalLoad is a concentrated action on a node (kN, kN·m).
type NodalLoad struct {
	Node int     `json:"node"`
	Fx   float64 `json:"fx"`
	Fy   float64 `json:"fy"`
	Mz   float64 `json:"mz"`
}

// Model accumulates geometry, supports and loads, then analyzes. The zero
// value is not usable; construct with NewModel.
type Model struct {
	nodes    []Node
	members  []Member
	supports map[int]Restraint
	loads    []NodalLoad
	udls     map[int]float64 // member index -> load per length, global -Y, downward positive
}

// NewModel returns an empty model handle.
func NewModel() *Model {
	return &Model{
		supports: make(map[int]Restraint),
		udls:     make(map[int]float64),
	}
}

// AddNode appends a node and returns its index.
func (m *Model) AddNode(x, y float64) int {
	m.nodes = append(m.nodes, Node{X: x, Y: y})
	return len(m.nodes) - 1
}

// AddMember connects nodes i and j and returns the member index. Zero-length
// members, unknown nodes and non-positive stiffness are rejected.
func (m *Model) AddMember(i, j int, sec Section) (int, error) {
	if i < 0 || i >= len(m.nodes) || j < 0 || j >= len(m.nodes) {
		return 0, fmt.Errorf("member references unknown node (%d, %d)", i, j)
	}
	if i == j {
		return 0, fmt.Errorf("member connects node %d to itself", i)
	}
	if m.length(i, j) == 0 {
		return 0, fmt.Errorf("zero-length member between nodes %d and %d", i, j)
	}
	if sec.E <= 0 || sec.A <= 0 || sec.I <= 0 {
		return 0, fmt.Errorf("invalid section: E=%g A=%g I=%g", sec.E, sec.A, sec.I)
	}
	m.members = append(m.members, Member{I: i, J: j, Section: sec})
	return len(m.members) - 1, nil
}

// Support restrains the given freedoms of a node.
func (m *Model) Support(node int, dx, dy, rz bool) error {
	if node < 0 || node >= len(m.nodes) {
		return fmt.Errorf("unknown node %d", node)
	}
	m.supports[node] = Restraint{Dx: dx, Dy: dy, Rz: rz}
	return nil
}

// AddNodalLoad applies a concentrated load to a node.
func (m *Model) AddNodalLoad(node int, fx, fy, mz float64) error {
	if node < 0 || node >= len(m.nodes) {
		return fmt.Errorf("unknown node %d", node)
	}
	m.loads = append(m.loads, NodalLoad{Node: node, Fx: fx, Fy: fy, Mz: mz})
	return nil
}

// AddMemberUDL applies a uniform gravity-direction load (kN/m, downward
// positive) over the whole member.
func (m *Model) AddMemberUDL(member int, w float64) error {
	if member < 0 || member >= len(m.members) {
		return fmt.Errorf("unknown member %d", member)
	}
	m.udls[member] += w
	return nil
}

// NodeCount reports the number of nodes.
func (m *Model) NodeCount() int { return len(m.nodes) }

// MemberCount reports the number of members.
func (m *Model) MemberCount() int { return len(m.members) }

func (m *Model) length(i, j int) float64 {
	dx := m.nodes[j].X - m.nodes[i].X
	dy := m.nodes[j].Y - m.nodes[i].Y
	return math.Hypot(dx, dy)
}

// direction returns the cosine/sine of the member axis from node I to J.
func (m *Model) direction(mb Member) (c, s, l float64) {
	l = m.length(mb.I, mb.J)
	c = (m.nodes[mb.J].X - m.nodes[mb.I].X) / l
	s = (m.nodes[mb.J].Y - m.nodes[mb.I].Y) / l
	return c, s, l
}
