package euler

import "fmt"

// GridProperty carries the resolution, bounds, floors and numerical
// tunables a Problem installs via Property before InitCond runs.
type GridProperty struct {
	NU, NV   int
	NGhost   int
	NScalar  int
	UMin, UMax float64
	VMin, VMax float64

	Gamma      float64
	RhoFloor   float64
	PressFloor float64

	Order    ReconstructOrder
	PPMOpt   PPMOptions
}

// Problem is the capability record a concrete scenario installs at
// startup: it supplies resolution/physics (Property), fills the initial
// state (InitCond), re-applies boundary policy every step (Boundary) and
// optionally contributes a source term (CalculateSrc). Implementations
// live under internal/problem; Grid never imports that package,
// avoiding an import cycle and keeping the plug-in boundary a pure
// interface value rather than inheritance.
type Problem interface {
	Name() string
	Property() GridProperty
	InitCond(g *Grid)
	Boundary(g *Grid, time float64)
	// CalculateSrc writes g.Src over the cell range [iLo,iHi) x
	// [jLo,jHi); it is called once per tile per stage, so it must only
	// touch that range. The zero-source default simply fills it with 0.
	CalculateSrc(g *Grid, iLo, iHi, jLo, jHi int)
}

// Grid owns the full, untiled physical state and the coordinate arrays
// derived from its geometry. Worker tiles (tile.go) attach non-owning
// views onto Grid's backing arrays; Grid itself is touched directly by
// the leader (initialisation, boundary fill, dt reduction) and, through
// Problem.CalculateSrc, by every worker over its own tile range.
type Grid struct {
	GridProperty
	Physics Physics
	Du, Dv  float64

	// Cell-centred and face-centred coordinate arrays.
	Ucc, Vcc   *Array
	Uufc, Vufc *Array // u-direction face coordinates
	Uvfc, Vvfc *Array // v-direction face coordinates

	Cons    *Array
	Prim    *Array
	ConsGen *Array
	Fluxdiv *Array
	Src     *Array

	Ju, Jv             *Array
	Lprim, Rprim       *Array
	Lcons, Rcons       *Array
	Lw, Rw             *Array
}

// NewGrid allocates every state and coordinate array for prop and
// returns the assembled Grid. It does not fill initial conditions; call
// a Problem's InitCond next.
func NewGrid(prop GridProperty) *Grid {
	if prop.NGhost < 3 {
		panic(fmt.Sprintf("euler: NGhost must be >= 3 for PPM, got %d", prop.NGhost))
	}
	if prop.Order < OrderPCM || prop.Order > OrderPPM {
		panic(fmt.Sprintf("euler: invalid reconstruct order %d", prop.Order))
	}

	g := &Grid{GridProperty: prop}
	g.Physics = Physics{Gamma: prop.Gamma, RhoFloor: prop.RhoFloor, PressFloor: prop.PressFloor, NScalar: prop.NScalar}

	nu, nv, gh := prop.NU, prop.NV, prop.NGhost
	n0, n1 := nu+2*gh, nv+2*gh
	nq := NumQuant(prop.NScalar)

	g.Du = (prop.UMax - prop.UMin) / float64(nu)
	g.Dv = (prop.VMax - prop.VMin) / float64(nv)

	g.Ucc = NewArray(n0)
	g.Vcc = NewArray(n1)
	g.Uufc = NewArray(n0 + 1)
	g.Vufc = NewArray(n1)
	g.Uvfc = NewArray(n0)
	g.Vvfc = NewArray(n1 + 1)
	for i := 0; i < n0; i++ {
		g.Ucc.Set1(i, prop.UMin+(float64(i-gh)+0.5)*g.Du)
		g.Uvfc.Set1(i, prop.UMin+float64(i-gh)*g.Du)
	}
	for i := 0; i <= n0; i++ {
		g.Uufc.Set1(i, prop.UMin+float64(i-gh)*g.Du)
	}
	for j := 0; j < n1; j++ {
		g.Vcc.Set1(j, prop.VMin+(float64(j-gh)+0.5)*g.Dv)
		g.Vufc.Set1(j, prop.VMin+float64(j-gh)*g.Dv)
	}
	for j := 0; j <= n1; j++ {
		g.Vvfc.Set1(j, prop.VMin+float64(j-gh)*g.Dv)
	}

	g.Cons = NewArray(nq, n0, n1)
	g.Prim = NewArray(nq, n0, n1)
	g.ConsGen = NewArray(nq, n0, n1)
	g.Fluxdiv = NewArray(nq, n0, n1)
	g.Src = NewArray(nq, n0, n1)

	fn0, fn1 := n0+1, n1+1
	g.Ju = NewArray(nq, fn0, fn1)
	g.Jv = NewArray(nq, fn0, fn1)
	g.Lprim = NewArray(nq, fn0, fn1)
	g.Rprim = NewArray(nq, fn0, fn1)
	g.Lcons = NewArray(nq, fn0, fn1)
	g.Rcons = NewArray(nq, fn0, fn1)
	g.Lw = NewArray(fn0, fn1)
	g.Rw = NewArray(fn0, fn1)

	return g
}

// NQuant is the number of stored quantities, 4+NScalar.
func (g *Grid) NQuant() int { return NumQuant(g.NScalar) }

// ShapeN0N1 returns the full (ghosted) interior array extents.
func (g *Grid) ShapeN0N1() (int, int) {
	return g.NU + 2*g.NGhost, g.NV + 2*g.NGhost
}
