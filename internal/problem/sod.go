package problem

import "github.com/bryanceoyang/euler2d/internal/euler"

// Sod is a shock tube along axis 0, smooth BC on
// the transverse faces and a constant inflow/smooth closure on the
// tube's own ends so the left/right states never get overwritten by a
// periodic wrap.
type Sod struct {
	NU, NV int
	Gamma  float64

	Left, Right euler.InflowPrim
}

func newSod(params map[string]interface{}) (euler.Problem, error) {
	s := &Sod{
		NU: intParam(params, "nu", 256),
		NV: intParam(params, "nv", 4),
		Gamma: 1.4,
		Left:  euler.InflowPrim{Rho: 1.0, VU: 0, VV: 0, Press: 1.0},
		Right: euler.InflowPrim{Rho: 0.125, VU: 0, VV: 0, Press: 0.1},
	}
	return s, nil
}

func (s *Sod) Name() string { return "sod" }

func (s *Sod) Property() euler.GridProperty {
	return euler.GridProperty{
		NU: s.NU, NV: s.NV, NGhost: 4,
		UMin: 0, UMax: 1, VMin: 0, VMax: float64(s.NV) / float64(s.NU),
		Gamma: s.Gamma, RhoFloor: 1e-8, PressFloor: 1e-8,
		Order: euler.OrderPPM,
	}
}

func (s *Sod) InitCond(g *euler.Grid) {
	p := g.Physics
	n0, n1 := g.ShapeN0N1()
	gh := g.NGhost
	mid := float64(s.NU) / 2
	for i := 0; i < n0; i++ {
		iu := float64(i - gh)
		state := s.Left
		if iu >= mid {
			state = s.Right
		}
		cons := p.PointPrimToCons([]float64{state.Rho, state.VU, state.VV, state.Press})
		for j := 0; j < n1; j++ {
			for m := range cons {
				g.Cons.Set3(m, i, j, cons[m])
			}
		}
	}
}

func (s *Sod) Boundary(g *euler.Grid, time float64) {
	nq := g.NQuant()
	n0, n1 := g.ShapeN0N1()
	gh := g.NGhost
	p := g.Physics

	euler.InflowLeft(g.Cons, p, s.Left, n0, n1, gh)
	euler.InflowRight(g.Cons, p, s.Right, n0, n1, gh)
	euler.SmoothBot(g.Cons, nq, n0, n1, gh)
	euler.SmoothTop(g.Cons, nq, n0, n1, gh)
	euler.SmoothLB(g.Cons, nq, n0, n1, gh)
	euler.SmoothRB(g.Cons, nq, n0, n1, gh)
	euler.SmoothRT(g.Cons, nq, n0, n1, gh)
	euler.SmoothLT(g.Cons, nq, n0, n1, gh)
}

func (s *Sod) CalculateSrc(g *euler.Grid, iLo, iHi, jLo, jHi int) {
	g.Src.FillRange(0, iLo, iHi, jLo, jHi)
}
