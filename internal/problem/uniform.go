package problem

import "github.com/bryanceoyang/euler2d/internal/euler"

// Uniform is a stationary constant state under periodic BC, generalised
// with a configurable advection velocity so the same type also serves a
// thread-count-invariance check when run at varying NThread.
type Uniform struct {
	NU, NV     int
	Rho, Press float64
	VU, VV     float64
	Gamma      float64
}

func newUniform(params map[string]interface{}) (euler.Problem, error) {
	u := &Uniform{
		NU:    intParam(params, "nu", 64),
		NV:    intParam(params, "nv", 64),
		Rho:   floatParam(params, "rho", 1.0),
		Press: floatParam(params, "press", 1.0),
		VU:    floatParam(params, "vu", 0.0),
		VV:    floatParam(params, "vv", 0.0),
		Gamma: 1.4,
	}
	return u, nil
}

func (u *Uniform) Name() string { return "uniform" }

func (u *Uniform) Property() euler.GridProperty {
	return euler.GridProperty{
		NU: u.NU, NV: u.NV, NGhost: 4,
		UMin: 0, UMax: 1, VMin: 0, VMax: 1,
		Gamma: u.Gamma, RhoFloor: 1e-8, PressFloor: 1e-8,
		Order: euler.OrderPPM,
	}
}

func (u *Uniform) InitCond(g *euler.Grid) {
	p := g.Physics
	cons := p.PointPrimToCons([]float64{u.Rho, u.VU, u.VV, u.Press})
	n0, n1 := g.ShapeN0N1()
	for i := 0; i < n0; i++ {
		for j := 0; j < n1; j++ {
			for m := range cons {
				g.Cons.Set3(m, i, j, cons[m])
			}
		}
	}
}

func (u *Uniform) Boundary(g *euler.Grid, time float64) {
	nq := g.NQuant()
	n0, n1 := g.ShapeN0N1()
	gh := g.NGhost
	euler.PeriodicLeft(g.Cons, nq, n0, n1, gh)
	euler.PeriodicRight(g.Cons, nq, n0, n1, gh)
	euler.PeriodicBot(g.Cons, nq, n0, n1, gh)
	euler.PeriodicTop(g.Cons, nq, n0, n1, gh)
	euler.PeriodicLB(g.Cons, nq, n0, n1, gh)
	euler.PeriodicRB(g.Cons, nq, n0, n1, gh)
	euler.PeriodicRT(g.Cons, nq, n0, n1, gh)
	euler.PeriodicLT(g.Cons, nq, n0, n1, gh)
}

func (u *Uniform) CalculateSrc(g *euler.Grid, iLo, iHi, jLo, jHi int) {
	g.Src.FillRange(0, iLo, iHi, jLo, jHi)
}
