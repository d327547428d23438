package problem

import (
	"math"

	"github.com/bryanceoyang/euler2d/internal/euler"
)

// Advection carries a smooth sine density bump with a uniform velocity
// field under periodic BC. Because the
// advected solution is just the initial field shifted by v*t, the exact
// solution at any time is available analytically via ExactAt; DensityAt
// gives the initial field. No error-norm self-check is computed here.
type Advection struct {
	N          int
	VU, VV     float64
	Press      float64
	Gamma      float64
}

func newAdvection(params map[string]interface{}) (euler.Problem, error) {
	a := &Advection{
		N:     intParam(params, "n", 256),
		VU:    floatParam(params, "vu", 1.0),
		VV:    floatParam(params, "vv", 1.0),
		Press: floatParam(params, "press", 1.0),
		Gamma: 1.4,
	}
	return a, nil
}

func (a *Advection) Name() string { return "advection" }

func (a *Advection) Property() euler.GridProperty {
	return euler.GridProperty{
		NU: a.N, NV: a.N, NGhost: 4,
		UMin: 0, UMax: 1, VMin: 0, VMax: 1,
		Gamma: a.Gamma, RhoFloor: 1e-8, PressFloor: 1e-8,
		Order: euler.OrderPPM,
	}
}

// DensityAt returns the analytic initial density field rho(x,y) = 1 +
// 0.2*sin(2*pi*x)*sin(2*pi*y).
func (a *Advection) DensityAt(x, y float64) float64 {
	return 1 + 0.2*math.Sin(2*math.Pi*x)*math.Sin(2*math.Pi*y)
}

// ExactAt returns the advected analytic solution at time t: the initial
// field shifted by the uniform velocity and wrapped onto the periodic
// unit square.
func (a *Advection) ExactAt(x, y, t float64) float64 {
	wrap := func(v float64) float64 {
		v = math.Mod(v, 1)
		if v < 0 {
			v += 1
		}
		return v
	}
	return a.DensityAt(wrap(x-a.VU*t), wrap(y-a.VV*t))
}

func (a *Advection) InitCond(g *euler.Grid) {
	p := g.Physics
	n0, n1 := g.ShapeN0N1()
	for i := 0; i < n0; i++ {
		x := g.Ucc.At1(i)
		for j := 0; j < n1; j++ {
			y := g.Vcc.At1(j)
			rho := a.DensityAt(x, y)
			cons := p.PointPrimToCons([]float64{rho, a.VU, a.VV, a.Press})
			for m := range cons {
				g.Cons.Set3(m, i, j, cons[m])
			}
		}
	}
}

func (a *Advection) Boundary(g *euler.Grid, time float64) {
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

func (a *Advection) CalculateSrc(g *euler.Grid, iLo, iHi, jLo, jHi int) {
	g.Src.FillRange(0, iLo, iHi, jLo, jHi)
}
