package problem

import "github.com/bryanceoyang/euler2d/internal/euler"

// Riemann4 is the four-quadrant 2D Riemann
// problem, configuration 3 in the standard Schulz-Rinne enumeration.
// Each quadrant starts in a distinct constant state; smooth (zero
// gradient) BC on every face stands in for open boundaries, since the
// comparison window (t=0.3) never lets the outward waves reach the
// domain edge on the reference resolution.
type Riemann4 struct {
	N     int
	Gamma float64
}

func newRiemann4(params map[string]interface{}) (euler.Problem, error) {
	return &Riemann4{
		N:     intParam(params, "n", 400),
		Gamma: 1.4,
	}, nil
}

func (r *Riemann4) Name() string { return "riemann4" }

func (r *Riemann4) Property() euler.GridProperty {
	return euler.GridProperty{
		NU: r.N, NV: r.N, NGhost: 4,
		UMin: 0, UMax: 1, VMin: 0, VMax: 1,
		Gamma: r.Gamma, RhoFloor: 1e-8, PressFloor: 1e-8,
		Order: euler.OrderPPM,
	}
}

// quadrant returns the (rho,vu,vv,press) state for the quadrant
// containing (x,y), split at the domain centre (0.5, 0.5).
func (r *Riemann4) quadrant(x, y float64) [4]float64 {
	switch {
	case x >= 0.5 && y >= 0.5:
		return [4]float64{1.5, 0, 0, 1.5}
	case x < 0.5 && y >= 0.5:
		return [4]float64{0.5323, 1.206, 0, 0.3}
	case x < 0.5 && y < 0.5:
		return [4]float64{0.138, 1.206, 1.206, 0.029}
	default:
		return [4]float64{0.5323, 0, 1.206, 0.3}
	}
}

func (r *Riemann4) InitCond(g *euler.Grid) {
	p := g.Physics
	n0, n1 := g.ShapeN0N1()
	for i := 0; i < n0; i++ {
		x := g.Ucc.At1(i)
		for j := 0; j < n1; j++ {
			y := g.Vcc.At1(j)
			q := r.quadrant(x, y)
			cons := p.PointPrimToCons(q[:])
			for m := range cons {
				g.Cons.Set3(m, i, j, cons[m])
			}
		}
	}
}

func (r *Riemann4) Boundary(g *euler.Grid, time float64) {
	nq := g.NQuant()
	n0, n1 := g.ShapeN0N1()
	gh := g.NGhost
	euler.SmoothLeft(g.Cons, nq, n0, n1, gh)
	euler.SmoothRight(g.Cons, nq, n0, n1, gh)
	euler.SmoothBot(g.Cons, nq, n0, n1, gh)
	euler.SmoothTop(g.Cons, nq, n0, n1, gh)
	euler.SmoothLB(g.Cons, nq, n0, n1, gh)
	euler.SmoothRB(g.Cons, nq, n0, n1, gh)
	euler.SmoothRT(g.Cons, nq, n0, n1, gh)
	euler.SmoothLT(g.Cons, nq, n0, n1, gh)
}

func (r *Riemann4) CalculateSrc(g *euler.Grid, iLo, iHi, jLo, jHi int) {
	g.Src.FillRange(0, iLo, iHi, jLo, jHi)
}
