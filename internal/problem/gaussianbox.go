package problem

import (
	"math"

	"github.com/bryanceoyang/euler2d/internal/euler"
)

// GaussianBox is a reflecting box with a
// Gaussian over-pressure pulse at the centre. Reflecting walls on every
// face conserve total mass and energy exactly up to floating point
// round-off, which is what the scenario's self-check verifies.
type GaussianBox struct {
	N                  int
	RhoBg, PressBg     float64
	Amplitude, Sigma   float64
	Gamma              float64
}

func newGaussianBox(params map[string]interface{}) (euler.Problem, error) {
	return &GaussianBox{
		N:         intParam(params, "n", 128),
		RhoBg:     floatParam(params, "rho_bg", 1.0),
		PressBg:   floatParam(params, "press_bg", 1.0),
		Amplitude: floatParam(params, "amplitude", 5.0),
		Sigma:     floatParam(params, "sigma", 0.05),
		Gamma:     1.4,
	}, nil
}

func (b *GaussianBox) Name() string { return "gaussian_box" }

func (b *GaussianBox) Property() euler.GridProperty {
	return euler.GridProperty{
		NU: b.N, NV: b.N, NGhost: 4,
		UMin: 0, UMax: 1, VMin: 0, VMax: 1,
		Gamma: b.Gamma, RhoFloor: 1e-8, PressFloor: 1e-8,
		Order: euler.OrderPPM,
	}
}

func (b *GaussianBox) pressureAt(x, y float64) float64 {
	dx, dy := x-0.5, y-0.5
	r2 := dx*dx + dy*dy
	return b.PressBg + b.Amplitude*math.Exp(-r2/(2*b.Sigma*b.Sigma))
}

func (b *GaussianBox) InitCond(g *euler.Grid) {
	p := g.Physics
	n0, n1 := g.ShapeN0N1()
	for i := 0; i < n0; i++ {
		x := g.Ucc.At1(i)
		for j := 0; j < n1; j++ {
			y := g.Vcc.At1(j)
			press := b.pressureAt(x, y)
			cons := p.PointPrimToCons([]float64{b.RhoBg, 0, 0, press})
			for m := range cons {
				g.Cons.Set3(m, i, j, cons[m])
			}
		}
	}
}

func (b *GaussianBox) Boundary(g *euler.Grid, time float64) {
	nq := g.NQuant()
	n0, n1 := g.ShapeN0N1()
	gh := g.NGhost
	euler.ReflectingLeft(g.Cons, nq, n0, n1, gh)
	euler.ReflectingRight(g.Cons, nq, n0, n1, gh)
	euler.ReflectingBot(g.Cons, nq, n0, n1, gh)
	euler.ReflectingTop(g.Cons, nq, n0, n1, gh)
	euler.ReflectingLB(g.Cons, nq, n0, n1, gh)
	euler.ReflectingRB(g.Cons, nq, n0, n1, gh)
	euler.ReflectingRT(g.Cons, nq, n0, n1, gh)
	euler.ReflectingLT(g.Cons, nq, n0, n1, gh)
}

func (b *GaussianBox) CalculateSrc(g *euler.Grid, iLo, iHi, jLo, jHi int) {
	g.Src.FillRange(0, iLo, iHi, jLo, jHi)
}

// TotalMass sums rho*Du*Dv over the interior, for the scenario's
// mass-conservation self-check.
func TotalMass(g *euler.Grid) float64 {
	return totalQuantity(g, euler.IRho)
}

// TotalEnergy sums the total-energy conserved component over the
// interior, for the scenario's energy-conservation self-check.
func TotalEnergy(g *euler.Grid) float64 {
	return totalQuantity(g, euler.IEn)
}

func totalQuantity(g *euler.Grid, m int) float64 {
	gh := g.NGhost
	sum := 0.0
	for i := gh; i < gh+g.NU; i++ {
		for j := gh; j < gh+g.NV; j++ {
			sum += g.Cons.At3(m, i, j)
		}
	}
	return sum * g.Du * g.Dv
}
