package euler

import "fmt"

// Scheme selects the SSPRK time-integration weights.
type Scheme int

const (
	SchemeEuler Scheme = iota
	SchemeRK2
	SchemeSSPRK3
)

func (s Scheme) String() string {
	switch s {
	case SchemeEuler:
		return "euler"
	case SchemeRK2:
		return "rk2"
	case SchemeSSPRK3:
		return "ssprk3"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// stageWeight is the (a,b,c) combination weight for one RK stage:
// u^(s+1) = a*u^(0) + b*u^(s) + c*D*dt.
type stageWeight struct {
	a, b, c float64
}

// timeWeight returns (b+c)/(a+b), used to derive step_dt/step_time.
func (w stageWeight) timeWeight() float64 {
	return (w.b + w.c) / (w.a + w.b)
}

// Integrator holds the per-stage weights for one SSPRK scheme.
type Integrator struct {
	Scheme  Scheme
	CFLNum  float64
	weights []stageWeight
}

// NewIntegrator builds the stage-weight table for scheme.
func NewIntegrator(scheme Scheme, cflNum float64) *Integrator {
	it := &Integrator{Scheme: scheme, CFLNum: cflNum}
	switch scheme {
	case SchemeEuler:
		it.weights = []stageWeight{{1, 0, 1}}
	case SchemeRK2:
		it.weights = []stageWeight{{1, 0, 1}, {0.5, 0.5, 0.5}}
	case SchemeSSPRK3:
		it.weights = []stageWeight{
			{1, 0, 1},
			{3.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0},
			{1.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0},
		}
	default:
		panic(fmt.Sprintf("euler: unknown SSPRK scheme %v", scheme))
	}
	return it
}

// NStage is the number of RK sub-stages in this scheme.
func (it *Integrator) NStage() int { return len(it.weights) }

// StepDt returns the per-stage time step of stage s (0-indexed):
// tw_s * dt. AddFluxDivSrc does not use it; it takes the full step dt
// and scales the derivative by the stage's c weight.
func (it *Integrator) StepDt(s int, dt float64) float64 {
	return it.weights[s].timeWeight() * dt
}

// StepTime returns the simulation time at which stage s's derivative is
// evaluated: t_n for s=0, else t_n + tw_{s-1}*dt.
func (it *Integrator) StepTime(s int, tn, dt float64) float64 {
	if s == 0 {
		return tn
	}
	return tn + it.weights[s-1].timeWeight()*dt
}

// AddFluxDivSrc combines one RK stage in place over [iLo,iHi) x
// [jLo,jHi): cons = a*cons_gen + b*cons + c*(fluxdiv+src)*dt.
func (it *Integrator) AddFluxDivSrc(s int, cons, consGen, fluxdiv, src *Array, nquant int, dt float64, iLo, iHi, jLo, jHi int) {
	w := it.weights[s]
	for m := 0; m < nquant; m++ {
		for i := iLo; i < iHi; i++ {
			for j := jLo; j < jHi; j++ {
				deriv := fluxdiv.At3(m, i, j) + src.At3(m, i, j)
				v := w.a*consGen.At3(m, i, j) + w.b*cons.At3(m, i, j) + w.c*deriv*dt
				cons.Set3(m, i, j, v)
			}
		}
	}
}
