package euler

import "testing"

// eulerFlux returns the analytic axis-u Euler flux F(state) for a
// primitive state (rho, vu, vv, press, scalars...), used as the ground
// truth HLLC must reduce to when left and right states coincide.
func eulerFlux(p Physics, prim []float64) []float64 {
	nq := len(prim)
	rho, vu, vv, press := prim[IRho], prim[IMU], prim[IMV], prim[IEn]
	cons := p.PointPrimToCons(prim)
	e := cons[IEn]

	f := make([]float64, nq)
	f[IRho] = rho * vu
	f[IMU] = rho*vu*vu + press
	f[IMV] = rho * vu * vv
	f[IEn] = (e + press) * vu
	for m := 4; m < nq; m++ {
		f[m] = rho * prim[m] * vu
	}
	return f
}

func setFaceState(a *Array, state []float64) {
	for m, v := range state {
		a.Set3(m, 0, 0, v)
	}
}

func TestHLLCConsistentStateGivesAnalyticFlux(t *testing.T) {
	p := testPhysics()
	state := []float64{1.1, 0.4, -0.2, 1.5, 0.3}
	cons := p.PointPrimToCons(state)

	Lprim := NewArray(5, 1, 1)
	Rprim := NewArray(5, 1, 1)
	Lcons := NewArray(5, 1, 1)
	Rcons := NewArray(5, 1, 1)
	Lw := NewArray(1, 1)
	Rw := NewArray(1, 1)
	J := NewArray(5, 1, 1)

	setFaceState(Lprim, state)
	setFaceState(Rprim, state)
	setFaceState(Lcons, cons)
	setFaceState(Rcons, cons)
	Lw.Set2(0, 0, -5)
	Rw.Set2(0, 0, 5)

	p.HLLC(Lprim, Lcons, Lw, Rprim, Rcons, Rw, J, AxisU, 0, 1, 0, 1)

	want := eulerFlux(p, state)
	for m, w := range want {
		got := J.At3(m, 0, 0)
		if diff := relDiff(got, w); diff > 1e-9 {
			t.Errorf("component %d: want %v got %v (rel diff %v)", m, w, got, diff)
		}
	}
}

func TestHLLCUpwindLimits(t *testing.T) {
	p := testPhysics()
	left := []float64{1.0, 2.0, 0.1, 1.0, 0.1}
	right := []float64{0.5, -1.0, 0.2, 0.5, 0.2}

	run := func(lw, rw float64) *Array {
		Lprim, Rprim := NewArray(5, 1, 1), NewArray(5, 1, 1)
		Lcons, Rcons := NewArray(5, 1, 1), NewArray(5, 1, 1)
		LwA, RwA := NewArray(1, 1), NewArray(1, 1)
		J := NewArray(5, 1, 1)

		setFaceState(Lprim, left)
		setFaceState(Rprim, right)
		setFaceState(Lcons, p.PointPrimToCons(left))
		setFaceState(Rcons, p.PointPrimToCons(right))
		LwA.Set2(0, 0, lw)
		RwA.Set2(0, 0, rw)

		p.HLLC(Lprim, Lcons, LwA, Rprim, Rcons, RwA, J, AxisU, 0, 1, 0, 1)
		return J
	}

	t.Run("left supersonic", func(t *testing.T) {
		J := run(1.0, 5.0)
		want := eulerFlux(p, left)
		for m, w := range want {
			if got := J.At3(m, 0, 0); relDiff(got, w) > 1e-9 {
				t.Errorf("component %d: want %v got %v", m, w, got)
			}
		}
	})

	t.Run("right supersonic", func(t *testing.T) {
		J := run(-5.0, -1.0)
		want := eulerFlux(p, right)
		for m, w := range want {
			if got := J.At3(m, 0, 0); relDiff(got, w) > 1e-9 {
				t.Errorf("component %d: want %v got %v", m, w, got)
			}
		}
	})
}
