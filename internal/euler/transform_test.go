package euler

import (
	"math"
	"testing"
)

func testPhysics() Physics {
	return Physics{Gamma: 1.4, RhoFloor: 1e-8, PressFloor: 1e-8, NScalar: 1}
}

func TestPrimConsRoundTrip(t *testing.T) {
	p := testPhysics()
	prim := []float64{1.2, 0.3, -0.7, 2.5, 0.8}

	cons := p.PointPrimToCons(prim)

	a := NewArray(5, 1, 1)
	b := NewArray(5, 1, 1)
	for m, v := range cons {
		a.Set3(m, 0, 0, v)
	}
	p.ConsToPrim(a, b)

	for m, want := range prim {
		got := b.At3(m, 0, 0)
		if diff := relDiff(got, want); diff > 1e-12 {
			t.Errorf("component %d: want %v got %v (rel diff %v)", m, want, got, diff)
		}
	}
}

func relDiff(got, want float64) float64 {
	if want == 0 {
		return got - want
	}
	d := got - want
	if d < 0 {
		d = -d
	}
	w := want
	if w < 0 {
		w = -w
	}
	return d / w
}

func TestConsLimEnforcesFloors(t *testing.T) {
	p := Physics{Gamma: 1.4, RhoFloor: 0.5, PressFloor: 0.1, NScalar: 1}
	cons := NewArray(5, 1, 1)
	prim := NewArray(5, 1, 1)

	bad := p.PointPrimToCons([]float64{-1.0, 0, 0, -5.0, -2.0})
	for m, v := range bad {
		cons.Set3(m, 0, 0, v)
	}

	p.ConsLim(cons, prim, false)

	if prim.At3(IRho, 0, 0) < p.RhoFloor {
		t.Errorf("rho %v below floor %v", prim.At3(IRho, 0, 0), p.RhoFloor)
	}
	if prim.At3(IEn, 0, 0) < p.PressFloor {
		t.Errorf("press %v below floor %v", prim.At3(IEn, 0, 0), p.PressFloor)
	}
	if prim.At3(4, 0, 0) < 0 {
		t.Errorf("scalar %v below zero floor", prim.At3(4, 0, 0))
	}
}

func TestConsLimStrictSanitizesNonFinite(t *testing.T) {
	p := Physics{Gamma: 1.4, RhoFloor: 1e-3, PressFloor: 1e-3, NScalar: 0}
	cons := NewArray(4, 1, 1)
	prim := NewArray(4, 1, 1)
	cons.Set3(IRho, 0, 0, math.NaN())
	cons.Set3(IMU, 0, 0, math.Inf(1))
	cons.Set3(IMV, 0, 0, 0)
	cons.Set3(IEn, 0, 0, 1)

	p.ConsLim(cons, prim, true)

	if math.IsNaN(cons.At3(IRho, 0, 0)) || math.IsInf(cons.At3(IMU, 0, 0), 0) {
		t.Fatalf("strict ConsLim left non-finite values: %v", cons.Elements)
	}
	if prim.At3(IRho, 0, 0) < p.RhoFloor {
		t.Errorf("sanitized rho %v below floor %v", prim.At3(IRho, 0, 0), p.RhoFloor)
	}
}
