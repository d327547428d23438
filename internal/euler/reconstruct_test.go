package euler

import "testing"

func TestPPMMonotoneDataStaysBounded(t *testing.T) {
	opt := PPMOptions{StrictLimit: true}

	cases := [][5]float64{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{-2, -1, 0, 1, 2},
	}
	for _, q := range cases {
		ql, qr := ppm(q[0], q[1], q[2], q[3], q[4], opt)

		loL, hiL := minmax(q[1], q[2])
		if ql < loL || ql > hiL {
			t.Errorf("stencil %v: ql=%v outside [%v,%v]", q, ql, loL, hiL)
		}
		loR, hiR := minmax(q[2], q[3])
		if qr < loR || qr > hiR {
			t.Errorf("stencil %v: qr=%v outside [%v,%v]", q, qr, loR, hiR)
		}
	}
}

func minmax(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func TestReconstructPCMIsCellValue(t *testing.T) {
	const nq, n0, n1 = 1, 8, 1
	prim := NewArray(nq, n0, n1)
	for i := 0; i < n0; i++ {
		prim.Set3(0, i, 0, float64(i))
	}
	Lprim := NewArray(nq, n0+1, n1+1)
	Rprim := NewArray(nq, n0+1, n1+1)

	// Reconstruct reads a 5-point stencil, so only cells with two
	// neighbours on each side are reconstructed.
	Reconstruct(prim, Lprim, Rprim, AxisU, OrderPCM, PPMOptions{}, nq, 2, n0-2, 0, 1)

	// PCM writes the cell value into Rprim at the cell's own face index
	// and into Lprim at the next face index.
	for i := 2; i < n0-2; i++ {
		if got := Rprim.At3(0, i, 0); got != prim.At3(0, i, 0) {
			t.Errorf("PCM Rprim[%d] = %v, want cell value %v", i, got, prim.At3(0, i, 0))
		}
		if got := Lprim.At3(0, i+1, 0); got != prim.At3(0, i, 0) {
			t.Errorf("PCM Lprim[%d] = %v, want cell value %v", i+1, got, prim.At3(0, i, 0))
		}
	}
}
