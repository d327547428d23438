package euler

import "math"

// ReconstructOrder selects the spatial reconstruction scheme.
type ReconstructOrder int

const (
	OrderPCM ReconstructOrder = 1 // piecewise constant
	OrderPLM ReconstructOrder = 2 // piecewise linear, van Leer limited
	OrderPPM ReconstructOrder = 3 // piecewise parabolic, extrema preserving
)

// PPMOptions carries the PPM limiter's tunables.
type PPMOptions struct {
	AlwaysLimit bool // PPM_ALWAYS_LIM
	StrictLimit bool // PPM_STRICT_LIM
	WeirdPPM    bool // WEIRD_PPM
}

func vanLeer(r float64) float64 {
	a := math.Abs(r)
	return (r + a) / (1 + a)
}

// plm computes the PLM pair from the 3-point stencil (q1,q2,q3).
func plm(q1, q2, q3 float64) (ql, qr float64) {
	var halfStep float64
	if q3-q2 != 0 {
		halfStep = 0.5 * vanLeer((q2-q1)/(q3-q2)) * (q3 - q2)
	}
	return q2 - halfStep, q2 + halfStep
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func fmin3(a, b, c float64) float64 { return math.Min(math.Min(a, b), c) }
func fmin4(a, b, c, d float64) float64 { return math.Min(math.Min(math.Min(a, b), c), d) }

// ppmLimParabola applies the Colella-Sekora extrema-preserving parabola
// limiter to a candidate (ql,qr) pair given the 5-point stencil.
func ppmLimParabola(ql, qr, q0, q1, q2, q3, q4 float64, opt PPMOptions) (float64, float64) {
	d := 1.26
	if opt.StrictLimit {
		d = 1
	}

	if (qr-q2)*(q2-ql) <= 0 || (q3-q2)*(q2-q1) <= 0 {
		curvc := (q1 + q3) - 2*q2
		curvl := (q0 + q2) - 2*q1
		curvr := (q2 + q4) - 2*q3
		var curvf float64
		if opt.WeirdPPM {
			curvf = 4 * ((ql + qr) - 2*q2)
		} else {
			curvf = 6 * ((ql + qr) - 2*q2)
		}

		var curv float64
		if sign(curvl) == sign(curvc) && sign(curvc) == sign(curvr) && sign(curvc) == sign(curvf) {
			curv = sign(curvf) * fmin4(d*math.Abs(curvl), d*math.Abs(curvc), d*math.Abs(curvr), math.Abs(curvf))
		}

		if curvf != 0 {
			ql = q2 + (ql-q2)*curv/curvf
			qr = q2 + (qr-q2)*curv/curvf
		} else {
			ql = q2
			qr = q2
		}
	} else if math.Abs(ql-q2) >= 2*math.Abs(qr-q2) {
		ql = q2 - 2*(qr-q2)
	} else if math.Abs(qr-q2) >= 2*math.Abs(ql-q2) {
		qr = q2 - 2*(ql-q2)
	}

	return ql, qr
}

// ppm computes the extrema-preserving PPM pair from the 5-point stencil.
func ppm(q0, q1, q2, q3, q4 float64, opt PPMOptions) (ql, qr float64) {
	c := 1.26
	if opt.StrictLimit {
		c = 1
	}

	ql = (7*(q1+q2) - (q0 + q3)) / 12
	curvl := (q0 + q2) - 2*q1
	curvr := (q1 + q3) - 2*q2
	curvf := 3 * ((q1 + q2) - 2*ql)
	if opt.AlwaysLimit || (curvr-curvf)*(curvl-curvf) > 0 {
		var curv float64
		if sign(curvl) == sign(curvf) && sign(curvf) == sign(curvr) {
			curv = sign(curvf) * fmin3(c*math.Abs(curvl), c*math.Abs(curvr), math.Abs(curvf))
		}
		ql = 0.5*(q1+q2) - curv/6
	}

	qr = (7*(q2+q3) - (q1 + q4)) / 12
	curvl = (q1 + q3) - 2*q2
	curvr = (q2 + q4) - 2*q3
	curvf = 3 * ((q2 + q3) - 2*qr)
	if opt.AlwaysLimit || (curvr-curvf)*(curvl-curvf) > 0 {
		var curv float64
		if sign(curvl) == sign(curvf) && sign(curvf) == sign(curvr) {
			curv = sign(curvf) * fmin3(c*math.Abs(curvl), c*math.Abs(curvr), math.Abs(curvf))
		}
		qr = 0.5*(q2+q3) - curv/6
	}

	ql, qr = ppmLimParabola(ql, qr, q0, q1, q2, q3, q4, opt)

	if opt.StrictLimit {
		ql = math.Min(math.Max(q1, q2), ql)
		ql = math.Max(math.Min(q1, q2), ql)
		qr = math.Min(math.Max(q3, q2), qr)
		qr = math.Max(math.Min(q3, q2), qr)
	}
	return ql, qr
}

// Reconstruct fills Rprim (right-going face state just below cell (i,j))
// and Lprim (left-going face state just above) from the cell-centred prim
// array, for every quantity, over the half-open cell range [iLo,iHi) x
// [jLo,jHi). The caller supplies exact, already-padded bounds: the tile
// geometry (tile.go) pads the decomposed axis only at true domain edges
// (ilr/iur) so neighbouring tiles never write the same face twice, and
// pads the non-decomposed axis by one cell on both true edges every
// tile, since that axis is never split across tiles.
func Reconstruct(prim, Lprim, Rprim *Array, dir Axis, order ReconstructOrder, opt PPMOptions, nquant int, iLo, iHi, jLo, jHi int) {
	di, dj := dir.stride()

	for m := 0; m < nquant; m++ {
		for i := iLo; i < iHi; i++ {
			for j := jLo; j < jHi; j++ {
				q0 := prim.At3(m, i-2*di, j-2*dj)
				q1 := prim.At3(m, i-di, j-dj)
				q2 := prim.At3(m, i, j)
				q3 := prim.At3(m, i+di, j+dj)
				q4 := prim.At3(m, i+2*di, j+2*dj)

				var ql, qr float64
				switch order {
				case OrderPCM:
					ql, qr = q2, q2
				case OrderPLM:
					ql, qr = plm(q1, q2, q3)
				case OrderPPM:
					ql, qr = ppm(q0, q1, q2, q3, q4, opt)
				default:
					panic("euler: invalid reconstruct order")
				}

				Rprim.Set3(m, i, j, ql)
				Lprim.Set3(m, i+di, j+dj, qr)
			}
		}
	}
}
