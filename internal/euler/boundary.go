package euler

// Boundary operators fill ghost cells of cons only, never prim; prim is
// refreshed from the just-filled cons by the leader's full-extent
// ConsLim pass that follows Boundary. nu/nv below are full (ghosted) extents,
// i.e. NU+2*NGhost and NV+2*NGhost.

// PeriodicLeft copies the rightmost interior columns into the left
// ghost columns.
func PeriodicLeft(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for k := 0; k < gh; k++ {
			for j := gh; j < nv-gh; j++ {
				cons.Set3(m, k, j, cons.At3(m, nu-2*gh+k, j))
			}
		}
	}
}

// PeriodicRight copies the leftmost interior columns into the right
// ghost columns.
func PeriodicRight(cons *Array, nquant, nu, nv, gh int) {
	i := nu - 1
	for m := 0; m < nquant; m++ {
		for k := 0; k < gh; k++ {
			for j := gh; j < nv-gh; j++ {
				cons.Set3(m, i-k, j, cons.At3(m, 2*gh-1-k, j))
			}
		}
	}
}

// PeriodicBot copies the topmost interior rows into the bottom ghost rows.
func PeriodicBot(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := gh; i < nu-gh; i++ {
			for k := 0; k < gh; k++ {
				cons.Set3(m, i, k, cons.At3(m, i, nv-2*gh+k))
			}
		}
	}
}

// PeriodicTop copies the bottommost interior rows into the top ghost rows.
func PeriodicTop(cons *Array, nquant, nu, nv, gh int) {
	j := nv - 1
	for m := 0; m < nquant; m++ {
		for i := gh; i < nu-gh; i++ {
			for k := 0; k < gh; k++ {
				cons.Set3(m, i, j-k, cons.At3(m, i, 2*gh-1-k))
			}
		}
	}
}

// PeriodicLB/RB/RT/LT fill one corner ghost block from the opposite
// interior corner block.

func PeriodicLB(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := 0; i < gh; i++ {
			for j := 0; j < gh; j++ {
				cons.Set3(m, i, j, cons.At3(m, nu-2*gh+i, nv-2*gh+j))
			}
		}
	}
}

func PeriodicRB(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := 0; i < gh; i++ {
			for j := 0; j < gh; j++ {
				cons.Set3(m, nu-gh+i, j, cons.At3(m, i+gh, nv-2*gh+j))
			}
		}
	}
}

func PeriodicRT(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := 0; i < gh; i++ {
			for j := 0; j < gh; j++ {
				cons.Set3(m, nu-gh+i, nv-gh+j, cons.At3(m, i+gh, j+gh))
			}
		}
	}
}

func PeriodicLT(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := 0; i < gh; i++ {
			for j := 0; j < gh; j++ {
				cons.Set3(m, i, nv-gh+j, cons.At3(m, nu-2*gh+i, j+gh))
			}
		}
	}
}

// SmoothLeft/Right/Bot/Top replicate the innermost interior row/column
// outward into the ghost zone (zero-gradient).

func SmoothLeft(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for k := 0; k < gh; k++ {
			for j := gh; j < nv-gh; j++ {
				cons.Set3(m, k, j, cons.At3(m, gh, j))
			}
		}
	}
}

func SmoothRight(cons *Array, nquant, nu, nv, gh int) {
	i := nu - 1
	for m := 0; m < nquant; m++ {
		for k := 0; k < gh; k++ {
			for j := gh; j < nv-gh; j++ {
				cons.Set3(m, i-k, j, cons.At3(m, nu-gh-1, j))
			}
		}
	}
}

func SmoothBot(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := gh; i < nu-gh; i++ {
			for k := 0; k < gh; k++ {
				cons.Set3(m, i, k, cons.At3(m, i, gh))
			}
		}
	}
}

func SmoothTop(cons *Array, nquant, nu, nv, gh int) {
	j := nv - 1
	for m := 0; m < nquant; m++ {
		for i := gh; i < nu-gh; i++ {
			for k := 0; k < gh; k++ {
				cons.Set3(m, i, j-k, cons.At3(m, i, nv-gh-1))
			}
		}
	}
}

// SmoothLB/RB/RT/LT replicate the single innermost interior corner cell
// across the whole corner ghost block.

func SmoothLB(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := 0; i < gh; i++ {
			for j := 0; j < gh; j++ {
				cons.Set3(m, i, j, cons.At3(m, gh, gh))
			}
		}
	}
}

func SmoothRB(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := 0; i < gh; i++ {
			for j := 0; j < gh; j++ {
				cons.Set3(m, nu-gh+i, j, cons.At3(m, nu-1-gh, gh))
			}
		}
	}
}

func SmoothRT(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := 0; i < gh; i++ {
			for j := 0; j < gh; j++ {
				cons.Set3(m, nu-gh+i, nv-gh+j, cons.At3(m, nu-1-gh, nv-1-gh))
			}
		}
	}
}

func SmoothLT(cons *Array, nquant, nu, nv, gh int) {
	for m := 0; m < nquant; m++ {
		for i := 0; i < gh; i++ {
			for j := 0; j < gh; j++ {
				cons.Set3(m, i, nv-gh+j, cons.At3(m, gh, nv-1-gh))
			}
		}
	}
}

// ReflectingLeft/Right/Bot/Top mirror the interior across the boundary
// and flip the sign of the momentum component normal to that face.
// Passive scalars (m>=4) mirror without a sign flip, same as density
// and the tangential momentum.

func ReflectingLeft(cons *Array, nquant, nu, nv, gh int) {
	for k := 0; k < gh; k++ {
		for j := gh; j < nv-gh; j++ {
			src := 2*gh - 1 - k
			reflectCell(cons, nquant, k, j, src, j, IMU)
		}
	}
}

func ReflectingRight(cons *Array, nquant, nu, nv, gh int) {
	i := nu - 1
	for k := 0; k < gh; k++ {
		for j := gh; j < nv-gh; j++ {
			src := i - 2*gh + 1 + k
			reflectCell(cons, nquant, i-k, j, src, j, IMU)
		}
	}
}

func ReflectingBot(cons *Array, nquant, nu, nv, gh int) {
	for i := gh; i < nu-gh; i++ {
		for k := 0; k < gh; k++ {
			src := 2*gh - 1 - k
			reflectCell(cons, nquant, i, k, i, src, IMV)
		}
	}
}

func ReflectingTop(cons *Array, nquant, nu, nv, gh int) {
	j := nv - 1
	for i := gh; i < nu-gh; i++ {
		for k := 0; k < gh; k++ {
			src := j - 2*gh + 1 + k
			reflectCell(cons, nquant, i, j-k, i, src, IMV)
		}
	}
}

// ReflectingLB/RB/RT/LT mirror across both axes and flip both momenta.

func ReflectingLB(cons *Array, nquant, nu, nv, gh int) {
	for i := 0; i < gh; i++ {
		for j := 0; j < gh; j++ {
			reflectCellBoth(cons, nquant, i, j, 2*gh-1-i, 2*gh-1-j)
		}
	}
}

func ReflectingRB(cons *Array, nquant, nu, nv, gh int) {
	for i := 0; i < gh; i++ {
		for j := 0; j < gh; j++ {
			reflectCellBoth(cons, nquant, nu-1-i, j, nu-2*gh+i, 2*gh-1-j)
		}
	}
}

func ReflectingRT(cons *Array, nquant, nu, nv, gh int) {
	for i := 0; i < gh; i++ {
		for j := 0; j < gh; j++ {
			reflectCellBoth(cons, nquant, nu-1-i, nv-1-j, nu-2*gh+i, nv-2*gh+j)
		}
	}
}

func ReflectingLT(cons *Array, nquant, nu, nv, gh int) {
	for i := 0; i < gh; i++ {
		for j := 0; j < gh; j++ {
			reflectCellBoth(cons, nquant, i, nv-1-j, 2*gh-1-i, nv-2*gh+j)
		}
	}
}

// reflectCell mirrors one ghost cell from (si,sj), flipping only the
// normalIdx momentum component.
func reflectCell(cons *Array, nquant, di, dj, si, sj, normalIdx int) {
	for m := 0; m < nquant; m++ {
		v := cons.At3(m, si, sj)
		if m == normalIdx {
			v = -v
		}
		cons.Set3(m, di, dj, v)
	}
}

// reflectCellBoth mirrors one corner ghost cell, flipping both IMU and
// IMV.
func reflectCellBoth(cons *Array, nquant, di, dj, si, sj int) {
	for m := 0; m < nquant; m++ {
		v := cons.At3(m, si, sj)
		if m == IMU || m == IMV {
			v = -v
		}
		cons.Set3(m, di, dj, v)
	}
}

// InflowPrim is a constant (rho, vu, vv, press) state injected into a
// face's ghost cells.
type InflowPrim struct {
	Rho, VU, VV, Press float64
}

// InflowLeft/Right/Bot/Top write the point-wise conserved conversion of
// prim into a face's ghost cells. The original source writes these to
// prim on three of the four faces; since boundaries are specified on
// cons, every face here writes the converted cons (the fix noted for
// the Right/Bot/Top variants).
func InflowLeft(cons *Array, p Physics, prim InflowPrim, nu, nv, gh int) {
	c := p.PointPrimToCons([]float64{prim.Rho, prim.VU, prim.VV, prim.Press})
	for k := 0; k < gh; k++ {
		for j := gh; j < nv-gh; j++ {
			for m := 0; m < len(c); m++ {
				cons.Set3(m, k, j, c[m])
			}
		}
	}
}

func InflowRight(cons *Array, p Physics, prim InflowPrim, nu, nv, gh int) {
	c := p.PointPrimToCons([]float64{prim.Rho, prim.VU, prim.VV, prim.Press})
	i := nu - 1
	for k := 0; k < gh; k++ {
		for j := gh; j < nv-gh; j++ {
			for m := 0; m < len(c); m++ {
				cons.Set3(m, i-k, j, c[m])
			}
		}
	}
}

func InflowBot(cons *Array, p Physics, prim InflowPrim, nu, nv, gh int) {
	c := p.PointPrimToCons([]float64{prim.Rho, prim.VU, prim.VV, prim.Press})
	for i := gh; i < nu-gh; i++ {
		for k := 0; k < gh; k++ {
			for m := 0; m < len(c); m++ {
				cons.Set3(m, i, k, c[m])
			}
		}
	}
}

func InflowTop(cons *Array, p Physics, prim InflowPrim, nu, nv, gh int) {
	c := p.PointPrimToCons([]float64{prim.Rho, prim.VU, prim.VV, prim.Press})
	j := nv - 1
	for i := gh; i < nu-gh; i++ {
		for k := 0; k < gh; k++ {
			for m := 0; m < len(c); m++ {
				cons.Set3(m, i, j-k, c[m])
			}
		}
	}
}
