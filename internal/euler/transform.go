package euler

import "math"

// Physics carries the equation-of-state parameters and floors shared by
// every pointwise transform. It is read-only once a run starts.
type Physics struct {
	Gamma     float64
	RhoFloor  float64
	PressFloor float64
	NScalar   int
}

func (p Physics) nquant() int { return NumQuant(p.NScalar) }

// PrimToCons converts primitive to conservative variables over the full
// extent of both arrays (shape [Q, n0, n1]). The same routine handles
// both cell-centred and face-centred arrays.
func (p Physics) PrimToCons(prim, cons *Array) {
	n0, n1 := prim.Shape[1], prim.Shape[2]
	p.PrimToConsRange(prim, cons, 0, n0, 0, n1)
}

// PrimToConsRange is PrimToCons restricted to [iLo,iHi) x [jLo,jHi), the
// form the per-tile worker pipeline uses on both cell-centred and
// face-centred arrays.
func (p Physics) PrimToConsRange(prim, cons *Array, iLo, iHi, jLo, jHi int) {
	nq := p.nquant()
	for i := iLo; i < iHi; i++ {
		for j := jLo; j < jHi; j++ {
			rho := prim.At3(IRho, i, j)
			vu := prim.At3(IMU, i, j)
			vv := prim.At3(IMV, i, j)
			press := prim.At3(IEn, i, j)

			cons.Set3(IRho, i, j, rho)
			cons.Set3(IMU, i, j, rho*vu)
			cons.Set3(IMV, i, j, rho*vv)
			cons.Set3(IEn, i, j, 0.5*rho*(vu*vu+vv*vv)+press/(p.Gamma-1))

			for m := 4; m < nq; m++ {
				cons.Set3(m, i, j, rho*prim.At3(m, i, j))
			}
		}
	}
}

// ConsToPrim converts conservative to primitive variables over the full
// extent of both arrays.
func (p Physics) ConsToPrim(cons, prim *Array) {
	n0, n1 := cons.Shape[1], cons.Shape[2]
	p.ConsToPrimRange(cons, prim, 0, n0, 0, n1)
}

// ConsToPrimRange is ConsToPrim restricted to [iLo,iHi) x [jLo,jHi).
func (p Physics) ConsToPrimRange(cons, prim *Array, iLo, iHi, jLo, jHi int) {
	nq := p.nquant()
	for i := iLo; i < iHi; i++ {
		for j := jLo; j < jHi; j++ {
			rho := cons.At3(IRho, i, j)
			vu := cons.At3(IMU, i, j) / rho
			vv := cons.At3(IMV, i, j) / rho
			ke := 0.5 * rho * (vu*vu + vv*vv)

			prim.Set3(IRho, i, j, rho)
			prim.Set3(IMU, i, j, vu)
			prim.Set3(IMV, i, j, vv)
			prim.Set3(IEn, i, j, (cons.At3(IEn, i, j)-ke)*(p.Gamma-1))

			for m := 4; m < nq; m++ {
				prim.Set3(m, i, j, cons.At3(m, i, j)/rho)
			}
		}
	}
}

// PointPrimToCons converts a single primitive vector to a Q-length
// conserved vector, used by inflow boundaries and problem initial
// conditions where a constant state is injected cell-by-cell. prim holds
// at least (rho, vu, vv, press); passive scalars missing from a shorter
// vector are taken as zero.
func (p Physics) PointPrimToCons(prim []float64) []float64 {
	nq := p.nquant()
	cons := make([]float64, nq)
	rho := prim[IRho]
	vu, vv := prim[IMU], prim[IMV]
	cons[IRho] = rho
	cons[IMU] = rho * vu
	cons[IMV] = rho * vv
	cons[IEn] = 0.5*rho*(vu*vu+vv*vv) + prim[IEn]/(p.Gamma-1)
	for m := 4; m < nq && m < len(prim); m++ {
		cons[m] = rho * prim[m]
	}
	return cons
}

// PrimFloor clamps density, pressure and passive scalars to their floors
// in place, over the full extent of prim.
func (p Physics) PrimFloor(prim *Array) {
	n0, n1 := prim.Shape[1], prim.Shape[2]
	p.PrimFloorRange(prim, 0, n0, 0, n1)
}

// PrimFloorRange is PrimFloor restricted to [iLo,iHi) x [jLo,jHi).
func (p Physics) PrimFloorRange(prim *Array, iLo, iHi, jLo, jHi int) {
	nq := p.nquant()
	for i := iLo; i < iHi; i++ {
		for j := jLo; j < jHi; j++ {
			if prim.At3(IRho, i, j) < p.RhoFloor {
				prim.Set3(IRho, i, j, p.RhoFloor)
			}
			if prim.At3(IEn, i, j) < p.PressFloor {
				prim.Set3(IEn, i, j, p.PressFloor)
			}
			for m := 4; m < nq; m++ {
				if prim.At3(m, i, j) < 0 {
					prim.Set3(m, i, j, 0)
				}
			}
		}
	}
}

// ConsLim is cons->prim, floor, prim->cons, applied in place over the
// full extent. strict additionally clamps any non-finite conserved
// value to the floor state before decoding, the NaN-sentinel cleanup
// PPM_STRICT_LIM triggers.
func (p Physics) ConsLim(cons, prim *Array, strict bool) {
	n0, n1 := cons.Shape[1], cons.Shape[2]
	p.ConsLimRange(cons, prim, strict, 0, n0, 0, n1)
}

// ConsLimRange is ConsLim restricted to [iLo,iHi) x [jLo,jHi), the form
// the per-tile worker pipeline and the face-state floor pass use.
func (p Physics) ConsLimRange(cons, prim *Array, strict bool, iLo, iHi, jLo, jHi int) {
	if strict {
		p.sanitizeNonFiniteRange(cons, iLo, iHi, jLo, jHi)
	}
	p.ConsToPrimRange(cons, prim, iLo, iHi, jLo, jHi)
	p.PrimFloorRange(prim, iLo, iHi, jLo, jHi)
	p.PrimToConsRange(prim, cons, iLo, iHi, jLo, jHi)
}

func (p Physics) sanitizeNonFiniteRange(cons *Array, iLo, iHi, jLo, jHi int) {
	nq := p.nquant()
	floorState := []float64{p.RhoFloor, 0, 0, p.PressFloor / (p.Gamma - 1)}
	for i := iLo; i < iHi; i++ {
		for j := jLo; j < jHi; j++ {
			bad := false
			for m := 0; m < nq; m++ {
				v := cons.At3(m, i, j)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					bad = true
					break
				}
			}
			if !bad {
				continue
			}
			for m := 0; m < 4 && m < nq; m++ {
				cons.Set3(m, i, j, floorState[m])
			}
			for m := 4; m < nq; m++ {
				cons.Set3(m, i, j, 0)
			}
		}
	}
}
