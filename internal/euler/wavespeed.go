package euler

import "math"

// Wavespeed fills Lw/Rw (min/max signal speed) at every face in
// [iLo,iHi) x [jLo,jHi) along axis dir, from the reconstructed face
// primitives and the adjacent cell-centred primitives.
func (p Physics) Wavespeed(prim, Lprim, Rprim, Lw, Rw *Array, dir Axis, iLo, iHi, jLo, jHi int) {
	di, dj := dir.stride()
	vIdx := dir.velocityIndex()

	for i := iLo; i < iHi; i++ {
		for j := jLo; j < jHi; j++ {
			lCellI, lCellJ := i-di, j-dj
			rCellI, rCellJ := i, j

			lcs := math.Max(
				math.Sqrt(p.Gamma*Lprim.At3(IEn, i, j)/Lprim.At3(IRho, i, j)),
				math.Sqrt(p.Gamma*prim.At3(IEn, lCellI, lCellJ)/prim.At3(IRho, lCellI, lCellJ)),
			)
			rcs := math.Max(
				math.Sqrt(p.Gamma*Rprim.At3(IEn, i, j)/Rprim.At3(IRho, i, j)),
				math.Sqrt(p.Gamma*prim.At3(IEn, rCellI, rCellJ)/prim.At3(IRho, rCellI, rCellJ)),
			)
			lv := math.Min(Lprim.At3(vIdx, i, j), prim.At3(vIdx, lCellI, lCellJ))
			rv := math.Max(Rprim.At3(vIdx, i, j), prim.At3(vIdx, rCellI, rCellJ))

			Lw.Set2(i, j, math.Min(lv-lcs, rv-rcs))
			Rw.Set2(i, j, math.Max(lv+lcs, rv+rcs))
		}
	}
}

// DetermineDt reduces dt (read-modify-write of a single shared float64,
// called by the leader only, never concurrently) across the interior
// cells using the CFL condition along axis dir.
func (p Physics) DetermineDt(Lw, Rw *Array, dir Axis, ds float64, iLoCell, iHiCell, jLoCell, jHiCell int, dt float64) float64 {
	di, dj := dir.stride()
	for i := iLoCell; i < iHiCell; i++ {
		for j := jLoCell; j < jHiCell; j++ {
			w1 := math.Abs(Rw.At2(i, j))
			w2 := math.Abs(Lw.At2(i+di, j+dj))
			crossTime := math.Min(ds/w1, ds/w2)
			if crossTime < dt {
				dt = crossTime
			}
		}
	}
	return dt
}
