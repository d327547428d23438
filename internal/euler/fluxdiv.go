package euler

// CalculateFluxDiv fills fluxdiv over the interior cell range
// [iLo,iHi) x [jLo,jHi) from the two face-flux arrays.
func CalculateFluxDiv(Ju, Jv, fluxdiv *Array, nquant int, du, dv float64, iLo, iHi, jLo, jHi int) {
	for m := 0; m < nquant; m++ {
		for i := iLo; i < iHi; i++ {
			for j := jLo; j < jHi; j++ {
				v := (Ju.At3(m, i, j)-Ju.At3(m, i+1, j))/du + (Jv.At3(m, i, j)-Jv.At3(m, i, j+1))/dv
				fluxdiv.Set3(m, i, j, v)
			}
		}
	}
}
