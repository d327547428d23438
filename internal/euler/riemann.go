package euler

// HLLC computes the approximate Riemann flux J at every face in
// [iLo,iHi) x [jLo,jHi) along axis dir from the reconstructed left/right
// primitive and conservative face states and their wavespeeds.
func (p Physics) HLLC(Lprim, Lcons, Lw, Rprim, Rcons, Rw, J *Array, dir Axis, iLo, iHi, jLo, jHi int) {
	nq := p.nquant()
	vIdx := dir.velocityIndex()
	tIdx := IMU + IMV - vIdx // the other of IMU/IMV

	for i := iLo; i < iHi; i++ {
		for j := jLo; j < jHi; j++ {
			lw := Lw.At2(i, j)
			rw := Rw.At2(i, j)

			if lw == 0 && rw == 0 {
				for m := 0; m < nq; m++ {
					J.Set3(m, i, j, 0)
				}
				continue
			}

			lrho := Lprim.At3(IRho, i, j)
			rrho := Rprim.At3(IRho, i, j)
			lv := Lprim.At3(vIdx, i, j)
			rv := Rprim.At3(vIdx, i, j)
			lpress := Lprim.At3(IEn, i, j)
			rpress := Rprim.At3(IEn, i, j)
			le := Lcons.At3(IEn, i, j)
			re := Rcons.At3(IEn, i, j)

			if rw < 0 {
				for m := 0; m < nq; m++ {
					v := Rcons.At3(m, i, j) * rv
					if m == vIdx {
						v += rpress
					}
					if m == IEn {
						v += rpress * rv
					}
					J.Set3(m, i, j, v)
				}
				continue
			}
			if lw > 0 {
				for m := 0; m < nq; m++ {
					v := Lcons.At3(m, i, j) * lv
					if m == vIdx {
						v += lpress
					}
					if m == IEn {
						v += lpress * lv
					}
					J.Set3(m, i, j, v)
				}
				continue
			}

			mw := ((rrho*rv*(rv-rw) + rpress) - (lrho*lv*(lv-lw) + lpress)) / (rrho*(rv-rw) - lrho*(lv-lw))
			rho2 := lrho * (lv - lw) / (mw - lw)
			rho3 := rrho * (rv - rw) / (mw - rw)

			leftP := lrho*lv*lv + lpress - lw*lrho*lv - rho2*mw*mw + lw*rho2*mw
			rightP := rrho*rv*rv + rpress - rw*rrho*rv - rho3*mw*mw + rw*rho3*mw

			var mpress float64
			switch {
			case mw > 0:
				mpress = leftP
			case mw < 0:
				mpress = rightP
			default:
				mpress = 0.5 * (leftP + rightP)
			}

			if mw == 0 {
				for m := 0; m < nq; m++ {
					v := 0.0
					if m == vIdx {
						v = mpress
					}
					J.Set3(m, i, j, v)
				}
				continue
			}

			if mw < 0 {
				e3 := (rv*(re+rpress) - rw*re - mw*mpress) / (mw - rw)
				J.Set3(IRho, i, j, rho3*mw)
				J.Set3(vIdx, i, j, rho3*mw*mw+mpress)
				J.Set3(tIdx, i, j, rho3*Rprim.At3(tIdx, i, j)*mw)
				J.Set3(IEn, i, j, (e3+mpress)*mw)
				for m := 4; m < nq; m++ {
					J.Set3(m, i, j, rho3*Rprim.At3(m, i, j)*mw)
				}
			} else {
				e2 := (lv*(le+lpress) - lw*le - mw*mpress) / (mw - lw)
				J.Set3(IRho, i, j, rho2*mw)
				J.Set3(vIdx, i, j, rho2*mw*mw+mpress)
				J.Set3(tIdx, i, j, rho2*Lprim.At3(tIdx, i, j)*mw)
				J.Set3(IEn, i, j, (e2+mpress)*mw)
				for m := 4; m < nq; m++ {
					J.Set3(m, i, j, rho2*Lprim.At3(m, i, j)*mw)
				}
			}
		}
	}
}
