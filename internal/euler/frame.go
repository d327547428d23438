package euler

import "math"

// NewFrameChannel returns a single-slot, most-recent-wins byte channel:
// SendFrame never blocks the leader, and a slow or absent consumer only
// ever sees the newest frame rather than a backlog, keeping the
// broadcaster decoupled from grid internals.
func NewFrameChannel() chan []byte {
	return make(chan []byte, 1)
}

// SendFrame replaces whatever frame is currently queued on ch with
// frame, without blocking.
func SendFrame(ch chan []byte, frame []byte) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- frame:
	default:
	}
}

// BuildDensityRaster renders log10(rho) over the interior into a tightly
// packed NU*NV*3 byte buffer in row-major (u,v,channel) order, clipping
// to [clipMin,clipMax] and mapping linearly to [0,255] before
// replicating into R/G/B. It reads g directly and must only ever be
// called from the leader goroutine between steps; the resulting byte
// slice is what crosses into the broadcaster, which touches no grid
// state itself.
func BuildDensityRaster(g *Grid, clipMin, clipMax float64) []byte {
	nu, nv, gh := g.NU, g.NV, g.NGhost
	buf := make([]byte, nu*nv*3)
	span := clipMax - clipMin
	if span <= 0 {
		span = 1
	}
	for iu := 0; iu < nu; iu++ {
		for iv := 0; iv < nv; iv++ {
			rho := g.Prim.At3(IRho, iu+gh, iv+gh)
			f := math.Log10(rho)
			if f < clipMin {
				f = clipMin
			}
			if f > clipMax {
				f = clipMax
			}
			level := byte(255 * (f - clipMin) / span)
			off := (iu*nv + iv) * 3
			buf[off] = level
			buf[off+1] = level
			buf[off+2] = level
		}
	}
	return buf
}
