package euler

import (
	"context"
	"math"
)

// Simulation owns one Grid, its tile decomposition and the worker pool
// that advances it: a fixed pool of NThread goroutines, each bound to
// one Tile, synchronising on a single shared Barrier every sub-step;
// tile 0 always plays the leader role (cons_gen/dt/step_dt/step_time/
// time bookkeeping, boundary fill, broadcast trigger).
type Simulation struct {
	Grid       *Grid
	Integrator *Integrator
	Problem    Problem
	NThread    int
	MaxEpoch   int
	OutDt      float64

	// FrameCh, if non-nil, receives one raster per output cadence tick
	// via SendFrame; it must be a single-slot channel from
	// NewFrameChannel so the leader never blocks on a slow consumer.
	FrameCh          chan []byte
	ClipMin, ClipMax float64

	// OnEpoch, if non-nil, is invoked by the leader once per completed
	// step for progress reporting.
	OnEpoch func(epoch int, state StepState)

	tiles   []Tile
	barrier *Barrier
	state   StepState
	nextOut float64
}

// Prepare builds the tile decomposition and barrier. Call once after
// the Problem's InitCond and an initial Boundary fill have run on Grid.
func (s *Simulation) Prepare() {
	s.tiles = BuildTiles(s.Grid, s.NThread)
	s.barrier = NewBarrier(s.NThread)
	s.nextOut = s.OutDt
}

// Run advances the simulation until MaxEpoch steps complete or ctx is
// cancelled. It blocks until every worker goroutine has returned.
func (s *Simulation) Run(ctx context.Context) {
	if s.tiles == nil {
		s.Prepare()
	}

	done := make(chan struct{}, s.NThread)
	for t := 0; t < s.NThread; t++ {
		go s.runWorker(ctx, t, done)
	}
	for t := 0; t < s.NThread; t++ {
		<-done
	}
}

// runWorker is the body one goroutine runs for the lifetime of the
// simulation: it repeatedly advances its tile through every RK stage of
// every step, touching only its own [il,iu) range except for the
// leader-only phases gated by the leader flag.
func (s *Simulation) runWorker(ctx context.Context, idx int, done chan<- struct{}) {
	defer func() { done <- struct{}{} }()

	tile := &s.tiles[idx]
	leader := idx == 0
	g := s.Grid
	p := g.Physics
	nq := g.NQuant()
	nstage := s.Integrator.NStage()
	strict := g.PPMOpt.StrictLimit

	for epoch := 0; epoch < s.MaxEpoch; epoch++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		for stage := 0; stage < nstage; stage++ {
			if leader && stage == 0 {
				g.ConsGen.CopyDataFrom(g.Cons)
				s.state.Dt = math.Inf(1)
			}
			s.barrier.Wait()

			for _, dir := range [2]Axis{AxisU, AxisV} {
				riLo, riHi, rjLo, rjHi := tile.ReconBounds(dir)
				Reconstruct(tile.Prim, tile.Lprim, tile.Rprim, dir, g.Order, g.PPMOpt, nq, riLo, riHi, rjLo, rjHi)
				s.barrier.Wait()

				fiLo, fiHi, fjLo, fjHi := tile.FaceBounds(dir)
				p.PrimFloorRange(tile.Lprim, fiLo, fiHi, fjLo, fjHi)
				p.PrimFloorRange(tile.Rprim, fiLo, fiHi, fjLo, fjHi)
				p.PrimToConsRange(tile.Lprim, tile.Lcons, fiLo, fiHi, fjLo, fjHi)
				p.PrimToConsRange(tile.Rprim, tile.Rcons, fiLo, fiHi, fjLo, fjHi)
				s.barrier.Wait()

				p.Wavespeed(tile.Prim, tile.Lprim, tile.Rprim, tile.Lw, tile.Rw, dir, fiLo, fiHi, fjLo, fjHi)
				s.barrier.Wait()

				if leader && stage == 0 {
					ds := g.Du
					if dir == AxisV {
						ds = g.Dv
					}
					ciLo, ciHi, cjLo, cjHi := g.NGhost, g.NGhost+g.NU, g.NGhost, g.NGhost+g.NV
					s.state.Dt = p.DetermineDt(g.Lw, g.Rw, dir, ds, ciLo, ciHi, cjLo, cjHi, s.state.Dt)
				}
				s.barrier.Wait()

				p.HLLC(tile.Lprim, tile.Lcons, tile.Lw, tile.Rprim, tile.Rcons, tile.Rw, tile.fluxArray(dir), dir, fiLo, fiHi, fjLo, fjHi)
			}

			if leader {
				if stage == 0 {
					s.state.Dt *= s.Integrator.CFLNum
				}
				s.state.StepDt = s.Integrator.StepDt(stage, s.state.Dt)
				s.state.StepTime = s.Integrator.StepTime(stage, s.state.Time, s.state.Dt)
			}
			s.barrier.Wait()

			ciLo, ciHi, cjLo, cjHi := tile.CellBounds()
			CalculateFluxDiv(tile.View.Ju, tile.Jv, tile.Fluxdiv, nq, g.Du, g.Dv, ciLo, ciHi, cjLo, cjHi)
			s.Problem.CalculateSrc(g, ciLo, ciHi, cjLo, cjHi)
			s.Integrator.AddFluxDivSrc(stage, tile.Cons, tile.ConsGen, tile.Fluxdiv, tile.Src, nq, s.state.Dt, ciLo, ciHi, cjLo, cjHi)
			s.barrier.Wait()

			p.ConsLimRange(tile.Cons, tile.Prim, strict, ciLo, ciHi, cjLo, cjHi)
			s.barrier.Wait()

			if leader {
				s.Problem.Boundary(g, s.state.StepTime)
				// Boundary only rewrote cons in the ghost zone; every
				// worker's ConsLim above already refreshed its own
				// interior tile, so a single full-extent pass here
				// (idempotent on the interior, authoritative on the
				// ghosts) is what gives prim a valid value at every
				// ghost cell the next stage's reconstruction stencil
				// will read, without tiles needing to own ghost ranges.
				p.ConsLim(g.Cons, g.Prim, strict)
			}
			s.barrier.Wait()
		}

		if leader {
			s.state.Time += s.state.Dt
			if s.OnEpoch != nil {
				s.OnEpoch(epoch, s.state)
			}
			if s.FrameCh != nil && s.state.Time >= s.nextOut {
				SendFrame(s.FrameCh, BuildDensityRaster(g, s.ClipMin, s.ClipMax))
				s.nextOut += s.OutDt
			}
		}
		s.barrier.Wait()
	}
}
