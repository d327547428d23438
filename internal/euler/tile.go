package euler

// Tile is one worker's contiguous axis-0 (u) slice of the grid plus the
// auxiliary index ranges its reconstruction and face passes need. It
// attaches non-owning View arrays onto the Grid's backing storage (see
// Array.Attach) so a worker addresses the same memory as every other
// worker without ever copying state; safety rests entirely on the
// ranges below partitioning writes so no two tiles ever touch the same
// cell.
type Tile struct {
	Index, NThread int

	// Il/Iu is this tile's half-open interior cell range along u.
	Il, Iu int
	// Iuf is the upper face index: Iu+1 on the last tile (it owns the
	// domain's final face), else Iu.
	Iuf int
	// Ilr/Iur widen Il/Iu by one cell on whichever end touches the true
	// domain edge, since reconstruction needs one extra neighbour past
	// the interior there; interior tile boundaries are never widened,
	// so neighbouring tiles' reconstruction writes never collide.
	Ilr, Iur int
	// Jl/Ju is the (un-split) v-axis interior range, identical on every
	// tile.
	Jl, Ju int

	View
}

// View holds non-owning Array handles aliasing a Grid's backing arrays,
// used by worker code so every kernel call reads "the tile's arrays"
// without indirecting through a *Grid on every access.
type View struct {
	Cons, Prim, ConsGen, Fluxdiv, Src *Array
	Ju, Jv                            *Array
	Lprim, Rprim, Lcons, Rcons        *Array
	Lw, Rw                            *Array
}

func newView(g *Grid) View {
	attach := func(src *Array) *Array {
		v := &Array{}
		v.Attach(src)
		return v
	}
	return View{
		Cons: attach(g.Cons), Prim: attach(g.Prim), ConsGen: attach(g.ConsGen),
		Fluxdiv: attach(g.Fluxdiv), Src: attach(g.Src),
		Ju: attach(g.Ju), Jv: attach(g.Jv),
		Lprim: attach(g.Lprim), Rprim: attach(g.Rprim),
		Lcons: attach(g.Lcons), Rcons: attach(g.Rcons),
		Lw: attach(g.Lw), Rw: attach(g.Rw),
	}
}

// BuildTiles partitions g's interior into nthread tiles per the
// stripe/il/iu/iuf/ilr/iur formulas: stripe = ceil(NU/T), tile t owns
// [G+t*stripe, min(G+(t+1)*stripe, G+NU)), with the last tile absorbing
// any remainder.
func BuildTiles(g *Grid, nthread int) []Tile {
	if nthread < 1 {
		panic("euler: nthread must be >= 1")
	}
	nu := g.NU
	gh := g.NGhost
	stripe := (nu + nthread - 1) / nthread

	tiles := make([]Tile, nthread)
	for t := 0; t < nthread; t++ {
		il := gh + t*stripe
		iu := gh + (t+1)*stripe
		if iu > gh+nu {
			iu = gh + nu
		}

		iuf := iu
		if t == nthread-1 {
			iuf = iu + 1
		}

		ilr := il
		if t == 0 {
			ilr = il - 1
		}
		iur := iu
		if t == nthread-1 {
			iur = iu + 1
		}

		tiles[t] = Tile{
			Index: t, NThread: nthread,
			Il: il, Iu: iu, Iuf: iuf,
			Ilr: ilr, Iur: iur,
			Jl: gh, Ju: gh + g.NV,
			View: newView(g),
		}
	}
	return tiles
}

// ReconBounds returns the (iLo,iHi,jLo,jHi) cell range Reconstruct
// should use for a pass along dir on this tile. Reconstruction along
// dir only ever touches neighbours along dir's own axis (the stencil
// stride is zero on the other axis), so only that axis needs widening,
// and it needs widening on every tile, not just the two touching the
// true domain edge: the v axis is never split across tiles, but a
// v-direction pass must still produce the boundary v-faces at j=Jl and
// j=Ju, which requires reading one cell past each end of [Jl,Ju). The u
// axis is split, so only the two tiles touching the true domain edge
// need that same one-cell widening (via Ilr/Iur); interior tile
// boundaries are never widened there since the neighbouring tile's own
// pass already covers that face. Whichever axis is not dir's own axis
// is passed through at its plain tile range since the stencil never
// reads across it.
func (t *Tile) ReconBounds(dir Axis) (iLo, iHi, jLo, jHi int) {
	switch dir {
	case AxisU:
		return t.Ilr, t.Iur, t.Jl, t.Ju
	default:
		return t.Il, t.Iu, t.Jl - 1, t.Ju + 1
	}
}

// FaceBounds returns the exact face range this tile owns for a
// Wavespeed/HLLC pass along dir: the decomposed axis runs [Il,Iuf) when
// dir is u so only the tile owning the domain's final face includes it;
// a v-direction pass instead needs the full non-decomposed face range
// [Jl,Ju+1) on every tile, since v is never split.
func (t *Tile) FaceBounds(dir Axis) (iLo, iHi, jLo, jHi int) {
	switch dir {
	case AxisU:
		return t.Il, t.Iuf, t.Jl, t.Ju
	default:
		return t.Il, t.Iu, t.Jl, t.Ju + 1
	}
}

// CellBounds returns this tile's plain interior cell range, used by the
// flux-divergence, stage-combine and limiting passes.
func (t *Tile) CellBounds() (iLo, iHi, jLo, jHi int) {
	return t.Il, t.Iu, t.Jl, t.Ju
}

// fluxArray returns the face-flux array HLLC should fill for a pass
// along dir.
func (t *Tile) fluxArray(dir Axis) *Array {
	if dir == AxisU {
		return t.View.Ju
	}
	return t.Jv
}
