package euler

import "testing"

func testGridForTiling(nu, nv, nscalar int) *Grid {
	return NewGrid(GridProperty{
		NU: nu, NV: nv, NGhost: 4, NScalar: nscalar,
		UMin: 0, UMax: 1, VMin: 0, VMax: 1,
		Gamma: 1.4, RhoFloor: 1e-8, PressFloor: 1e-8,
		Order: OrderPPM,
	})
}

func TestBuildTilesPartitionCoversInteriorExactlyOnce(t *testing.T) {
	g := testGridForTiling(17, 6, 0)
	tiles := BuildTiles(g, 4)

	covered := make(map[int]bool)
	for _, tile := range tiles {
		for i := tile.Il; i < tile.Iu; i++ {
			if covered[i] {
				t.Fatalf("cell u=%d covered by more than one tile", i)
			}
			covered[i] = true
		}
	}
	gh := g.NGhost
	for i := gh; i < gh+g.NU; i++ {
		if !covered[i] {
			t.Errorf("cell u=%d not covered by any tile", i)
		}
	}
}

func TestTileEndpointsWidenOnlyAtTrueDomainEdges(t *testing.T) {
	g := testGridForTiling(16, 6, 0)
	tiles := BuildTiles(g, 4)

	first, last := &tiles[0], &tiles[len(tiles)-1]
	if first.Ilr != first.Il-1 {
		t.Errorf("first tile Ilr = %d, want Il-1 = %d", first.Ilr, first.Il-1)
	}
	if last.Iur != last.Iu+1 {
		t.Errorf("last tile Iur = %d, want Iu+1 = %d", last.Iur, last.Iu+1)
	}
	if last.Iuf != last.Iu+1 {
		t.Errorf("last tile Iuf = %d, want Iu+1 = %d", last.Iuf, last.Iu+1)
	}

	for idx := 1; idx < len(tiles)-1; idx++ {
		mid := &tiles[idx]
		if mid.Ilr != mid.Il {
			t.Errorf("interior tile %d Ilr = %d, want unwidened Il = %d", idx, mid.Ilr, mid.Il)
		}
		if mid.Iur != mid.Iu {
			t.Errorf("interior tile %d Iur = %d, want unwidened Iu = %d", idx, mid.Iur, mid.Iu)
		}
		if mid.Iuf != mid.Iu {
			t.Errorf("interior tile %d Iuf = %d, want unwidened Iu = %d", idx, mid.Iuf, mid.Iu)
		}
	}
}

func TestReconBoundsNeverPadsPerpendicularAxis(t *testing.T) {
	g := testGridForTiling(16, 6, 0)
	tiles := BuildTiles(g, 4)
	tile := &tiles[1]

	_, _, jLo, jHi := tile.ReconBounds(AxisU)
	if jLo != tile.Jl || jHi != tile.Ju {
		t.Errorf("AxisU ReconBounds padded the v axis: got [%d,%d), want [%d,%d)", jLo, jHi, tile.Jl, tile.Ju)
	}

	iLo, iHi, _, _ := tile.ReconBounds(AxisV)
	if iLo != tile.Il || iHi != tile.Iu {
		t.Errorf("AxisV ReconBounds padded the u axis: got [%d,%d), want [%d,%d)", iLo, iHi, tile.Il, tile.Iu)
	}
}

func TestReconBoundsWidensAlongAxisOnEveryTile(t *testing.T) {
	g := testGridForTiling(16, 6, 0)
	tiles := BuildTiles(g, 4)

	for idx := range tiles {
		tile := &tiles[idx]

		_, _, jLo, jHi := tile.ReconBounds(AxisV)
		if jLo != tile.Jl-1 || jHi != tile.Ju+1 {
			t.Errorf("tile %d: AxisV ReconBounds = [%d,%d), want [%d,%d)", idx, jLo, jHi, tile.Jl-1, tile.Ju+1)
		}
	}
}

func TestFaceBoundsVAxisAlwaysSpansFullInteriorPlusOne(t *testing.T) {
	g := testGridForTiling(16, 6, 0)
	tiles := BuildTiles(g, 4)

	for idx := range tiles {
		tile := &tiles[idx]
		_, _, jLo, jHi := tile.FaceBounds(AxisV)
		if jLo != tile.Jl || jHi != tile.Ju+1 {
			t.Errorf("tile %d: AxisV FaceBounds = [%d,%d), want [%d,%d)", idx, jLo, jHi, tile.Jl, tile.Ju+1)
		}
	}
}
