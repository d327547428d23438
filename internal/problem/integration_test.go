package problem

import (
	"context"
	"testing"

	"github.com/gonum/floats"
	"github.com/stretchr/testify/require"

	"github.com/bryanceoyang/euler2d/internal/euler"
)

// runToTime drives a full Simulation under its real worker pool until
// the leader's bookkeeping reports a step time at or beyond target,
// then cancels every worker via ctx. This exercises the same pipeline
// cmd/euler2d wires up, rather than hand-advancing state.
func runToTime(t *testing.T, prob euler.Problem, target float64, nthread int) *euler.Grid {
	t.Helper()
	g := euler.NewGrid(prob.Property())
	prob.InitCond(g)
	prob.Boundary(g, 0)
	g.Physics.ConsLim(g.Cons, g.Prim, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sim := &euler.Simulation{
		Grid:       g,
		Integrator: euler.NewIntegrator(euler.SchemeSSPRK3, 0.4),
		Problem:    prob,
		NThread:    nthread,
		MaxEpoch:   1_000_000,
		OutDt:      1e9,
	}
	sim.OnEpoch = func(epoch int, state euler.StepState) {
		if state.Time >= target {
			cancel()
		}
	}
	sim.Run(ctx)
	return g
}

// TestSodShockTubeMatchesReferenceDensityAndContact is scenario 1: the
// density at x=0.7 and the contact discontinuity location at t=0.2 must
// fall within the tolerances literature gives for this Riemann problem.
func TestSodShockTubeMatchesReferenceDensityAndContact(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-running shock tube integration in -short mode")
	}

	sod, err := newSod(map[string]interface{}{"nu": 256, "nv": 4})
	require.NoError(t, err)

	g := runToTime(t, sod, 0.2, 2)

	gh := g.NGhost
	bestI, bestDist := gh, 1.0
	for i := gh; i < gh+g.NU; i++ {
		d := g.Ucc.At1(i) - 0.7
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist, bestI = d, i
		}
	}
	rhoAt07 := g.Prim.At3(euler.IRho, bestI, gh)
	require.InDeltaf(t, 0.426, rhoAt07, 0.01, "density at x=0.7: got %v", rhoAt07)

	// The contact sits where density jumps between the post-shock and
	// post-rarefaction plateaus; approximate its location as the
	// steepest downward density gradient in x > 0.5 (the rarefaction
	// fan already occupies x < 0.5 at this time).
	contactI, steepest := gh, 0.0
	for i := gh + g.NU/2; i < gh+g.NU-1; i++ {
		drop := g.Prim.At3(euler.IRho, i, gh) - g.Prim.At3(euler.IRho, i+1, gh)
		if drop > steepest {
			steepest, contactI = drop, i
		}
	}
	contactX := g.Ucc.At1(contactI)
	require.InDeltaf(t, 0.685, contactX, 0.01, "contact location: got %v", contactX)
}

// TestRiemann4PreservesDiagonalSymmetry is scenario 4. The four-quadrant
// configuration-3 initial data and the square domain are symmetric under
// reflection across the (x,y) diagonal — swapping x and y swaps quadrant
// 2 with quadrant 4 and swaps their u/v velocity components, leaving
// density, pressure and the two passive axes' roles mirrored. No golden
// density field ships with this repository, so this test checks that
// invariant directly against the solver's own output rather than a
// stored reference array, which the HLLC/PPM pipeline preserves exactly
// only if its axis-0 and axis-1 treatment are free of a directional bug.
func TestRiemann4PreservesDiagonalSymmetry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-running 2D Riemann integration in -short mode")
	}

	r, err := newRiemann4(map[string]interface{}{"n": 128})
	require.NoError(t, err)

	g := runToTime(t, r, 0.3, 4)

	gh, n := g.NGhost, g.NU
	rho := make([]float64, 0, n*n)
	rhoT := make([]float64, 0, n*n)
	for i := gh; i < gh+n; i++ {
		for j := gh; j < gh+n; j++ {
			rho = append(rho, g.Prim.At3(euler.IRho, i, j))
			rhoT = append(rhoT, g.Prim.At3(euler.IRho, j, i))
		}
	}
	diff := make([]float64, len(rho))
	copy(diff, rho)
	floats.Sub(diff, rhoT)
	l2 := floats.Norm(diff, 2) / floats.Norm(rho, 2)
	if l2 > 0.05 {
		t.Fatalf("density field broke diagonal symmetry: relative L2 deviation %v", l2)
	}
}

// TestGaussianBoxConservesOverFullRun extends the single-boundary-fill
// check in problem_test.go to scenario 5's literal claim: mass and
// energy stay conserved to 1e-10 relative across an actual multi-step
// integration, not just one boundary pass.
func TestGaussianBoxConservesOverFullRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-running box integration in -short mode")
	}

	b, err := newGaussianBox(map[string]interface{}{"n": 64})
	require.NoError(t, err)

	g0 := euler.NewGrid(b.Property())
	b.InitCond(g0)
	b.Boundary(g0, 0)
	g0.Physics.ConsLim(g0.Cons, g0.Prim, false)
	massBefore := TotalMass(g0)
	energyBefore := TotalEnergy(g0)

	g := runToTime(t, b, 0.05, 2)
	massAfter := TotalMass(g)
	energyAfter := TotalEnergy(g)

	require.InDeltaf(t, 0.0, (massAfter-massBefore)/massBefore, 1e-10, "relative mass drift")
	require.InDeltaf(t, 0.0, (energyAfter-energyBefore)/energyBefore, 1e-10, "relative energy drift")
}
