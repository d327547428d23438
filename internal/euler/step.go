package euler

// StepState is the leader-owned mutable bookkeeping for one full time
// step: simulation time, the step's dt and the per-stage dt/time the
// SSPRK combine reads. It carries what would otherwise be process-wide
// mutable globals (time, dt, step_time, step_dt) as a value the
// orchestrator owns and threads explicitly through the leader's
// bookkeeping phases.
type StepState struct {
	Time     float64
	Dt       float64
	StepDt   float64
	StepTime float64
}
