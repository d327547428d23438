package euler

// Quantity indices into the Q-length leading axis of cons/prim and
// face-state arrays. Conserved: (rho, rho*v_u, rho*v_v, E, rho*s_1..NS).
// Primitive: (rho, v_u, v_v, p, s_1..NS).
const (
	IRho = 0
	IMU  = 1 // momentum / velocity along axis 0 ("u")
	IMV  = 2 // momentum / velocity along axis 1 ("v")
	IEn  = 3 // total energy / pressure
)

// NumQuant returns Q = 4 + NS for a solver with nscalar passive scalars.
func NumQuant(nscalar int) int { return 4 + nscalar }

// Axis identifies a grid direction.
type Axis int

const (
	AxisU Axis = 0
	AxisV Axis = 1
)

// stride returns the (di, dj) unit offset for an axis.
func (ax Axis) stride() (di, dj int) {
	if ax == AxisU {
		return 1, 0
	}
	return 0, 1
}

// velocityIndex returns the quantity index of the velocity/momentum
// component aligned with ax.
func (ax Axis) velocityIndex() int {
	if ax == AxisU {
		return IMU
	}
	return IMV
}
