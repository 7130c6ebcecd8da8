package lbm

// Mask is the obstacle field: one flag per cell in the same row-major order
// as Grid. It is populated at load time and read-only for the rest of the
// run, so every stage shares it without locking.
type Mask struct {
	NX, NY  int
	blocked []bool
}

// NewMask allocates an all-open mask for an nx by ny domain.
func NewMask(nx, ny int) *Mask {
	return &Mask{NX: nx, NY: ny, blocked: make([]bool, nx*ny)}
}

// Block marks the cell at (x, y) as obstructed. Only the loaders and
// generators call this; once a run starts the mask does not change.
func (m *Mask) Block(x, y int) {
	m.blocked[x+y*m.NX] = true
}

// Blocked reports whether the cell at (x, y) is obstructed.
func (m *Mask) Blocked(x, y int) bool {
	return m.blocked[x+y*m.NX]
}

// BlockedAt reports whether the cell at linear index i is obstructed.
func (m *Mask) BlockedAt(i int) bool { return m.blocked[i] }

// OpenCells counts the unobstructed cells.
func (m *Mask) OpenCells() int {
	n := 0
	for _, b := range m.blocked {
		if !b {
			n++
		}
	}
	return n
}
