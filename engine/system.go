package engine

// System is one sub-phase of the simulation tick
// World.Update runs systems in ascending Priority order
type System interface {
	Priority() int
	Update()
}
