package components

// Enemy walks the route one cell per tick
// Dead enemies stay in the arena as inert entries until the wave is reset
type Enemy struct {
	PathIndex int // Index into the route, always < route length
	HP        int
	Alive     bool
}

// NewEnemy returns an enemy standing on the spawn cell
func NewEnemy(hp int) Enemy {
	return Enemy{PathIndex: 0, HP: hp, Alive: true}
}

// Hit applies one point of damage and reports whether it was lethal
func (e *Enemy) Hit() (killed bool) {
	e.HP--
	if e.HP <= 0 {
		e.Alive = false
		return true
	}
	return false
}
