package systems

import "github.com/lixenwraith/vi-defense/engine"

// Register adds the full simulation tick to world
func Register(world *engine.World) {
	world.AddSystem(NewSpawnSystem(world))
	world.AddSystem(NewEnemyMoveSystem(world))
	world.AddSystem(NewTowerFireSystem(world))
	world.AddSystem(NewProjectileMoveSystem(world))
	world.AddSystem(NewCollisionSystem(world))
	world.AddSystem(NewCullSystem(world))
}
