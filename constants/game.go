package constants

// Grid geometry
// Path topologies are laid out against these dimensions, so they are not configurable
const (
	GridWidth  = 80
	GridHeight = 25
)

// HUD rows are drawn below the grid
const (
	HUDRow    = GridHeight
	PromptRow = GridHeight + 1
	BannerRow = GridHeight + 3
)
