package session

// Phase is the coarse session state exposed to input and rendering
type Phase int

const (
	PhaseSelecting Phase = iota
	PhaseWaveIdle
	PhaseWaveActive
	PhaseWaveComplete
	PhaseWon
	PhaseLost
	PhaseQuit
)

// phaseStates maps FSM state names to phases
var phaseStates = map[string]Phase{
	"SelectingDifficulty": PhaseSelecting,
	"WaveIdle":            PhaseWaveIdle,
	"WaveActive":          PhaseWaveActive,
	"WaveComplete":        PhaseWaveComplete,
	"SessionWon":          PhaseWon,
	"SessionLost":         PhaseLost,
	"SessionQuit":         PhaseQuit,
}

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "SelectingDifficulty"
	case PhaseWaveIdle:
		return "WaveIdle"
	case PhaseWaveActive:
		return "WaveActive"
	case PhaseWaveComplete:
		return "WaveComplete"
	case PhaseWon:
		return "SessionWon"
	case PhaseLost:
		return "SessionLost"
	case PhaseQuit:
		return "SessionQuit"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the session has ended
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseQuit
}

// AcceptsPlacement reports whether place/rotate commands are handled
func (p Phase) AcceptsPlacement() bool {
	return p == PhaseWaveIdle || p == PhaseWaveActive
}
