package racer

// Phase is the top-level game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TogglePause flips between playing and paused. Game over is terminal
// until a restart, so it is returned unchanged.
func (p Phase) TogglePause() Phase {
	switch p {
	case PhasePlaying:
		return PhasePaused
	case PhasePaused:
		return PhasePlaying
	default:
		return p
	}
}

// Message is a transient HUD notice that expires after a number of ticks.
type Message struct {
	Text  string
	Ticks int
}

// countdown decrements the remaining ticks and clears the text on expiry.
func (m *Message) countdown() {
	if m.Ticks <= 0 {
		return
	}
	m.Ticks--
	if m.Ticks == 0 {
		m.Text = ""
	}
}
