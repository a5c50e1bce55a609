package racer

import "github.com/vovakirdan/tui-racer/internal/core"

// Command is a discrete player or platform request.
type Command int

const (
	CmdNone Command = iota
	CmdSteerLeft
	CmdSteerRight
	CmdPauseToggle
	CmdAccelerateStart
	CmdAccelerateStop
	CmdRestart
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdSteerLeft:
		return "SteerLeft"
	case CmdSteerRight:
		return "SteerRight"
	case CmdPauseToggle:
		return "PauseToggle"
	case CmdAccelerateStart:
		return "AccelerateStart"
	case CmdAccelerateStop:
		return "AccelerateStop"
	case CmdRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Enqueue queues a command for the next tick.
func (w *World) Enqueue(cmd Command) {
	w.queue = append(w.queue, cmd)
}

// drainCommands applies queued commands in FIFO order.
func (w *World) drainCommands() {
	pending := w.queue
	w.queue = nil
	for _, cmd := range pending {
		w.apply(cmd)
	}
}

func (w *World) apply(cmd Command) {
	switch cmd {
	case CmdSteerLeft:
		if w.phase == PhasePlaying {
			w.steer(-1)
		}
	case CmdSteerRight:
		if w.phase == PhasePlaying {
			w.steer(1)
		}
	case CmdPauseToggle:
		w.phase = w.phase.TogglePause()
	case CmdAccelerateStart:
		if w.phase == PhasePlaying {
			w.accelerating = true
			w.boost = w.cfg.Scroll.AccelerationBoost
		}
	case CmdAccelerateStop:
		w.accelerating = false
		w.boost = 0
	case CmdRestart:
		if w.phase == PhaseGameOver {
			w.Reset()
		}
	default:
		w.logger.Debug("ignoring command", "command", cmd)
	}
}

// steer moves the car one lane-change step in dir (-1 left, +1 right).
func (w *World) steer(dir float64) {
	step := w.cfg.Car.LaneChangeSpeed
	if w.accelerating {
		step *= w.cfg.Car.BoostSteerFactor
	}
	w.carX = core.ClampF(w.carX+dir*step, w.carMinX(), w.carMaxX())
}

func (w *World) carMinX() float64 {
	return w.cfg.Road.MinX + w.cfg.Car.Width/2 + w.cfg.Car.EdgeMargin
}

func (w *World) carMaxX() float64 {
	return w.cfg.Road.MaxX() - w.cfg.Car.Width/2 - w.cfg.Car.EdgeMargin
}
