package registry

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

type nopGame struct{}

func (nopGame) ID() string { return "nop" }
func (nopGame) Title() string { return "Nop" }
func (nopGame) Reset(core.RuntimeConfig) {}
func (nopGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (nopGame) Render(*core.Screen) {}
func (nopGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-nop", func() Game { return nopGame{} })

	if !Exists("test-nop") {
		t.Fatal("registered game does not exist")
	}
	g, err := Create("test-nop")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "nop" {
		t.Errorf("ID = %q", g.ID())
	}
	if !slices.Contains(IDs(), "test-nop") {
		t.Errorf("IDs() = %v, missing test-nop", IDs())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("unknown game reported as existing")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return nopGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-dup", func() Game { return nopGame{} })
}
