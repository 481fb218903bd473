package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) error       { return nil }
func (g stubGame) Resize(int, int)                      {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("unexpected id %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" && info.Title == "Stub zz-stub" {
			found = true
		}
	}
	if !found {
		t.Error("List should include the registered game with its title")
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz-dup", func() Game { return stubGame{id: "zz-dup"} })
}
