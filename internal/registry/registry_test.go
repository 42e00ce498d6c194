package registry

import (
	"testing"

	"github.com/vovakirdan/fruit-breaker/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Description() string { return "a stub" }
func (s *stubGame) Reset(core.RuntimeConfig) { s.state = core.GameState{Lives: 3} }
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: s.state} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return s.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID = %q, expected stub_a", g.ID())
	}

	info, ok := Info("stub_b")
	if !ok || info.Title != "Stub stub_b" || info.Description != "a stub" {
		t.Errorf("Info = %+v, %v", info, ok)
	}

	list := List()
	var ids []string
	for _, gi := range list {
		ids = append(ids, gi.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
