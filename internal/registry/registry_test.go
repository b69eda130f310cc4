package registry

import (
	"testing"

	"github.com/vovakirdan/vector-dash/internal/core"
)

type fakeGame struct {
	id      string
	players int
}

func (g *fakeGame) ID() string                                { return g.id }
func (g *fakeGame) Title() string                             { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig)                  {}
func (g *fakeGame) Step(core.MultiInputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                       {}
func (g *fakeGame) State() core.GameState                     { return core.GameState{} }

type fakeVersus struct{ fakeGame }

func (g *fakeVersus) Players() int { return g.players }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_solo", func() Game { return &fakeGame{id: "test_solo"} })
	Register("test_duo", func() Game { return &fakeVersus{fakeGame{id: "test_duo", players: 2}} })

	tests := []struct {
		id      string
		players int
	}{
		{"test_solo", 1},
		{"test_duo", 2},
	}
	for _, tc := range tests {
		info, ok := Lookup(tc.id)
		if !ok {
			t.Fatalf("Lookup(%q) missing", tc.id)
		}
		if info.Players != tc.players || info.Title != "Fake "+tc.id {
			t.Errorf("Lookup(%q) = %+v", tc.id, info)
		}

		g, err := Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q): %v", tc.id, err)
		}
		if g.ID() != tc.id {
			t.Errorf("Create(%q) built %q", tc.id, g.ID())
		}
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no_such_game") {
		t.Error("Exists should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })
}
