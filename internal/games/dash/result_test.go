package dash

import (
	"testing"

	"github.com/vovakirdan/vector-dash/internal/core"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 PlayerResult
		want   Outcome
	}{
		{"score wins", PlayerResult{Score: 120, Coins: 0}, PlayerResult{Score: 80, Coins: 9}, OutcomeP1},
		{"p2 score", PlayerResult{Score: 10}, PlayerResult{Score: 11}, OutcomeP2},
		{"coins break ties", PlayerResult{Score: 50, Coins: 2}, PlayerResult{Score: 50, Coins: 3}, OutcomeP2},
		{"tie", PlayerResult{Score: 50, Coins: 3}, PlayerResult{Score: 50, Coins: 3}, OutcomeTie},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := decide(tc.p1, tc.p2); got != tc.want {
				t.Errorf("decide() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestResultMessage(t *testing.T) {
	p := func(id core.PlayerID, score, coins int) PlayerResult {
		return PlayerResult{ID: id, Score: score, Coins: coins}
	}

	tests := []struct {
		name string
		res  Result
		want string
	}{
		{
			name: "single",
			res:  Result{Mode: ModeSingle, Outcome: OutcomeSingle, Players: []PlayerResult{p(core.Player1, 42, 3)}},
			want: "Final Score: 42 | Coins: 3",
		},
		{
			name: "single high score",
			res:  Result{Mode: ModeSingle, Outcome: OutcomeSingle, NewHighScore: true, Players: []PlayerResult{p(core.Player1, 420, 0)}},
			want: "Final Score: 420 | Coins: 0 (NEW HIGH SCORE!)",
		},
		{
			name: "p1 wins",
			res:  Result{Mode: ModeTwo, Outcome: OutcomeP1, Players: []PlayerResult{p(core.Player1, 90, 1), p(core.Player2, 60, 4)}},
			want: "P1 WINS! P1: 90 pts/1 coins | P2: 60 pts/4 coins",
		},
		{
			name: "tie",
			res:  Result{Mode: ModeTwo, Outcome: OutcomeTie, Players: []PlayerResult{p(core.Player1, 5, 0), p(core.Player2, 5, 0)}},
			want: "Tie Game! (P1: 5 pts/0 coins | P2: 5 pts/0 coins)",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.res.Message(); got != tc.want {
				t.Errorf("Message() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestOutcomeWinner(t *testing.T) {
	if id, ok := OutcomeP2.Winner(); !ok || id != core.Player2 {
		t.Errorf("OutcomeP2.Winner() = (%v, %v)", id, ok)
	}
	if _, ok := OutcomeTie.Winner(); ok {
		t.Error("a tie has no winner")
	}
	if _, ok := OutcomeSingle.Winner(); ok {
		t.Error("solo rounds have no winner")
	}
}
