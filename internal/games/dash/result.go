package dash

import (
	"fmt"

	"github.com/vovakirdan/vector-dash/internal/core"
)

// Outcome is how a round was decided.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSingle
	OutcomeP1
	OutcomeP2
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSingle:
		return "single"
	case OutcomeP1:
		return "P1"
	case OutcomeP2:
		return "P2"
	case OutcomeTie:
		return "tie"
	default:
		return "none"
	}
}

// Winner returns the winning player, or false for ties and solo rounds.
func (o Outcome) Winner() (core.PlayerID, bool) {
	switch o {
	case OutcomeP1:
		return core.Player1, true
	case OutcomeP2:
		return core.Player2, true
	default:
		return 0, false
	}
}

// PlayerResult is one player's final tally.
type PlayerResult struct {
	ID    core.PlayerID
	Score int // floored
	Coins int
}

// Result is the round-end payload.
type Result struct {
	Mode         Mode
	Players      []PlayerResult
	Outcome      Outcome
	HighScore    int
	NewHighScore bool
	SaveErr      error // set if persisting a new high score failed
}

// Player returns the tally for id.
func (r Result) Player(id core.PlayerID) (PlayerResult, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerResult{}, false
}

// decide ranks by floored score, then coins.
func decide(p1, p2 PlayerResult) Outcome {
	switch {
	case p1.Score > p2.Score:
		return OutcomeP1
	case p2.Score > p1.Score:
		return OutcomeP2
	case p1.Coins > p2.Coins:
		return OutcomeP1
	case p2.Coins > p1.Coins:
		return OutcomeP2
	default:
		return OutcomeTie
	}
}

// Message formats the final result line.
func (r Result) Message() string {
	if r.Mode == ModeSingle && len(r.Players) > 0 {
		p := r.Players[0]
		msg := fmt.Sprintf("Final Score: %d | Coins: %d", p.Score, p.Coins)
		if r.NewHighScore {
			msg += " (NEW HIGH SCORE!)"
		}
		return msg
	}

	if len(r.Players) < 2 {
		return "GAME OVER"
	}
	p1, p2 := r.Players[0], r.Players[1]
	tally := fmt.Sprintf("P1: %d pts/%d coins | P2: %d pts/%d coins", p1.Score, p1.Coins, p2.Score, p2.Coins)
	if id, ok := r.Outcome.Winner(); ok {
		return fmt.Sprintf("%s WINS! %s", id, tally)
	}
	return fmt.Sprintf("Tie Game! (%s)", tally)
}
