package dash

import (
	"testing"
	"time"

	"github.com/vovakirdan/vector-dash/internal/config"
	"github.com/vovakirdan/vector-dash/internal/core"
)

var epoch = time.Unix(0, 0)

func testLane(t *testing.T, cfg config.DashConfig, id core.PlayerID) *Lane {
	t.Helper()
	return newLane(id, cfg, NewPatternGenerator(cfg, NewRand(1)), new(Ref))
}

func TestStepPlayerClampsToFloor(t *testing.T) {
	cfg := config.DefaultDashConfig()
	lane := testLane(t, cfg, core.Player1)
	diff := NewDifficulty(cfg.Difficulty)
	p := newPlayer(core.Player1, cfg.Player.FloorY)

	stepPlayer(&p, lane, epoch, cfg, diff, pointer{})

	if p.Y != cfg.Player.FloorY || p.VY != 0 {
		t.Errorf("resting player = (y %v, vy %v), expected (%v, 0)", p.Y, p.VY, cfg.Player.FloorY)
	}
	if p.Score != cfg.Physics.ScorePerTick {
		t.Errorf("score = %v, expected %v", p.Score, cfg.Physics.ScorePerTick)
	}
}

func TestStepPlayerStaysInBounds(t *testing.T) {
	cfg := config.DefaultDashConfig()
	lane := testLane(t, cfg, core.Player1)
	diff := NewDifficulty(cfg.Difficulty)
	p := newPlayer(core.Player1, cfg.Player.FloorY)

	flips := 0
	for i := 0; i < 600; i++ {
		if p.flip(cfg.Physics.LaunchVelocity) {
			flips++
		}
		stepPlayer(&p, lane, epoch, cfg, diff, pointer{})

		if p.Y < cfg.Player.FloorY || p.Y > cfg.CeilingY() {
			t.Fatalf("tick %d: y = %v outside [%v, %v]", i, p.Y, cfg.Player.FloorY, cfg.CeilingY())
		}
		if (p.Y == cfg.Player.FloorY || p.Y == cfg.CeilingY()) && p.VY != 0 {
			t.Fatalf("tick %d: resting at %v with vy %v", i, p.Y, p.VY)
		}
	}
	if flips < 2 {
		t.Errorf("expected repeated flips once grounded, got %d", flips)
	}
}

func TestFlipReachesCeiling(t *testing.T) {
	cfg := config.DefaultDashConfig()
	lane := testLane(t, cfg, core.Player1)
	diff := NewDifficulty(cfg.Difficulty)
	p := newPlayer(core.Player1, cfg.Player.FloorY)

	if !p.flip(cfg.Physics.LaunchVelocity) {
		t.Fatal("grounded player should flip")
	}
	if p.Gravity != GravityFlipped || p.VY != cfg.Physics.LaunchVelocity {
		t.Fatalf("after flip: gravity %v, vy %v", p.Gravity, p.VY)
	}

	stepPlayer(&p, lane, epoch, cfg, diff, pointer{})
	if p.flip(cfg.Physics.LaunchVelocity) {
		t.Error("airborne flip should be ignored")
	}
	if p.Gravity != GravityFlipped {
		t.Error("ignored flip changed gravity")
	}

	for i := 0; i < 100 && !p.Grounded(); i++ {
		stepPlayer(&p, lane, epoch, cfg, diff, pointer{})
	}
	if p.Y != cfg.CeilingY() {
		t.Errorf("y = %v, expected ceiling %v", p.Y, cfg.CeilingY())
	}
	if p.Gravity.Orientation() != Inverted {
		t.Error("flipped player should be drawn inverted")
	}
}

func TestBoost(t *testing.T) {
	cfg := config.DefaultDashConfig()

	tests := []struct {
		name      string
		coins     int
		boosting  bool
		dead      bool
		ok        bool
		wantCoins int
	}{
		{"enough coins", 5, false, false, true, 0},
		{"spare coins", 7, false, false, true, 2},
		{"one short", 4, false, false, false, 4},
		{"already boosting", 9, true, false, false, 9},
		{"dead", 9, false, true, false, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(core.Player1, cfg.Player.FloorY)
			p.Coins, p.Boosting, p.Dead = tc.coins, tc.boosting, tc.dead

			if got := p.boost(epoch, cfg.Boost); got != tc.ok {
				t.Fatalf("boost() = %v, expected %v", got, tc.ok)
			}
			if p.Coins != tc.wantCoins {
				t.Errorf("coins = %d, expected %d", p.Coins, tc.wantCoins)
			}
			if tc.ok && !p.BoostUntil.Equal(epoch.Add(cfg.Boost.Duration())) {
				t.Errorf("BoostUntil = %v", p.BoostUntil)
			}
		})
	}
}

func TestBoostExpires(t *testing.T) {
	cfg := config.DefaultDashConfig()
	lane := testLane(t, cfg, core.Player1)
	diff := NewDifficulty(cfg.Difficulty)
	p := newPlayer(core.Player1, cfg.Player.FloorY)
	p.Coins = cfg.Boost.Cost
	p.boost(epoch, cfg.Boost)

	if rep := stepPlayer(&p, lane, epoch.Add(cfg.Boost.Duration()), cfg, diff, pointer{}); rep.boostEnded {
		t.Error("boost should still run at exactly its end time")
	}
	rep := stepPlayer(&p, lane, epoch.Add(cfg.Boost.Duration()+time.Millisecond), cfg, diff, pointer{})
	if !rep.boostEnded || p.Boosting {
		t.Error("boost should end once its time has passed")
	}
}

func TestDeadPlayerIsFrozen(t *testing.T) {
	cfg := config.DefaultDashConfig()
	lane := testLane(t, cfg, core.Player1)
	diff := NewDifficulty(cfg.Difficulty)
	p := newPlayer(core.Player1, cfg.Player.FloorY)
	p.flip(cfg.Physics.LaunchVelocity)
	p.Dead = true
	before := p

	rep := stepPlayer(&p, lane, epoch, cfg, diff, pointer{})
	if p != before {
		t.Errorf("dead player changed: %+v -> %+v", before, p)
	}
	if rep.died || rep.escalated || len(rep.collected) > 0 {
		t.Errorf("dead player reported activity: %+v", rep)
	}
}

func TestDeathTickStillCollectsCoins(t *testing.T) {
	cfg := config.DefaultDashConfig()

	tests := []struct {
		name      string
		coinX     float64
		usePtr    bool
		coins     int
		laneCoins int
	}{
		{name: "touched coin", coinX: cfg.Player.X, coins: 1, laneCoins: 0},
		{name: "pointer coin", coinX: 500, usePtr: true, coins: 0, laneCoins: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lane := testLane(t, cfg, core.Player1)
			diff := NewDifficulty(cfg.Difficulty)
			p := newPlayer(core.Player1, cfg.Player.FloorY)

			lane.spawn(Emission{
				Obstacles: []ObstacleSpec{{Anchor: AnchorBottom, Width: 40, Height: 50}},
				Coin:      &CoinSpec{Y: cfg.Player.FloorY, Size: cfg.Coins.Size},
			}, 0)
			lane.obstacles[0].X = cfg.Player.X
			lane.coins[0].X = tc.coinX

			ptr := pointer{}
			if tc.usePtr {
				ptr = pointer{lane: lane.ID, pos: core.Vec{X: tc.coinX + 10, Y: cfg.Player.FloorY + 10}, active: true}
			}
			rep := stepPlayer(&p, lane, epoch, cfg, diff, ptr)
			if !rep.died || !p.Dead {
				t.Fatal("overlapping obstacle should kill")
			}
			if p.Coins != tc.coins || len(lane.Coins()) != tc.laneCoins {
				t.Errorf("coins %d, lane %d; expected %d, %d", p.Coins, len(lane.Coins()), tc.coins, tc.laneCoins)
			}
		})
	}
}

func TestDeathEndsBoost(t *testing.T) {
	cfg := config.DefaultDashConfig()
	lane := testLane(t, cfg, core.Player1)
	diff := NewDifficulty(cfg.Difficulty)
	p := newPlayer(core.Player1, cfg.Player.FloorY)
	p.Coins = cfg.Boost.Cost
	if !p.boost(epoch, cfg.Boost) {
		t.Fatal("boost refused")
	}

	lane.spawn(Emission{Obstacles: []ObstacleSpec{{Anchor: AnchorBottom, Width: 40, Height: 50}}}, 0)
	lane.obstacles[0].X = cfg.Player.X

	rep := stepPlayer(&p, lane, epoch, cfg, diff, pointer{})
	if !p.Dead || p.Boosting || !rep.boostEnded {
		t.Errorf("dead=%v boosting=%v boostEnded=%v", p.Dead, p.Boosting, rep.boostEnded)
	}
	if got := diff.Effective(p.Boosting, cfg.Boost.Multiplier); got != diff.Speed() {
		t.Errorf("dead lane speed = %v, expected unboosted %v", got, diff.Speed())
	}
}

func TestTouchingObstacleIsSafe(t *testing.T) {
	cfg := config.DefaultDashConfig()
	lane := testLane(t, cfg, core.Player1)
	diff := NewDifficulty(cfg.Difficulty)
	p := newPlayer(core.Player1, cfg.Player.FloorY)

	lane.spawn(Emission{Obstacles: []ObstacleSpec{{Anchor: AnchorBottom, Width: 40, Height: 100}}}, 0)
	lane.obstacles[0].X = cfg.Player.X + cfg.Player.Width

	if stepPlayer(&p, lane, epoch, cfg, diff, pointer{}); p.Dead {
		t.Error("edge contact should not count as a collision")
	}
}

func TestCoinPickup(t *testing.T) {
	cfg := config.DefaultDashConfig()

	tests := []struct {
		name  string
		x, y  float64
		ptr   func(l *Lane) pointer
		taken bool
	}{
		{
			name:  "overlapping",
			x:     cfg.Player.X + 5,
			y:     cfg.Player.FloorY + 5,
			taken: true,
		},
		{
			name:  "within padding",
			x:     cfg.Player.X + cfg.Player.Width + cfg.Coins.HitboxPadding - 1,
			y:     cfg.Player.FloorY,
			taken: true,
		},
		{
			name: "out of reach",
			x:    500,
			y:    200,
		},
		{
			name: "pointer",
			x:    500,
			y:    200,
			ptr: func(l *Lane) pointer {
				return pointer{lane: l.ID, pos: core.Vec{X: 510, Y: 210}, active: true}
			},
			taken: true,
		},
		{
			name: "pointer in other lane",
			x:    500,
			y:    200,
			ptr: func(l *Lane) pointer {
				return pointer{lane: core.Player2, pos: core.Vec{X: 510, Y: 210}, active: true}
			},
		},
		{
			name: "pointer just inside edge",
			x:    500,
			y:    200,
			ptr: func(l *Lane) pointer {
				return pointer{lane: l.ID, pos: core.Vec{X: 520.25, Y: 210}, active: true}
			},
			taken: true,
		},
		{
			name: "pointer touching edge",
			x:    500,
			y:    200,
			ptr: func(l *Lane) pointer {
				return pointer{lane: l.ID, pos: core.Vec{X: 520.5, Y: 210}, active: true}
			},
		},
		{
			name: "pointer beside coin",
			x:    500,
			y:    200,
			ptr: func(l *Lane) pointer {
				return pointer{lane: l.ID, pos: core.Vec{X: 540, Y: 210}, active: true}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lane := testLane(t, cfg, core.Player1)
			diff := NewDifficulty(cfg.Difficulty)
			p := newPlayer(core.Player1, cfg.Player.FloorY)

			lane.spawn(Emission{Coin: &CoinSpec{Y: tc.y, Size: cfg.Coins.Size}}, 0)
			lane.coins[0].X = tc.x

			ptr := pointer{}
			if tc.ptr != nil {
				ptr = tc.ptr(lane)
			}
			rep := stepPlayer(&p, lane, epoch, cfg, diff, ptr)

			if got := len(rep.collected) == 1; got != tc.taken {
				t.Fatalf("collected = %v, expected %v", got, tc.taken)
			}
			if tc.taken && (p.Coins != 1 || len(lane.Coins()) != 0) {
				t.Errorf("coins = %d, lane coins = %d", p.Coins, len(lane.Coins()))
			}
		})
	}
}

func TestLaneScrollDropsOffscreen(t *testing.T) {
	cfg := config.DefaultDashConfig()
	lane := testLane(t, cfg, core.Player1)

	placed := lane.spawn(Emission{
		Obstacles: []ObstacleSpec{{Width: 40, Height: 50}},
		Coin:      &CoinSpec{Y: 100, Size: 20},
	}, cfg.Coins.SpawnLead)
	if len(placed) != 2 {
		t.Fatalf("spawn placed %d refs, expected 2", len(placed))
	}
	if lane.obstacles[0].X != cfg.Lane.Width || lane.coins[0].X != cfg.Lane.Width+cfg.Coins.SpawnLead {
		t.Fatalf("spawn positions: obstacle %v, coin %v", lane.obstacles[0].X, lane.coins[0].X)
	}

	// Obstacle is fully off at x < -40
	removed := lane.scroll(cfg.Lane.Width + 40)
	if len(removed) != 0 {
		t.Errorf("obstacle at its own width left of 0 should remain, removed %v", removed)
	}
	removed = lane.scroll(1)
	if len(removed) != 1 || removed[0] != placed[0] {
		t.Errorf("removed = %v, expected obstacle %v", removed, placed[0])
	}
	if len(lane.Coins()) != 1 {
		t.Error("coin still on screen should remain")
	}
}
