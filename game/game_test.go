package game

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

// newTestGame 创建游戏并把食物挪到远离玩家的角落，避免随机食物干扰
func newTestGame(t *testing.T, mutate func(*Options)) *Game {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	g, err := NewGame(opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	for i := 0; i < g.NumFood(); i++ {
		if err := g.PlaceNthFood(i, Coordinate{X: g.MinX() + 200, Y: g.MinY() + 200}); err != nil {
			t.Fatalf("PlaceNthFood(%d): %v", i, err)
		}
	}
	return g
}

func mustPlayer(t *testing.T, g *Game, i int) Player {
	t.Helper()
	p, err := g.Player(i)
	if err != nil {
		t.Fatalf("Player(%d): %v", i, err)
	}
	return p
}

func TestDefaultGame(t *testing.T) {
	g, err := NewGame(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if g.Ticks() != 0 {
		t.Fatalf("ticks = %d, want 0", g.Ticks())
	}
	if g.NumPlayers() != 3 || len(g.Players()) != 3 {
		t.Fatalf("players = %d, want 3", g.NumPlayers())
	}
	if len(g.Food()) == 0 || !g.HasFood() {
		t.Fatalf("default game has no food")
	}
	if len(g.Enemies()) == 0 {
		t.Fatalf("default game has no enemies")
	}
	if len(g.Shelters()) != 42 {
		t.Fatalf("shelters = %d, want 42", len(g.Shelters()))
	}
	if g.NumProjectiles() != 0 {
		t.Fatalf("projectiles at start = %d", g.NumProjectiles())
	}
	if g.HasCollision() {
		t.Fatalf("players collide at start")
	}
	if g.Seed() != 42 {
		t.Fatalf("seed = %d", g.Seed())
	}
}

func TestPlayersAreLaidOut(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.NumPlayers = 5 })
	want := []Color{Red(), Green(), Blue(), Red(), Green()}
	ps := g.Players()
	for i := range ps {
		if ps[i].ID() != strconv.Itoa(i) {
			t.Fatalf("player %d id = %q", i, ps[i].ID())
		}
		if !ps[i].Color().Equal(want[i]) {
			t.Fatalf("player %d color = %v, want %v", i, ps[i].Color(), want[i])
		}
		if i > 0 && math.Abs(ps[i].X()-ps[i-1].X()-DistXPlayers) > 1e-9 {
			t.Fatalf("players %d and %d are %v apart", i-1, i, ps[i].X()-ps[i-1].X())
		}
	}
}

func TestInvalidOptions(t *testing.T) {
	cases := map[string]func(*Options){
		"short side":    func(o *Options) { o.WallShortSide = 0 },
		"players":       func(o *Options) { o.NumPlayers = -1 },
		"food":          func(o *Options) { o.NumFood = -2 },
		"regeneration":  func(o *Options) { o.FoodRegenerationTime = 0 },
		"stun duration": func(o *Options) { o.StunDuration = -1 },
		"growth":        func(o *Options) { o.PlayerConfig.GrowthFactor = 1 },
	}
	for name, mutate := range cases {
		opts := DefaultOptions()
		mutate(&opts)
		if _, err := NewGame(opts); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("%s: err = %v, want ErrInvalidOptions", name, err)
		}
	}
}

func TestIndexOutOfRange(t *testing.T) {
	g := newTestGame(t, nil)
	checks := []error{
		g.DoAction(-1, ActionTurnLeft),
		g.DoAction(3, ActionTurnLeft),
		g.ReleaseAction(3, ActionTurnLeft),
		g.ApplyAction(99, ActionShoot),
		g.KillPlayer(3),
		g.EatNthFood(1),
		g.PlaceProjectile(0, Coordinate{}),
	}
	_, perr := g.Player(3)
	checks = append(checks, perr)
	for i, err := range checks {
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("check %d: err = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestApplyActionIsImmediate(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < g.NumPlayers(); i++ {
		before := mustPlayer(t, g, i).Direction()
		if err := g.ApplyAction(i, ActionTurnLeft); err != nil {
			t.Fatal(err)
		}
		if math.Abs(mustPlayer(t, g, i).Direction()-before) < 0.001 {
			t.Fatalf("player %d did not turn", i)
		}
	}
	p := mustPlayer(t, g, 0)
	if err := g.ApplyAction(0, ActionNone); err != nil {
		t.Fatal(err)
	}
	q := mustPlayer(t, g, 0)
	if p.Direction() != q.Direction() || p.Speed() != q.Speed() || p.Position() != q.Position() {
		t.Fatalf("none changed the player")
	}
}

func TestHeldActionsRunEveryTick(t *testing.T) {
	g := newTestGame(t, nil)
	start := mustPlayer(t, g, 0).Direction()
	if err := g.DoAction(0, ActionTurnRight); err != nil {
		t.Fatal(err)
	}
	if err := g.DoAction(0, ActionTurnRight); err != nil {
		t.Fatal(err)
	}
	if mustPlayer(t, g, 0).Direction() != start {
		t.Fatalf("queued action applied before tick")
	}
	g.Tick()
	g.Tick()
	rate := mustPlayer(t, g, 0).TurnRate()
	if d := mustPlayer(t, g, 0).Direction(); math.Abs(d-(start+2*rate)) > 1e-12 {
		t.Fatalf("direction = %v, want %v", d, start+2*rate)
	}
	if err := g.ReleaseAction(0, ActionTurnRight); err != nil {
		t.Fatal(err)
	}
	g.Tick()
	if d := mustPlayer(t, g, 0).Direction(); math.Abs(d-(start+2*rate)) > 1e-12 {
		t.Fatalf("released action still applied: %v", d)
	}
}

func TestOpposingTurnsCancel(t *testing.T) {
	g := newTestGame(t, nil)
	start := mustPlayer(t, g, 1).Direction()
	_ = g.DoAction(1, ActionTurnRight)
	_ = g.DoAction(1, ActionTurnLeft)
	g.Tick()
	if d := mustPlayer(t, g, 1).Direction(); math.Abs(d-start) > 1e-12 {
		t.Fatalf("direction = %v, want %v", d, start)
	}
}

func TestInertiaSlowsPlayers(t *testing.T) {
	g := newTestGame(t, nil)
	before := make([]float64, g.NumPlayers())
	for i := range before {
		_ = g.ApplyAction(i, ActionAccelerate)
		before[i] = mustPlayer(t, g, i).Speed()
	}
	g.applyInertia()
	for i := range before {
		if after := mustPlayer(t, g, i).Speed(); !(after < before[i]) {
			t.Fatalf("player %d speed %v -> %v", i, before[i], after)
		}
	}
}

func TestKillPlayer(t *testing.T) {
	g := newTestGame(t, nil)
	if err := g.KillPlayer(0); err != nil {
		t.Fatal(err)
	}
	if g.NumPlayers() != 3 || g.CountAlivePlayers() != 2 {
		t.Fatalf("players=%d alive=%d", g.NumPlayers(), g.CountAlivePlayers())
	}
	p := mustPlayer(t, g, 0)
	if !p.IsDead() {
		t.Fatalf("state = %v", p.State())
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	mk := func(seed int64) *Game {
		opts := DefaultOptions()
		opts.Seed = seed
		opts.NumFood = 3
		opts.NumShelters = 10
		opts.ShelterLayout = ShelterRandom
		g, err := NewGame(opts)
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	a, b, c := mk(2), mk(2), mk(3)
	for i := range a.food {
		if a.food[i].pos != b.food[i].pos {
			t.Fatalf("food %d differs for equal seeds", i)
		}
	}
	if a.food[0].pos == c.food[0].pos {
		t.Fatalf("food 0 identical for different seeds")
	}
	pa, pc := a.ShelterPositions(), c.ShelterPositions()
	same := true
	for i := range pa {
		if pa[i] != pc[i] {
			same = false
		}
	}
	if same {
		t.Fatalf("random shelter layouts identical for different seeds")
	}
}

func TestShelterRingAndDrift(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.NumShelters = 5 })
	pos := g.ShelterPositions()
	if len(pos) != 5 {
		t.Fatalf("shelters = %d", len(pos))
	}
	c := g.Env().Center()
	r0 := pos[0].DistanceTo(c)
	for i := range pos {
		if math.Abs(pos[i].DistanceTo(c)-r0) > 1e-9 {
			t.Fatalf("shelter %d not on the ring", i)
		}
	}
	before := pos[0].X
	g.Tick()
	if after := g.ShelterPositions()[0].X; !(math.Abs(after-before) > 0) {
		t.Fatalf("first shelter did not move: %v", after)
	}
}

func TestPlaceNthFoodRandomly(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.NumFood = 2 })
	f0, _ := g.FoodItem(0)
	f1, _ := g.FoodItem(1)
	if f0.Position() != f1.Position() {
		t.Fatalf("helper should have stacked the food")
	}
	if err := g.PlaceNthFoodRandomly(0); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceNthFoodRandomly(1); err != nil {
		t.Fatal(err)
	}
	f0, _ = g.FoodItem(0)
	f1, _ = g.FoodItem(1)
	if f0.X() == f1.X() || f0.Y() == f1.Y() {
		t.Fatalf("food items share a coordinate: %+v %+v", f0.Position(), f1.Position())
	}
}

func TestRandomShelterLayoutInsideArena(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.ShelterLayout = ShelterRandom; o.NumShelters = 20 })
	for i, s := range g.ShelterPositions() {
		if s.X < g.MinX() || s.X > g.MaxX() || s.Y < g.MinY() || s.Y > g.MaxY() {
			t.Fatalf("shelter %d outside arena: %+v", i, s)
		}
	}
	again := newTestGame(t, func(o *Options) { o.ShelterLayout = ShelterRandom; o.NumShelters = 20 })
	if again.ShelterPositions()[7] != g.ShelterPositions()[7] {
		t.Fatalf("random layout is not seeded")
	}
}

func TestExplicitEnvironmentBounds(t *testing.T) {
	env, err := NewEnvironmentWithBounds(Coordinate{X: 0, Y: 0}, Coordinate{X: 2000, Y: 1000}, EnvEmpty)
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Env = &env
	opts.NumFood = 25
	opts.WallShortSide = 0 // 显式边界时不使用
	g, err := NewGame(opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.MinX() != 0 || g.MaxX() != 2000 || g.MinY() != 0 || g.MaxY() != 1000 || g.Env().Type() != EnvEmpty {
		t.Fatalf("bounds = (%v,%v)..(%v,%v) type=%v", g.MinX(), g.MinY(), g.MaxX(), g.MaxY(), g.Env().Type())
	}
	if p := mustPlayer(t, g, 1); p.Position() != (Coordinate{X: 1000, Y: 500}) {
		t.Fatalf("middle player at %+v, want arena centre", p.Position())
	}
	for i, f := range g.Food() {
		if f.X() < 0 || f.X() > 2000 || f.Y() < 0 || f.Y() > 1000 {
			t.Fatalf("food %d outside bounds: %+v", i, f.Position())
		}
	}

	opts.Env = &Environment{}
	if _, err := NewGame(opts); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("empty environment: err = %v, want ErrInvalidBounds", err)
	}
}
