package game

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"go.uber.org/zap"
)

// ShelterLayout 初始庇护所布局
type ShelterLayout int

const (
	// ShelterRing 以环境中心为圆心的等角环形布局（确定性）
	ShelterRing ShelterLayout = iota
	// ShelterRandom 由游戏随机数发生器均匀撒点
	ShelterRandom
)

func (l ShelterLayout) String() string {
	if l == ShelterRandom {
		return "random"
	}
	return "ring"
}

// DistXPlayers 初始时相邻玩家在 x 轴上的间距
const DistXPlayers = 300.0

// Options 游戏构造参数
type Options struct {
	WallShortSide float64
	Center        Coordinate
	EnvType       EnvironmentType
	// Env 显式指定场地边界；非空时忽略 WallShortSide、Center、EnvType
	Env *Environment

	NumPlayers    int
	TickBudget    int // 仅供驱动方参考，不影响 Tick
	NumShelters   int
	ShelterLayout ShelterLayout
	NumEnemies    int
	NumFood       int

	FoodRegenerationTime int
	// FoodColorsPlayer 吃到食物的玩家变成食物的颜色
	FoodColorsPlayer bool
	// StunDuration 眩晕自动解除的 Tick 数，0 表示只能显式解除
	StunDuration int

	Seed         int64
	PlayerConfig PlayerConfig
	Logger       *zap.Logger
}

// DefaultOptions 默认：短边 1600、3 名玩家、42 个庇护所、1 个敌人、1 个食物、种子 42
func DefaultOptions() Options {
	pc := DefaultPlayerConfig()
	pc.Deceleration = -0.0001
	return Options{
		WallShortSide:        1600,
		EnvType:              EnvQuiet,
		NumPlayers:           3,
		NumShelters:          42,
		ShelterLayout:        ShelterRing,
		NumEnemies:           1,
		NumFood:              1,
		FoodRegenerationTime: DefaultFoodRegenerationTime,
		Seed:                 42,
		PlayerConfig:         pc,
	}
}

// Validate 检查构造参数
func (o Options) Validate() error {
	switch {
	case o.Env != nil && (!(o.Env.Width() > 0) || !(o.Env.Height() > 0)):
		return fmt.Errorf("environment %v..%v: %w", o.Env.Min(), o.Env.Max(), ErrInvalidBounds)
	case o.Env == nil && !(o.WallShortSide > 0):
		return fmt.Errorf("wall short side %v must be positive: %w", o.WallShortSide, ErrInvalidOptions)
	case o.NumPlayers < 0, o.NumShelters < 0, o.NumEnemies < 0, o.NumFood < 0:
		return fmt.Errorf("negative entity count (players=%d shelters=%d enemies=%d food=%d): %w",
			o.NumPlayers, o.NumShelters, o.NumEnemies, o.NumFood, ErrInvalidOptions)
	case o.TickBudget < 0:
		return fmt.Errorf("tick budget %d: %w", o.TickBudget, ErrInvalidOptions)
	case o.FoodRegenerationTime <= 0:
		return fmt.Errorf("food regeneration time %d must be positive: %w", o.FoodRegenerationTime, ErrInvalidOptions)
	case o.StunDuration < 0:
		return fmt.Errorf("stun duration %d: %w", o.StunDuration, ErrInvalidOptions)
	case !(o.PlayerConfig.Diameter > 0), !(o.PlayerConfig.GrowthFactor > 1):
		return fmt.Errorf("player diameter %v / growth factor %v: %w",
			o.PlayerConfig.Diameter, o.PlayerConfig.GrowthFactor, ErrInvalidOptions)
	}
	return nil
}

func (o Options) environment() (Environment, error) {
	if o.Env != nil {
		return *o.Env, nil
	}
	return NewEnvironment(o.WallShortSide, o.Center, o.EnvType)
}

// Stats 累计的玩法事件计数
type Stats struct {
	RPSCollisions   int64 `json:"rps_collisions" msgpack:"rps_collisions"`
	Stuns           int64 `json:"stuns" msgpack:"stuns"`
	FoodEaten       int64 `json:"food_eaten" msgpack:"food_eaten"`
	FoodRegenerated int64 `json:"food_regenerated" msgpack:"food_regenerated"`
	ProjectilesShot int64 `json:"projectiles_shot" msgpack:"projectiles_shot"`
	ProjectilesLost int64 `json:"projectiles_lost" msgpack:"projectiles_lost"`
	WallCollisions  int64 `json:"wall_collisions" msgpack:"wall_collisions"`
}

// Game 权威世界状态；单线程使用，不支持并发访问
type Game struct {
	opts Options
	rng  *rand.Rand
	log  *zap.Logger
	env  Environment

	players     []Player
	food        []Food
	projectiles []Projectile
	shelters    []Shelter
	enemies     []Enemy

	ticks int
	stats Stats
}

// NewGame 按参数创建游戏。随机数消耗顺序：食物、敌人、庇护所（随机布局时）。
func NewGame(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	env, err := opts.environment()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		log:  logger,
		env:  env,
	}
	g.initPlayers()
	g.initFood()
	g.initEnemies()
	g.initShelters()
	g.log.Debug("game created",
		zap.Int64("seed", opts.Seed),
		zap.Int("players", len(g.players)),
		zap.Int("food", len(g.food)),
		zap.Int("shelters", len(g.shelters)),
		zap.Int("enemies", len(g.enemies)))
	return g, nil
}

// rgbByIndex 按下标轮换红、绿、蓝
func rgbByIndex(i, alpha int) Color {
	c := Color{a: alpha}
	switch i % 3 {
	case 0:
		c.r = 255
	case 1:
		c.g = 255
	default:
		c.b = 255
	}
	return c
}

func (g *Game) initPlayers() {
	n := g.opts.NumPlayers
	center := g.env.Center()
	g.players = make([]Player, 0, n)
	for i := 0; i < n; i++ {
		pos := Coordinate{
			X: center.X + DistXPlayers*(float64(i)-float64(n-1)/2),
			Y: center.Y,
		}
		g.players = append(g.players, NewPlayer(strconv.Itoa(i), pos, rgbByIndex(i, 255), g.opts.PlayerConfig))
	}
}

func (g *Game) initFood() {
	g.food = make([]Food, 0, g.opts.NumFood)
	for i := 0; i < g.opts.NumFood; i++ {
		f := NewFood(Coordinate{}, White(), g.opts.FoodRegenerationTime)
		f.PlaceRandomly(g.rng, g.env.Min(), g.env.Max())
		g.food = append(g.food, f)
	}
}

func (g *Game) initEnemies() {
	g.enemies = make([]Enemy, 0, g.opts.NumEnemies)
	for i := 0; i < g.opts.NumEnemies; i++ {
		pos := Coordinate{
			X: g.env.minX + g.rng.Float64()*g.env.Width(),
			Y: g.env.minY + g.rng.Float64()*g.env.Height(),
		}
		g.enemies = append(g.enemies, NewEnemy(pos))
	}
}

func (g *Game) initShelters() {
	n := g.opts.NumShelters
	g.shelters = make([]Shelter, 0, n)
	mid := g.env.Center()
	spread := g.env.shortSide * 0.3
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		var pos Coordinate
		orbit := spread
		if g.opts.ShelterLayout == ShelterRandom {
			pos = Coordinate{
				X: g.env.minX + g.rng.Float64()*g.env.Width(),
				Y: g.env.minY + g.rng.Float64()*g.env.Height(),
			}
			orbit = 0
		} else {
			pos = Coordinate{
				X: mid.X + math.Sin(angle)*spread,
				Y: mid.Y - math.Cos(angle)*spread,
			}
		}
		// 航向取环的切线方向
		g.shelters = append(g.shelters, NewShelter(pos, DefaultShelterRadius, rgbByIndex(i, 128+64),
			angle, DefaultShelterDriftSpeed, orbit))
	}
}

func (g *Game) Options() Options    { return g.opts }
func (g *Game) Env() Environment    { return g.env }
func (g *Game) Ticks() int          { return g.ticks }
func (g *Game) TickBudget() int     { return g.opts.TickBudget }
func (g *Game) Seed() int64         { return g.opts.Seed }
func (g *Game) Stats() Stats        { return g.stats }
func (g *Game) NumPlayers() int     { return len(g.players) }
func (g *Game) NumFood() int        { return len(g.food) }
func (g *Game) NumProjectiles() int { return len(g.projectiles) }
func (g *Game) MinX() float64       { return g.env.minX }
func (g *Game) MaxX() float64       { return g.env.maxX }
func (g *Game) MinY() float64       { return g.env.minY }
func (g *Game) MaxY() float64       { return g.env.maxY }

// Rand 游戏独占的随机数发生器
func (g *Game) Rand() *rand.Rand { return g.rng }

// Players 返回玩家副本（只读视图）
func (g *Game) Players() []Player { return append([]Player(nil), g.players...) }

func (g *Game) Food() []Food { return append([]Food(nil), g.food...) }

func (g *Game) Projectiles() []Projectile { return append([]Projectile(nil), g.projectiles...) }

func (g *Game) Shelters() []Shelter { return append([]Shelter(nil), g.shelters...) }

func (g *Game) Enemies() []Enemy { return append([]Enemy(nil), g.enemies...) }

// ShelterPositions 所有庇护所位置
func (g *Game) ShelterPositions() []Coordinate {
	out := make([]Coordinate, len(g.shelters))
	for i := range g.shelters {
		out[i] = g.shelters[i].pos
	}
	return out
}

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s index %d (have %d): %w", what, i, n, ErrIndexOutOfRange)
	}
	return nil
}

func (g *Game) player(i int) (*Player, error) {
	if err := checkIndex("player", i, len(g.players)); err != nil {
		return nil, err
	}
	return &g.players[i], nil
}

// Player 第 i 个玩家的副本
func (g *Game) Player(i int) (Player, error) {
	p, err := g.player(i)
	if err != nil {
		return Player{}, err
	}
	return *p, nil
}

// FoodItem 第 i 个食物的副本
func (g *Game) FoodItem(i int) (Food, error) {
	if err := checkIndex("food", i, len(g.food)); err != nil {
		return Food{}, err
	}
	return g.food[i], nil
}

// Projectile 第 i 个投射物的副本
func (g *Game) Projectile(i int) (Projectile, error) {
	if err := checkIndex("projectile", i, len(g.projectiles)); err != nil {
		return Projectile{}, err
	}
	return g.projectiles[i], nil
}

// DoAction 将动作加入玩家的按住集合，下一次 Tick 起每帧执行，直到 ReleaseAction。
// 重复加入无额外效果；ActionNone 什么也不做。
func (g *Game) DoAction(playerIndex int, a ActionType) error {
	p, err := g.player(playerIndex)
	if err != nil {
		return err
	}
	p.AddAction(a)
	return nil
}

// ReleaseAction 松开动作
func (g *Game) ReleaseAction(playerIndex int, a ActionType) error {
	p, err := g.player(playerIndex)
	if err != nil {
		return err
	}
	p.RemoveAction(a)
	return nil
}

// ApplyAction 立即执行一次动作（不进入按住集合）
func (g *Game) ApplyAction(playerIndex int, a ActionType) error {
	p, err := g.player(playerIndex)
	if err != nil {
		return err
	}
	p.Apply(a)
	return nil
}

func (g *Game) KillPlayer(i int) error {
	p, err := g.player(i)
	if err != nil {
		return err
	}
	p.Kill()
	return nil
}

func (g *Game) StunPlayer(i int) error {
	p, err := g.player(i)
	if err != nil {
		return err
	}
	p.Stun()
	return nil
}

func (g *Game) UnstunPlayer(i int) error {
	p, err := g.player(i)
	if err != nil {
		return err
	}
	p.Unstun()
	return nil
}

// PlacePlayer 把玩家放到指定位置
func (g *Game) PlacePlayer(i int, c Coordinate) error {
	p, err := g.player(i)
	if err != nil {
		return err
	}
	p.PlaceAt(c)
	return nil
}

func (g *Game) SetPlayerColor(i int, c Color) error {
	p, err := g.player(i)
	if err != nil {
		return err
	}
	p.SetColor(c)
	return nil
}

// CountAlivePlayers 未死亡的玩家数
func (g *Game) CountAlivePlayers() int {
	n := 0
	for i := range g.players {
		if g.players[i].IsAlive() {
			n++
		}
	}
	return n
}

// HasFood 是否还有未被吃的食物
func (g *Game) HasFood() bool {
	for i := range g.food {
		if !g.food[i].IsEaten() {
			return true
		}
	}
	return false
}

// AddProjectile 直接加入一个投射物
func (g *Game) AddProjectile(p Projectile) {
	g.projectiles = append(g.projectiles, p)
}

// PlaceProjectile 移动第 i 个投射物
func (g *Game) PlaceProjectile(i int, c Coordinate) error {
	if err := checkIndex("projectile", i, len(g.projectiles)); err != nil {
		return err
	}
	g.projectiles[i].PlaceAt(c)
	return nil
}

// EatNthFood 吃掉第 n 个食物；已被吃时返回 ErrFoodAlreadyEaten
func (g *Game) EatNthFood(n int) error {
	if err := checkIndex("food", n, len(g.food)); err != nil {
		return err
	}
	return g.food[n].Eat()
}

// PlaceNthFoodRandomly 用游戏随机数重新放置第 n 个食物
func (g *Game) PlaceNthFoodRandomly(n int) error {
	if err := checkIndex("food", n, len(g.food)); err != nil {
		return err
	}
	g.food[n].PlaceRandomly(g.rng, g.env.Min(), g.env.Max())
	return nil
}

// PlaceNthFood 把第 n 个食物放到指定位置
func (g *Game) PlaceNthFood(n int, c Coordinate) error {
	if err := checkIndex("food", n, len(g.food)); err != nil {
		return err
	}
	g.food[n].PlaceAt(c)
	return nil
}

// NthFoodTimer 第 n 个食物的再生计时
func (g *Game) NthFoodTimer(n int) (int, error) {
	if err := checkIndex("food", n, len(g.food)); err != nil {
		return 0, err
	}
	return g.food[n].timer, nil
}
