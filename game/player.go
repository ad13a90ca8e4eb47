package game

import (
	"fmt"
	"math"
)

// PlayerState 玩家状态机：active -> stunned -> active；active|stunned -> dead（终态）
type PlayerState int

const (
	StateActive PlayerState = iota
	StateDead
	StateStunned
)

func (s PlayerState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDead:
		return "dead"
	case StateStunned:
		return "stunned"
	}
	return fmt.Sprintf("PlayerState(%d)", int(s))
}

// PlayerShape 渲染用形状标签
type PlayerShape int

const (
	ShapeRocket PlayerShape = iota
	ShapeCircle
)

func (s PlayerShape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "rocket"
}

// PlayerConfig 玩家运动参数
type PlayerConfig struct {
	MaxSpeed     float64
	Acceleration float64
	Deceleration float64 // 负数：每次刹车/惯性衰减的速度变化
	AccBackward  float64 // 负数：倒车加速度
	Diameter     float64
	TurnRate     float64 // 弧度/次
	GrowthFactor float64
	Direction    float64 // 初始朝向（弧度）
}

// DefaultPlayerConfig 默认参数：朝上（270°），直径 100
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MaxSpeed:     2,
		Acceleration: 0.1,
		Deceleration: -0.001,
		AccBackward:  -0.1,
		Diameter:     100,
		TurnRate:     0.01,
		GrowthFactor: 1.1,
		Direction:    270 * math.Pi / 180,
	}
}

// Player 火箭玩家（由 Game 独占，渲染侧只读副本）
type Player struct {
	id    string
	pos   Coordinate
	color Color
	shape PlayerShape
	state PlayerState

	actions ActionSet

	// 一次性射击事件槽：动作写入，Tick 消费后清空
	pendingRocket bool
	pendingStun   bool

	speed     float64
	direction float64
	diameter  float64
	cfg       PlayerConfig

	stunTicks int
}

// NewPlayer 创建玩家，ID 创建后不可变
func NewPlayer(id string, pos Coordinate, c Color, cfg PlayerConfig) Player {
	if cfg.Diameter <= 0 {
		panic(fmt.Sprintf("player %s: diameter must be positive, got %v", id, cfg.Diameter))
	}
	return Player{
		id:        id,
		pos:       pos,
		color:     c,
		shape:     ShapeRocket,
		state:     StateActive,
		direction: cfg.Direction,
		diameter:  cfg.Diameter,
		cfg:       cfg,
	}
}

func (p Player) ID() string                    { return p.id }
func (p Player) Position() Coordinate          { return p.pos }
func (p Player) X() float64                    { return p.pos.X }
func (p Player) Y() float64                    { return p.pos.Y }
func (p Player) Color() Color                  { return p.color }
func (p Player) Shape() PlayerShape            { return p.shape }
func (p Player) State() PlayerState            { return p.state }
func (p Player) Speed() float64                { return p.speed }
func (p Player) MaxSpeed() float64             { return p.cfg.MaxSpeed }
func (p Player) Direction() float64            { return p.direction }
func (p Player) Diameter() float64             { return p.diameter }
func (p Player) Radius() float64               { return p.diameter / 2 }
func (p Player) Acceleration() float64         { return p.cfg.Acceleration }
func (p Player) AccelerationBackward() float64 { return p.cfg.AccBackward }
func (p Player) TurnRate() float64             { return p.cfg.TurnRate }
func (p Player) HeldActions() ActionSet        { return p.actions }

// IsShooting 本 Tick 是否有待发射的普通火箭
func (p Player) IsShooting() bool { return p.pendingRocket }

// IsShootingStunRocket 本 Tick 是否有待发射的眩晕火箭
func (p Player) IsShootingStunRocket() bool { return p.pendingStun }

func (p *Player) PlaceAt(c Coordinate) { p.pos = c }
func (p *Player) SetX(x float64)       { p.pos.X = x }
func (p *Player) SetY(y float64)       { p.pos.Y = y }
func (p *Player) SetColor(c Color)     { p.color = c }

func (p *Player) TurnLeft()  { p.direction -= p.cfg.TurnRate }
func (p *Player) TurnRight() { p.direction += p.cfg.TurnRate }

// Move 沿当前朝向按速度前进一步
func (p *Player) Move() {
	p.pos = p.pos.Add(Heading(p.direction, p.speed))
}

// Accelerate 加速，最高到 MaxSpeed
func (p *Player) Accelerate() {
	p.speed = math.Min(p.speed+p.cfg.Acceleration, p.cfg.MaxSpeed)
}

// AccBackward 倒车加速，最低到 -MaxSpeed
func (p *Player) AccBackward() {
	p.speed = math.Max(p.speed+p.cfg.AccBackward, -p.cfg.MaxSpeed)
}

// Brake 速度向 0 衰减一个减速步长，不越过 0
func (p *Player) Brake() {
	step := math.Abs(p.cfg.Deceleration)
	switch {
	case p.speed > 0:
		p.speed = math.Max(p.speed-step, 0)
	case p.speed < 0:
		p.speed = math.Min(p.speed+step, 0)
	}
}

func (p *Player) Grow() { p.diameter *= p.cfg.GrowthFactor }

func (p *Player) Shrink() {
	p.diameter /= p.cfg.GrowthFactor
	if !(p.diameter > 0) {
		panic(fmt.Sprintf("player %s: diameter became non-positive (%v)", p.id, p.diameter))
	}
}

func (p *Player) Shoot()           { p.pendingRocket = true }
func (p *Player) ShootStunRocket() { p.pendingStun = true }

// TakePendingShots 取出并清空本 Tick 的射击事件
func (p *Player) TakePendingShots() (rocket, stun bool) {
	rocket, stun = p.pendingRocket, p.pendingStun
	p.pendingRocket, p.pendingStun = false, false
	return rocket, stun
}

// Stun 眩晕（死亡玩家不受影响）
func (p *Player) Stun() {
	if p.state == StateDead {
		return
	}
	p.state = StateStunned
	p.stunTicks = 0
}

// Unstun 解除眩晕
func (p *Player) Unstun() {
	if p.state == StateStunned {
		p.state = StateActive
		p.stunTicks = 0
	}
}

// Kill 终态
func (p *Player) Kill() {
	p.state = StateDead
	p.speed = 0
	p.pendingRocket, p.pendingStun = false, false
}

func (p Player) IsAlive() bool   { return p.state != StateDead }
func (p Player) IsActive() bool  { return p.state == StateActive }
func (p Player) IsDead() bool    { return p.state == StateDead }
func (p Player) IsStunned() bool { return p.state == StateStunned }

func (p Player) IsRed() bool   { return p.color.r == 255 && p.color.g == 0 && p.color.b == 0 }
func (p Player) IsGreen() bool { return p.color.r == 0 && p.color.g == 255 && p.color.b == 0 }
func (p Player) IsBlue() bool  { return p.color.r == 0 && p.color.g == 0 && p.color.b == 255 }

// ColorIndex 红/绿/蓝分别为 0/1/2，其它颜色为 -1
func (p Player) ColorIndex() int {
	switch {
	case p.IsRed():
		return 0
	case p.IsGreen():
		return 1
	case p.IsBlue():
		return 2
	}
	return -1
}

// AddAction 按住动作（幂等）
func (p *Player) AddAction(a ActionType) { p.actions.Add(a) }

// RemoveAction 松开动作
func (p *Player) RemoveAction(a ActionType) { p.actions.Remove(a) }

// Apply 执行一次动作；眩晕或死亡的玩家忽略所有动作
func (p *Player) Apply(a ActionType) {
	if p.state != StateActive {
		return
	}
	switch a {
	case ActionTurnLeft:
		p.TurnLeft()
	case ActionTurnRight:
		p.TurnRight()
	case ActionAccelerate:
		p.Accelerate()
	case ActionBrake:
		p.Brake()
	case ActionAccBackward:
		p.AccBackward()
	case ActionShoot:
		p.Shoot()
	case ActionShootStunRocket:
		p.ShootStunRocket()
	}
}

// AreColliding 两个玩家的圆是否相交
func AreColliding(p1, p2 *Player) bool {
	return p1.pos.DistanceTo(p2.pos) < p1.Radius()+p2.Radius()
}

// IsFirstPlayerWinner 按颜色判定第一个玩家是否胜出
func IsFirstPlayerWinner(p1, p2 *Player) bool {
	return IsFirstColorWinner(p1.color, p2.color)
}
