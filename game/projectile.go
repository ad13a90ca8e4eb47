package game

import "fmt"

// ProjectileType 投射物类型
type ProjectileType int

const (
	Rocket ProjectileType = iota
	StunRocket
)

func (t ProjectileType) String() string {
	switch t {
	case Rocket:
		return "rocket"
	case StunRocket:
		return "stun_rocket"
	}
	return fmt.Sprintf("ProjectileType(%d)", int(t))
}

const (
	DefaultProjectileRadius = 10.0
	DefaultProjectileSpeed  = 5.0
)

// Projectile 投射物：沿固定方向飞行，击中他人后可能被移除
type Projectile struct {
	pos       Coordinate
	direction float64
	kind      ProjectileType
	radius    float64
	speed     float64
	ownerID   string
}

// NewProjectile ownerID 用于排除击中发射者本人
func NewProjectile(pos Coordinate, direction float64, kind ProjectileType, radius float64, ownerID string) Projectile {
	return Projectile{
		pos:       pos,
		direction: direction,
		kind:      kind,
		radius:    radius,
		speed:     DefaultProjectileSpeed,
		ownerID:   ownerID,
	}
}

func (p Projectile) Position() Coordinate  { return p.pos }
func (p Projectile) X() float64            { return p.pos.X }
func (p Projectile) Y() float64            { return p.pos.Y }
func (p Projectile) Direction() float64    { return p.direction }
func (p Projectile) Type() ProjectileType  { return p.kind }
func (p Projectile) Radius() float64       { return p.radius }
func (p Projectile) Speed() float64        { return p.speed }
func (p Projectile) OwnerID() string       { return p.ownerID }
func (p *Projectile) PlaceAt(c Coordinate) { p.pos = c }
func (p *Projectile) SetSpeed(s float64)   { p.speed = s }

func (p *Projectile) Move() {
	p.pos = p.pos.Add(Heading(p.direction, p.speed))
}

// Hits 与玩家的碰撞判定：距离 < 玩家直径 + 投射物半径。
// 玩家一侧使用直径而非半径，判定范围因此偏大。
func (p Projectile) Hits(pl *Player) bool {
	return p.pos.DistanceTo(pl.pos) < pl.diameter+p.radius
}

// OutsideOf 整个圆都在环境之外
func (p Projectile) OutsideOf(env Environment) bool {
	return p.pos.X+p.radius < env.minX || p.pos.X-p.radius > env.maxX ||
		p.pos.Y+p.radius < env.minY || p.pos.Y-p.radius > env.maxY
}
