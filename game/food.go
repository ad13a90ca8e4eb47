package game

import (
	"fmt"
	"math/rand"
)

// FoodState 食物状态
type FoodState int

const (
	FoodUneaten FoodState = iota
	FoodEaten
)

func (s FoodState) String() string {
	if s == FoodEaten {
		return "eaten"
	}
	return "uneaten"
}

const (
	DefaultFoodRadius           = 20.0
	DefaultFoodRegenerationTime = 300
)

// Food 食物：被吃后计时，达到再生阈值后随机换位重生
type Food struct {
	pos     Coordinate
	color   Color
	radius  float64
	state   FoodState
	timer   int
	regenAt int
}

// NewFood 创建未被吃的食物
func NewFood(pos Coordinate, c Color, regenerationTime int) Food {
	return Food{
		pos:     pos,
		color:   c,
		radius:  DefaultFoodRadius,
		state:   FoodUneaten,
		regenAt: regenerationTime,
	}
}

func (f Food) Position() Coordinate  { return f.pos }
func (f Food) X() float64            { return f.pos.X }
func (f Food) Y() float64            { return f.pos.Y }
func (f Food) Color() Color          { return f.color }
func (f Food) Radius() float64       { return f.radius }
func (f Food) State() FoodState      { return f.state }
func (f Food) IsEaten() bool         { return f.state == FoodEaten }
func (f Food) Timer() int            { return f.timer }
func (f Food) RegenerationTime() int { return f.regenAt }
func (f *Food) PlaceAt(c Coordinate) { f.pos = c }

// IncrementTimer 只在被吃状态下推进再生计时
func (f *Food) IncrementTimer() {
	if f.state == FoodEaten {
		f.timer++
	}
}

func (f *Food) ResetTimer() { f.timer = 0 }

// Eat 吃掉食物；已被吃掉时返回 ErrFoodAlreadyEaten
func (f *Food) Eat() error {
	if f.state == FoodEaten {
		return fmt.Errorf("food at (%.1f, %.1f): %w", f.pos.X, f.pos.Y, ErrFoodAlreadyEaten)
	}
	f.state = FoodEaten
	f.ResetTimer()
	return nil
}

// ReadyToRegenerate 已被吃且计时达到阈值
func (f Food) ReadyToRegenerate() bool {
	return f.state == FoodEaten && f.timer >= f.regenAt
}

// PlaceRandomly 在 [min,max] 矩形内均匀随机放置
func (f *Food) PlaceRandomly(rng *rand.Rand, min, max Coordinate) {
	f.pos = Coordinate{
		X: min.X + rng.Float64()*(max.X-min.X),
		Y: min.Y + rng.Float64()*(max.Y-min.Y),
	}
}

// Regenerate 恢复为未被吃并随机换位
func (f *Food) Regenerate(rng *rand.Rand, env Environment) {
	f.state = FoodUneaten
	f.timer = 0
	f.PlaceRandomly(rng, env.Min(), env.Max())
}

// Touches 玩家是否与食物圆相交（不考虑食物状态）
func (f Food) Touches(p *Player) bool {
	return p.pos.DistanceTo(f.pos) < p.Radius()+f.radius
}

// CanBeEatenBy 相交且未被吃
func (f Food) CanBeEatenBy(p *Player) bool {
	return f.state == FoodUneaten && f.Touches(p)
}
