package game

import "math"

const (
	DefaultShelterRadius     = 50.0
	DefaultShelterDriftSpeed = 0.5
)

// Shelter 中立的漂移障碍物，无碰撞效果
type Shelter struct {
	pos     Coordinate
	radius  float64
	color   Color
	heading float64
	speed   float64
	orbit   float64 // 轨道半径，0 表示直线漂移
}

func NewShelter(pos Coordinate, radius float64, c Color, heading, speed, orbit float64) Shelter {
	return Shelter{pos: pos, radius: radius, color: c, heading: heading, speed: speed, orbit: orbit}
}

func (s Shelter) Position() Coordinate { return s.pos }
func (s Shelter) X() float64           { return s.pos.X }
func (s Shelter) Y() float64           { return s.pos.Y }
func (s Shelter) Radius() float64      { return s.radius }
func (s Shelter) Color() Color         { return s.color }
func (s Shelter) Heading() float64     { return s.heading }

// Drift 沿当前航向移动一步；有轨道半径时航向随之转动，形成绕圈
func (s *Shelter) Drift() {
	s.pos = s.pos.Add(Heading(s.heading, s.speed))
	if s.orbit > 0 {
		s.heading = math.Mod(s.heading+s.speed/s.orbit, 2*math.Pi)
	}
}
