package game

import "math"

// Coordinate 二维坐标（值类型）
type Coordinate struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func (c Coordinate) Add(o Coordinate) Coordinate { return Coordinate{c.X + o.X, c.Y + o.Y} }
func (c Coordinate) Sub(o Coordinate) Coordinate { return Coordinate{c.X - o.X, c.Y - o.Y} }
func (c Coordinate) Scale(k float64) Coordinate  { return Coordinate{c.X * k, c.Y * k} }

// DistanceTo 欧氏距离
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	d := c.Sub(o)
	return math.Hypot(d.X, d.Y)
}

// Heading 沿方向（弧度）长度为 dist 的位移
func Heading(direction, dist float64) Coordinate {
	return Coordinate{math.Cos(direction), math.Sin(direction)}.Scale(dist)
}
