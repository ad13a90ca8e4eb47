package game

import "fmt"

// EnvironmentType 环境类型标签（仅描述用途）
type EnvironmentType int

const (
	EnvEmpty EnvironmentType = iota
	EnvQuiet
	EnvRandom
	EnvAttractive
	EnvRepellent
	EnvWormhole
)

var envTypeNames = [...]string{"empty", "quiet", "random", "attractive", "repellent", "wormhole"}

func (t EnvironmentType) String() string {
	if t < 0 || int(t) >= len(envTypeNames) {
		return "[Unknown environment_type]"
	}
	return envTypeNames[t]
}

// ParseEnvironmentType 文本转环境类型
func ParseEnvironmentType(s string) (EnvironmentType, error) {
	for i, n := range envTypeNames {
		if n == s {
			return EnvironmentType(i), nil
		}
	}
	return EnvEmpty, fmt.Errorf("unknown environment type %q", s)
}

// Environment 矩形世界边界
type Environment struct {
	shortSide  float64
	minX, maxX float64
	minY, maxY float64
	kind       EnvironmentType
}

// NewEnvironment 以短边长度生成 16:9 矩形，中心为 center
func NewEnvironment(shortSide float64, center Coordinate, kind EnvironmentType) (Environment, error) {
	if !(shortSide > 0) {
		return Environment{}, fmt.Errorf("short side %v: %w", shortSide, ErrInvalidBounds)
	}
	halfW := shortSide * 16 / 9 / 2
	halfH := shortSide / 2
	return Environment{
		shortSide: shortSide,
		minX:      center.X - halfW,
		maxX:      center.X + halfW,
		minY:      center.Y - halfH,
		maxY:      center.Y + halfH,
		kind:      kind,
	}, nil
}

// NewEnvironmentWithBounds 直接指定边界
func NewEnvironmentWithBounds(min, max Coordinate, kind EnvironmentType) (Environment, error) {
	if !(min.X < max.X) || !(min.Y < max.Y) {
		return Environment{}, fmt.Errorf("bounds %v..%v: %w", min, max, ErrInvalidBounds)
	}
	return Environment{
		shortSide: minFloat(max.X-min.X, max.Y-min.Y),
		minX:      min.X,
		maxX:      max.X,
		minY:      min.Y,
		maxY:      max.Y,
		kind:      kind,
	}, nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func (e Environment) ShortSide() float64    { return e.shortSide }
func (e Environment) MinX() float64         { return e.minX }
func (e Environment) MaxX() float64         { return e.maxX }
func (e Environment) MinY() float64         { return e.minY }
func (e Environment) MaxY() float64         { return e.maxY }
func (e Environment) Min() Coordinate       { return Coordinate{e.minX, e.minY} }
func (e Environment) Max() Coordinate       { return Coordinate{e.maxX, e.maxY} }
func (e Environment) Width() float64        { return e.maxX - e.minX }
func (e Environment) Height() float64       { return e.maxY - e.minY }
func (e Environment) Type() EnvironmentType { return e.kind }
func (e Environment) Center() Coordinate {
	return Coordinate{(e.minX + e.maxX) / 2, (e.minY + e.maxY) / 2}
}
