package game

import (
	"fmt"
	"math"
)

// Color RGBA 颜色，四个通道均在 [0,255]
type Color struct {
	r, g, b, a int
}

// NewColor 构造颜色并校验通道范围
func NewColor(r, g, b, a int) (Color, error) {
	for _, ch := range [...]int{r, g, b, a} {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("color(%d, %d, %d, %d): %w", r, g, b, a, ErrInvalidColor)
		}
	}
	return Color{r: r, g: g, b: b, a: a}, nil
}

// MustColor 同 NewColor，非法时 panic（仅用于常量颜色）
func MustColor(r, g, b, a int) Color {
	c, err := NewColor(r, g, b, a)
	if err != nil {
		panic(err)
	}
	return c
}

func White() Color { return Color{255, 255, 255, 255} }
func Red() Color   { return Color{255, 0, 0, 255} }
func Green() Color { return Color{0, 255, 0, 255} }
func Blue() Color  { return Color{0, 0, 255, 255} }

func (c Color) R() int { return c.r }
func (c Color) G() int { return c.g }
func (c Color) B() int { return c.b }
func (c Color) A() int { return c.a }

// WithAlpha 返回替换透明度后的颜色
func (c Color) WithAlpha(a int) (Color, error) {
	return NewColor(c.r, c.g, c.b, a)
}

// Equal 逐通道精确比较
func (c Color) Equal(o Color) bool {
	return c == o
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.r, c.g, c.b, c.a)
}

// Hue 计算色相（度，[0,360)），灰色（r==g==b）为 0
func (c Color) Hue() float64 {
	r := float64(c.r) / 255.0
	g := float64(c.g) / 255.0
	b := float64(c.b) / 255.0
	maxV := math.Max(math.Max(r, g), b)
	minV := math.Min(math.Min(r, g), b)
	if maxV == minV {
		return 0
	}
	var h float64
	switch maxV {
	case r:
		h = (g - b) / (maxV - minV)
		if h < 0 {
			h += 6
		}
	case g:
		h = 2 + (b-r)/(maxV-minV)
	default:
		h = 4 + (r-g)/(maxV-minV)
	}
	return h * 60
}

// IsFirstColorWinner 石头剪刀布规则：红胜绿、绿胜蓝、蓝胜红。
// 只认色相恰好为 0/120/240 的颜色，其它组合（含平局）返回 false。
func IsFirstColorWinner(c1, c2 Color) bool {
	h1, h2 := c1.Hue(), c2.Hue()
	return (h1 == 0 && h2 == 120) ||
		(h1 == 120 && h2 == 240) ||
		(h1 == 240 && h2 == 0)
}
