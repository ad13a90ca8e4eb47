package game

import (
	"errors"
	"testing"
)

func TestNewColorValidatesChannels(t *testing.T) {
	cases := []struct {
		r, g, b, a int
		ok         bool
	}{
		{0, 0, 0, 0, true},
		{255, 255, 255, 255, true},
		{0, 21, 255, 10, true},
		{-1, 0, 0, 255, false},
		{0, 256, 0, 255, false},
		{0, 0, 300, 255, false},
		{0, 0, 0, -5, false},
	}
	for _, tc := range cases {
		c, err := NewColor(tc.r, tc.g, tc.b, tc.a)
		if tc.ok {
			if err != nil {
				t.Fatalf("NewColor(%d,%d,%d,%d) unexpected error: %v", tc.r, tc.g, tc.b, tc.a, err)
			}
			if c.R() != tc.r || c.G() != tc.g || c.B() != tc.b || c.A() != tc.a {
				t.Fatalf("channels = %v, want (%d,%d,%d,%d)", c, tc.r, tc.g, tc.b, tc.a)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("NewColor(%d,%d,%d,%d) err = %v, want ErrInvalidColor", tc.r, tc.g, tc.b, tc.a, err)
		}
	}
}

func TestPrimaryHues(t *testing.T) {
	if h := Red().Hue(); h != 0 {
		t.Fatalf("red hue = %v, want 0", h)
	}
	if h := Green().Hue(); h != 120 {
		t.Fatalf("green hue = %v, want 120", h)
	}
	if h := Blue().Hue(); h != 240 {
		t.Fatalf("blue hue = %v, want 240", h)
	}
	if h := White().Hue(); h != 0 {
		t.Fatalf("grey hue = %v, want 0", h)
	}
	// 品红：r==b 最大，落在 300°
	if h := MustColor(255, 0, 255, 255).Hue(); h != 300 {
		t.Fatalf("magenta hue = %v, want 300", h)
	}
}

func TestRockPaperScissorsCycle(t *testing.T) {
	red, green, blue := Red(), Green(), Blue()
	if !IsFirstColorWinner(red, green) || !IsFirstColorWinner(green, blue) || !IsFirstColorWinner(blue, red) {
		t.Fatalf("winning pairs not recognised")
	}
	if IsFirstColorWinner(green, red) || IsFirstColorWinner(blue, green) || IsFirstColorWinner(red, blue) {
		t.Fatalf("reverse pairs must lose")
	}
	if IsFirstColorWinner(red, red) {
		t.Fatalf("a tie is not a win")
	}
	// 灰色的色相也是 0，因此与红色同样胜绿
	if !IsFirstColorWinner(White(), green) {
		t.Fatalf("white (hue 0) should beat green")
	}
	if IsFirstColorWinner(MustColor(255, 128, 0, 255), green) {
		t.Fatalf("orange must not take part in the cycle")
	}
}

func TestColorEquality(t *testing.T) {
	if !White().Equal(MustColor(255, 255, 255, 255)) {
		t.Fatalf("white != white")
	}
	if Red().Equal(Green()) {
		t.Fatalf("red == green")
	}
	half, err := Red().WithAlpha(128)
	if err != nil {
		t.Fatalf("WithAlpha: %v", err)
	}
	if half.Equal(Red()) {
		t.Fatalf("alpha must take part in equality")
	}
}
