package game

import (
	"math"
	"testing"
)

func TestProjectileMoves(t *testing.T) {
	p := NewProjectile(Coordinate{}, math.Pi/2, Rocket, DefaultProjectileRadius, "0")
	p.Move()
	if math.Abs(p.X()) > 1e-9 || math.Abs(p.Y()-DefaultProjectileSpeed) > 1e-9 {
		t.Fatalf("position = %+v, want (0,%v)", p.Position(), DefaultProjectileSpeed)
	}
}

func TestProjectileHitUsesPlayerDiameter(t *testing.T) {
	pl := newTestPlayer() // 直径 100
	const r = 12.34
	cases := []struct {
		dx   float64
		want bool
	}{
		{0, true},
		{0.99 * r, true},
		{1.01 * r, true},
		{pl.Diameter() + 0.99*r, true},
		{pl.Diameter() + 1.01*r, false},
	}
	for _, tc := range cases {
		p := NewProjectile(Coordinate{X: tc.dx}, 0, Rocket, r, "other")
		if got := p.Hits(&pl); got != tc.want {
			t.Fatalf("dx=%v: Hits = %v, want %v", tc.dx, got, tc.want)
		}
	}
}

func TestProjectileOutsideOf(t *testing.T) {
	env, _ := NewEnvironment(900, Coordinate{}, EnvEmpty)
	in := NewProjectile(Coordinate{X: env.MaxX()}, 0, Rocket, 10, "0")
	if in.OutsideOf(env) {
		t.Fatalf("projectile on the wall is still inside")
	}
	out := NewProjectile(Coordinate{X: env.MaxX() + 11}, 0, Rocket, 10, "0")
	if !out.OutsideOf(env) {
		t.Fatalf("projectile beyond the wall should be outside")
	}
}

func TestStoppedProjectileStaysPut(t *testing.T) {
	p := NewProjectile(Coordinate{X: 3, Y: 4}, 1, StunRocket, DefaultProjectileRadius, "0")
	p.SetSpeed(0)
	p.Move()
	if p.Position() != (Coordinate{X: 3, Y: 4}) || p.Speed() != 0 {
		t.Fatalf("position = %+v speed = %v", p.Position(), p.Speed())
	}
}
