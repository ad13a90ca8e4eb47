package server

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"rpsrockets/game"
)

func TestBuildSnapshotMirrorsGame(t *testing.T) {
	g, err := game.NewGame(game.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	_ = g.DoAction(0, game.ActionShoot)
	g.Tick()
	s := BuildSnapshot("r", "sess", g)
	if s.Tick != 1 || s.Room != "r" || s.Session != "sess" {
		t.Fatalf("header = %+v", s)
	}
	if len(s.Players) != 3 || len(s.Shelters) != 42 || len(s.Enemies) != 1 || len(s.Food) != 1 {
		t.Fatalf("counts: players=%d shelters=%d enemies=%d food=%d",
			len(s.Players), len(s.Shelters), len(s.Enemies), len(s.Food))
	}
	if len(s.Projectiles) != 1 || s.Projectiles[0].Owner != "0" || s.Projectiles[0].Type != "rocket" {
		t.Fatalf("projectiles = %+v", s.Projectiles)
	}
	if s.Players[1].Color != [4]int{0, 255, 0, 255} || s.Players[1].State != "active" {
		t.Fatalf("player 1 = %+v", s.Players[1])
	}
	if s.Env.MinX >= s.Env.MaxX || s.Env.Type != "quiet" {
		t.Fatalf("env = %+v", s.Env)
	}
}

func TestMsgpackFrameDecodes(t *testing.T) {
	g, err := game.NewGame(game.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	f := &frames{snap: BuildSnapshot("r", "sess", g)}
	b, err := f.Msgpack()
	if err != nil {
		t.Fatal(err)
	}
	again, _ := f.Msgpack()
	if &again[0] != &b[0] {
		t.Fatalf("frame should be encoded once")
	}
	var got Snapshot
	if err := msgpack.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got.Session != "sess" || len(got.Players) != 3 || got.Players[2].ID != "2" {
		t.Fatalf("decoded = %+v", got)
	}
}
