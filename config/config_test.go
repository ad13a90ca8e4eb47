package config

import (
	"os"
	"path/filepath"
	"testing"

	"rpsrockets/game"
)

func TestLoadDefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Game.NumPlayers != 3 || cfg.Game.NumShelters != 42 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RPS_PLAYERS", "6")
	t.Setenv("RPS_SEED", "123456789")
	t.Setenv("RPS_SHELTER_LAYOUT", "random")
	t.Setenv("RPS_ENV_TYPE", "Wormhole")
	t.Setenv("RPS_FOOD_COLORS_PLAYER", "true")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g := cfg.Game
	if g.NumPlayers != 6 || g.Seed != 123456789 || g.ShelterLayout != game.ShelterRandom ||
		g.EnvType != game.EnvWormhole || !g.FoodColorsPlayer {
		t.Fatalf("overrides not applied: %+v", g)
	}
}

func TestEnvFileIsRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("RPS_FOOD=4\nRPS_ROOM=arena\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv 不覆盖已存在的变量，测试结束后清理
	t.Setenv("RPS_FOOD", "")
	t.Setenv("RPS_ROOM", "")
	os.Unsetenv("RPS_FOOD")
	os.Unsetenv("RPS_ROOM")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.NumFood != 4 || cfg.RoomID != "arena" {
		t.Fatalf("env file not applied: food=%d room=%q", cfg.Game.NumFood, cfg.RoomID)
	}
}

func TestBadValuesAreReported(t *testing.T) {
	t.Setenv("RPS_PLAYERS", "many")
	t.Setenv("RPS_SHELTER_LAYOUT", "spiral")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected an error for malformed values")
	}
}

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatalf("empty name should fail")
	}
	t.Setenv("RPS_ADDR", ":9000")
	v, err := GetEnvVariable("RPS_ADDR")
	if err != nil || v != ":9000" {
		t.Fatalf("GetEnvVariable = %q, %v", v, err)
	}
}
