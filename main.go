package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"rpsrockets/config"
	"rpsrockets/server"
)

// RPS Rockets 入口：启动 HTTP + WebSocket 观战服务，或以无界面模式跑固定帧数
func main() {
	envFile := flag.String("env", ".env", "optional .env file with RPS_* settings")
	cfg, err := config.Load(envFileFromArgs(*envFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	registerFlags(&cfg)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	// 使用 zap 日志库写入日志文件（带滚动）
	if err := server.InitLogger(cfg.LogFile, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer server.SyncLogger()

	if cfg.Headless {
		runHeadless(cfg)
		return
	}

	rm := server.InitRoomManager(cfg.Game, cfg.TicksPerSecond)
	// 先预创建默认房间，便于快速试跑
	if _, err := rm.GetOrCreateRoom(cfg.RoomID); err != nil {
		server.Log.Fatalf("create room %s: %v", cfg.RoomID, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.HandleWS)
	mux.HandleFunc("/state", server.HandleState)
	// 管理与监控接口
	mux.HandleFunc("/admin/config", server.HandleAdminConfig)
	mux.HandleFunc("/admin/action", server.HandleAdminAction)
	mux.HandleFunc("/metrics", server.HandleMetrics)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		server.Log.Infof("RPS Rockets listening on %s; spectate at ws://localhost%v/ws?room=%s", cfg.Addr, cfg.Addr, cfg.RoomID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			server.Log.Fatalf("listen: %v", err)
		}
	}()

	// 优雅退出（Ctrl+C）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	server.Log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		server.Log.Warnf("shutdown: %v", err)
	}
	rm.StopAll()
}

// envFileFromArgs 在解析其它参数前先取出 -env，以便 .env 的值能被命令行覆盖
func envFileFromArgs(def string) string {
	for i, a := range os.Args[1:] {
		switch {
		case a == "-env" || a == "--env":
			if i+2 < len(os.Args) {
				return os.Args[i+2]
			}
		case strings.HasPrefix(a, "-env="):
			return strings.TrimPrefix(a, "-env=")
		case strings.HasPrefix(a, "--env="):
			return strings.TrimPrefix(a, "--env=")
		}
	}
	return def
}

func registerFlags(cfg *config.Config) {
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "server listen address, e.g. :8080")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.StringVar(&cfg.RoomID, "room", cfg.RoomID, "default room id")
	flag.IntVar(&cfg.TicksPerSecond, "tps", cfg.TicksPerSecond, "ticks per second")
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run without HTTP for -ticks ticks and exit")
	flag.IntVar(&cfg.HeadlessTicks, "ticks", cfg.HeadlessTicks, "number of ticks in headless mode")

	g := &cfg.Game
	flag.Float64Var(&g.WallShortSide, "wall", g.WallShortSide, "short side of the arena")
	flag.IntVar(&g.NumPlayers, "players", g.NumPlayers, "number of players")
	flag.IntVar(&g.TickBudget, "tick-budget", g.TickBudget, "informational tick budget (0 = none)")
	flag.IntVar(&g.NumShelters, "shelters", g.NumShelters, "number of shelters")
	flag.IntVar(&g.NumEnemies, "enemies", g.NumEnemies, "number of enemies")
	flag.IntVar(&g.NumFood, "food", g.NumFood, "number of food items")
	flag.IntVar(&g.FoodRegenerationTime, "food-regen", g.FoodRegenerationTime, "ticks before eaten food regenerates")
	flag.BoolVar(&g.FoodColorsPlayer, "food-colors", g.FoodColorsPlayer, "players take the colour of the food they eat")
	flag.IntVar(&g.StunDuration, "stun", g.StunDuration, "ticks a stun lasts (0 = until unstunned)")
	flag.Int64Var(&g.Seed, "seed", g.Seed, "random seed")
}

func runHeadless(cfg config.Config) {
	room, err := server.NewRoom(cfg.RoomID, cfg.Game, cfg.TicksPerSecond)
	if err != nil {
		server.Log.Fatalf("create room: %v", err)
	}
	start := time.Now()
	for i := 0; i < cfg.HeadlessTicks; i++ {
		room.Step()
	}
	snap := room.LatestSnapshot()
	alive := 0
	for _, p := range snap.Players {
		if p.State != "dead" {
			alive++
		}
	}
	server.Log.Infof("headless run done: ticks=%d elapsed=%s alive=%d projectiles=%d stats=%+v",
		snap.Tick, time.Since(start), alive, len(snap.Projectiles), snap.Stats)
	fmt.Printf("ticks=%d alive=%d projectiles=%d food_eaten=%d stuns=%d\n",
		snap.Tick, alive, len(snap.Projectiles), snap.Stats.FoodEaten, snap.Stats.Stuns)
}
