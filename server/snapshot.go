package server

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"

	"rpsrockets/game"
)

// PlayerView 广播给观战端的玩家状态
type PlayerView struct {
	ID        string  `json:"id" msgpack:"id"`
	X         float64 `json:"x" msgpack:"x"`
	Y         float64 `json:"y" msgpack:"y"`
	Direction float64 `json:"dir" msgpack:"dir"`
	Speed     float64 `json:"speed" msgpack:"speed"`
	Diameter  float64 `json:"diameter" msgpack:"diameter"`
	Color     [4]int  `json:"color" msgpack:"color"`
	State     string  `json:"state" msgpack:"state"`
	Shape     string  `json:"shape" msgpack:"shape"`
}

type FoodView struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"r" msgpack:"r"`
	Color  [4]int  `json:"color" msgpack:"color"`
	Eaten  bool    `json:"eaten" msgpack:"eaten"`
}

type ProjectileView struct {
	X         float64 `json:"x" msgpack:"x"`
	Y         float64 `json:"y" msgpack:"y"`
	Direction float64 `json:"dir" msgpack:"dir"`
	Radius    float64 `json:"r" msgpack:"r"`
	Type      string  `json:"type" msgpack:"type"`
	Owner     string  `json:"owner" msgpack:"owner"`
}

type ShelterView struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"r" msgpack:"r"`
	Color  [4]int  `json:"color" msgpack:"color"`
}

type EnvView struct {
	MinX float64 `json:"min_x" msgpack:"min_x"`
	MaxX float64 `json:"max_x" msgpack:"max_x"`
	MinY float64 `json:"min_y" msgpack:"min_y"`
	MaxY float64 `json:"max_y" msgpack:"max_y"`
	Type string  `json:"type" msgpack:"type"`
}

// Snapshot 一帧的完整世界视图（渲染端只读）
type Snapshot struct {
	Type        string            `json:"type" msgpack:"type"`
	Room        string            `json:"room" msgpack:"room"`
	Session     string            `json:"session" msgpack:"session"`
	Tick        int               `json:"tick" msgpack:"tick"`
	Env         EnvView           `json:"env" msgpack:"env"`
	Players     []PlayerView      `json:"players" msgpack:"players"`
	Food        []FoodView        `json:"food" msgpack:"food"`
	Projectiles []ProjectileView  `json:"projectiles" msgpack:"projectiles"`
	Shelters    []ShelterView     `json:"shelters" msgpack:"shelters"`
	Enemies     []game.Coordinate `json:"enemies" msgpack:"enemies"`
	Stats       game.Stats        `json:"stats" msgpack:"stats"`
}

func colorView(c game.Color) [4]int { return [4]int{c.R(), c.G(), c.B(), c.A()} }

// BuildSnapshot 通过游戏的只读访问器构建快照
func BuildSnapshot(roomID, session string, g *game.Game) *Snapshot {
	env := g.Env()
	s := &Snapshot{
		Type:    "state",
		Room:    roomID,
		Session: session,
		Tick:    g.Ticks(),
		Env: EnvView{
			MinX: env.MinX(), MaxX: env.MaxX(),
			MinY: env.MinY(), MaxY: env.MaxY(),
			Type: env.Type().String(),
		},
		Stats: g.Stats(),
	}
	for _, p := range g.Players() {
		s.Players = append(s.Players, PlayerView{
			ID:        p.ID(),
			X:         p.X(),
			Y:         p.Y(),
			Direction: p.Direction(),
			Speed:     p.Speed(),
			Diameter:  p.Diameter(),
			Color:     colorView(p.Color()),
			State:     p.State().String(),
			Shape:     p.Shape().String(),
		})
	}
	for _, f := range g.Food() {
		s.Food = append(s.Food, FoodView{X: f.X(), Y: f.Y(), Radius: f.Radius(), Color: colorView(f.Color()), Eaten: f.IsEaten()})
	}
	for _, pr := range g.Projectiles() {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			X: pr.X(), Y: pr.Y(), Direction: pr.Direction(), Radius: pr.Radius(),
			Type: pr.Type().String(), Owner: pr.OwnerID(),
		})
	}
	for _, sh := range g.Shelters() {
		s.Shelters = append(s.Shelters, ShelterView{X: sh.X(), Y: sh.Y(), Radius: sh.Radius(), Color: colorView(sh.Color())})
	}
	for _, e := range g.Enemies() {
		s.Enemies = append(s.Enemies, e.Position())
	}
	return s
}

// frames 同一快照的两种编码，按需生成且只生成一次
type frames struct {
	snap     *Snapshot
	text     []byte
	binary   []byte
	textErr  error
	binErr   error
	textDone bool
	binDone  bool
}

func (f *frames) JSON() ([]byte, error) {
	if !f.textDone {
		f.text, f.textErr = json.Marshal(f.snap)
		f.textDone = true
	}
	return f.text, f.textErr
}

func (f *frames) Msgpack() ([]byte, error) {
	if !f.binDone {
		f.binary, f.binErr = msgpack.Marshal(f.snap)
		f.binDone = true
	}
	return f.binary, f.binErr
}
