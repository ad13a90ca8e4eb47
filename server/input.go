package server

import (
	"fmt"
	"strings"

	"rpsrockets/game"
)

// Input 玩家意图，由房间在 Tick 线程中转交给游戏
type Input struct {
	PlayerIndex int
	Action      game.ActionType
	Release     bool  // true 表示松开（从按住集合移除）
	Seq         int64 // 调用方序列号，用于去重；0 表示不检查
}

// 入站输入的 JSON 结构
// 示例：{"type":"action","player":0,"action":"turn_left","release":false,"seq":3}
type InputMessage struct {
	Type    string `json:"type"`
	Player  int    `json:"player"`
	Action  string `json:"action"`
	Release bool   `json:"release,omitempty"`
	Seq     int64  `json:"seq,omitempty"`
}

// ToInput 校验并转换为 Input
func (m InputMessage) ToInput() (Input, error) {
	if t := strings.ToLower(m.Type); t != "" && t != "action" {
		return Input{}, fmt.Errorf("unsupported message type %q", m.Type)
	}
	a, err := game.ParseAction(m.Action)
	if err != nil {
		return Input{}, err
	}
	if m.Player < 0 {
		return Input{}, fmt.Errorf("player index %d: %w", m.Player, game.ErrIndexOutOfRange)
	}
	return Input{PlayerIndex: m.Player, Action: a, Release: m.Release, Seq: m.Seq}, nil
}
