package game

import (
	"fmt"
	"strings"
)

// ActionType 玩家意图
type ActionType int

const (
	ActionTurnLeft ActionType = iota
	ActionTurnRight
	ActionAccelerate
	ActionBrake
	ActionAccBackward
	ActionShoot
	ActionShootStunRocket
	ActionNone
)

var actionNames = [...]string{
	ActionTurnLeft:        "turn_left",
	ActionTurnRight:       "turn_right",
	ActionAccelerate:      "accelerate",
	ActionBrake:           "brake",
	ActionAccBackward:     "acc_backward",
	ActionShoot:           "shoot",
	ActionShootStunRocket: "shoot_stun_rocket",
	ActionNone:            "none",
}

func (a ActionType) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("ActionType(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction 将文本命令解析为 ActionType（大小写不敏感）
func ParseAction(s string) (ActionType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range actionNames {
		if name == s {
			return ActionType(i), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}

// ActionSet 玩家当前按住的动作集合。
// 每个 Tick 按 ActionType 数值升序执行：同时按住 turn_left 与 turn_right 时
// 先左后右，两者相互抵消。
type ActionSet uint16

func (s *ActionSet) Add(a ActionType) {
	if a >= ActionNone || a < 0 {
		return
	}
	*s |= 1 << uint(a)
}

func (s *ActionSet) Remove(a ActionType) {
	if a >= ActionNone || a < 0 {
		return
	}
	*s &^= 1 << uint(a)
}

func (s ActionSet) Has(a ActionType) bool {
	if a >= ActionNone || a < 0 {
		return false
	}
	return s&(1<<uint(a)) != 0
}

func (s ActionSet) Empty() bool { return s == 0 }

// Actions 升序列出集合内动作
func (s ActionSet) Actions() []ActionType {
	var out []ActionType
	for a := ActionTurnLeft; a < ActionNone; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
