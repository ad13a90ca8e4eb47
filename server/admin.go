package server

import (
	"encoding/json"
	"net/http"
)

func roomFromQuery(w http.ResponseWriter, r *http.Request) (*Room, bool) {
	roomID := r.URL.Query().Get("room")
	if roomID == "" {
		roomID = "room-1"
	}
	room, err := GetRoomManager().GetOrCreateRoom(roomID)
	if err != nil {
		Log.Errorf("room %s: %v", roomID, err)
		http.Error(w, "room unavailable", http.StatusInternalServerError)
		return nil, false
	}
	return room, true
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HandleAdminConfig 提供房间配置的读取与更新（热更新基本规则）
// GET /admin/config?room=room-1  返回当前配置
// POST /admin/config?room=room-1 以 JSON 载荷更新部分字段
func HandleAdminConfig(w http.ResponseWriter, r *http.Request) {
	room, ok := roomFromQuery(w, r)
	if !ok {
		return
	}

	type cfg struct {
		MaxInputsPerTick *int  `json:"maxInputsPerTick,omitempty"`
		Paused           *bool `json:"paused,omitempty"`
	}

	switch r.Method {
	case http.MethodGet:
		maxInputs, paused := room.MaxInputsPerTick(), room.Paused()
		writeJSON(w, cfg{MaxInputsPerTick: &maxInputs, Paused: &paused})
		return
	case http.MethodPost:
		var body cfg
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if body.MaxInputsPerTick != nil {
			if *body.MaxInputsPerTick < 0 {
				http.Error(w, "maxInputsPerTick must be >= 0", http.StatusBadRequest)
				return
			}
			room.SetMaxInputsPerTick(*body.MaxInputsPerTick)
		}
		if body.Paused != nil {
			room.SetPaused(*body.Paused)
		}
		writeJSON(w, map[string]any{"ok": true})
		Log.Infof("config updated: room=%s maxInputsPerTick=%d paused=%v",
			room.ID, room.MaxInputsPerTick(), room.Paused())
		return
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
}

// HandleAdminAction 本地调试驱动：注入一个动作
// POST /admin/action?room=room-1  {"player":0,"action":"turn_left","release":false}
func HandleAdminAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	room, ok := roomFromQuery(w, r)
	if !ok {
		return
	}
	var msg InputMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	in, err := msg.ToInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	room.OnInput(in)
	writeJSONStatus(w, http.StatusAccepted, map[string]any{"ok": true, "tick": room.Tick()})
}

// HandleState 最近一帧的世界快照
// GET /state?room=room-1
func HandleState(w http.ResponseWriter, r *http.Request) {
	room, ok := roomFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, room.LatestSnapshot())
}

// HandleMetrics 输出指定房间的运行指标
// GET /metrics?room=room-1
func HandleMetrics(w http.ResponseWriter, r *http.Request) {
	room, ok := roomFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]any{
		"room":    room.ID,
		"session": room.SessionID,
		"tick":    room.Tick(),
		"metrics": room.metrics.Snapshot(),
	})
}
