package server

import (
	"sync"

	"rpsrockets/game"
)

// RoomManager 管理多个房间的生命周期
type RoomManager struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	opts game.Options
	tps  int
}

var (
	defaultManager *RoomManager
	once           sync.Once
)

// NewRoomManager 新房间统一使用 opts 与 tps
func NewRoomManager(opts game.Options, tps int) *RoomManager {
	return &RoomManager{rooms: make(map[string]*Room), opts: opts, tps: tps}
}

// InitRoomManager 以给定参数初始化单例，首次调用生效
func InitRoomManager(opts game.Options, tps int) *RoomManager {
	once.Do(func() {
		defaultManager = NewRoomManager(opts, tps)
	})
	return defaultManager
}

// GetRoomManager 单例房间管理器（未初始化时使用默认参数）
func GetRoomManager() *RoomManager {
	return InitRoomManager(game.DefaultOptions(), DefaultTicksPerSecond)
}

// GetRoom 只查不建
func (m *RoomManager) GetRoom(id string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

// GetOrCreateRoom 获取或创建房间，并确保开始 Tick
func (m *RoomManager) GetOrCreateRoom(id string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		var err error
		r, err = NewRoom(id, m.opts, m.tps)
		if err != nil {
			return nil, err
		}
		m.rooms[id] = r
		r.StartTicker()
	}
	return r, nil
}

// StopAll 停止所有房间
func (m *RoomManager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.rooms {
		r.Stop()
		delete(m.rooms, id)
	}
}
