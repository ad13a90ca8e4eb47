package server

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"rpsrockets/game"
)

// Room 房间世界：一局游戏的权威状态在内存中，由单个 Tick 协程推进。
// 其它协程只能通过通道或原子字段与房间交互。
type Room struct {
	ID        string
	SessionID string

	game *game.Game

	inputChan chan Input
	joinChan  chan *ClientConn
	leaveChan chan string

	spectators map[string]*ClientConn
	lastSeq    map[int]int64

	// 帧内状态
	inputsThisTick int

	// 可热更新的规则（admin 接口写，Tick 协程读）
	maxInputsPerTick atomic.Int64
	paused           atomic.Bool

	tickSeq  atomic.Int64
	latest   atomic.Pointer[Snapshot]
	metrics  *RoomMetrics
	tps      int
	stopChan chan struct{}
	stopOnce sync.Once

	tickerStarted bool
}

// NewRoom 创建房间并按参数开一局游戏
func NewRoom(id string, opts game.Options, ticksPerSecond int) (*Room, error) {
	if opts.Logger == nil {
		opts.Logger = GameLogger(id)
	}
	g, err := game.NewGame(opts)
	if err != nil {
		return nil, fmt.Errorf("room %s: %w", id, err)
	}
	r := &Room{
		ID:         id,
		SessionID:  uuid.NewString(),
		game:       g,
		inputChan:  make(chan Input, 256), // 足够缓冲，避免网络读阻塞影响 Tick
		joinChan:   make(chan *ClientConn, 16),
		leaveChan:  make(chan string, 64),
		spectators: make(map[string]*ClientConn),
		lastSeq:    make(map[int]int64),
		metrics:    &RoomMetrics{},
		tps:        ticksPerSecond,
		stopChan:   make(chan struct{}),
	}
	r.maxInputsPerTick.Store(64)
	r.latest.Store(BuildSnapshot(r.ID, r.SessionID, g))
	Log.Infof("room created: room=%s session=%s players=%d seed=%d",
		id, r.SessionID, g.NumPlayers(), g.Seed())
	return r, nil
}

// Metrics 房间指标
func (r *Room) Metrics() *RoomMetrics { return r.metrics }

// Tick 已推进的帧数（可在任意协程读取）
func (r *Room) Tick() int64 { return r.tickSeq.Load() }

// LatestSnapshot 最近一次广播的快照（只读）
func (r *Room) LatestSnapshot() *Snapshot { return r.latest.Load() }

func (r *Room) MaxInputsPerTick() int     { return int(r.maxInputsPerTick.Load()) }
func (r *Room) SetMaxInputsPerTick(n int) { r.maxInputsPerTick.Store(int64(n)) }
func (r *Room) Paused() bool              { return r.paused.Load() }
func (r *Room) SetPaused(p bool)          { r.paused.Store(p) }

// OnInput 入站输入（不立即改变状态），仅记录意图，等下一次 Tick 处理
func (r *Room) OnInput(in Input) {
	// 不阻塞：输入拥塞时丢弃，保证 Tick 准时
	select {
	case r.inputChan <- in:
	default:
		r.metrics.IncChanFullDiscarded()
	}
}

// AddSpectator 请求在 Tick 线程中加入观战连接；房间已停止时返回 false
func (r *Room) AddSpectator(c *ClientConn) bool {
	select {
	case <-r.stopChan:
		return false
	default:
	}
	select {
	case r.joinChan <- c:
		return true
	case <-r.stopChan:
		return false
	}
}

// RequestLeave 请求在 Tick 线程中移除观战者，避免并发改动房间状态
func (r *Room) RequestLeave(id string) {
	// 阻塞式写入保证移除生效；房间停止后无人消费，直接放弃
	select {
	case r.leaveChan <- id:
	case <-r.stopChan:
	}
}

// BeginTick 重置帧内计数
func (r *Room) BeginTick() {
	r.inputsThisTick = 0
}

// ProcessInputs 处理当前帧的所有连接变更与输入意图（非阻塞 drain）
func (r *Room) ProcessInputs() {
	for {
		select {
		case c := <-r.joinChan:
			r.spectators[c.id] = c
			r.metrics.SetSpectators(len(r.spectators))
			Log.Infof("spectator joined: room=%s spectator=%s binary=%v", r.ID, c.id, c.binary)
		case id := <-r.leaveChan:
			r.removeSpectator(id)
		case in := <-r.inputChan:
			r.applyInput(in)
		default:
			return
		}
	}
}

func (r *Room) applyInput(in Input) {
	if limit := r.MaxInputsPerTick(); limit > 0 && r.inputsThisTick >= limit {
		r.metrics.IncRateLimited()
		return
	}
	// 下标先校验，lastSeq 只记录真实存在的玩家
	if in.PlayerIndex < 0 || in.PlayerIndex >= r.game.NumPlayers() {
		r.metrics.IncRejected()
		Log.Warnf("input rejected: room=%s player=%d action=%s err=%v", r.ID, in.PlayerIndex, in.Action, game.ErrIndexOutOfRange)
		return
	}
	if in.Seq > 0 {
		if in.Seq <= r.lastSeq[in.PlayerIndex] {
			r.metrics.IncOldSeqIgnored()
			return
		}
		r.lastSeq[in.PlayerIndex] = in.Seq
	}
	r.inputsThisTick++

	var err error
	if in.Release {
		err = r.game.ReleaseAction(in.PlayerIndex, in.Action)
	} else {
		err = r.game.DoAction(in.PlayerIndex, in.Action)
	}
	if err != nil {
		r.metrics.IncRejected()
		Log.Warnf("input rejected: room=%s player=%d action=%s err=%v", r.ID, in.PlayerIndex, in.Action, err)
		return
	}
	r.metrics.IncAccepted()
}

// UpdateWorld 推进一帧游戏；暂停时世界静止
func (r *Room) UpdateWorld() {
	if r.Paused() {
		return
	}
	r.game.Tick()
	n := r.tickSeq.Add(1)
	if budget := r.game.TickBudget(); budget > 0 && n == int64(budget) {
		Log.Infof("tick budget reached: room=%s ticks=%d alive=%d", r.ID, n, r.game.CountAlivePlayers())
	}
}

// Broadcast 将当前世界状态广播给所有观战者
func (r *Room) Broadcast() {
	snap := BuildSnapshot(r.ID, r.SessionID, r.game)
	r.latest.Store(snap)
	if len(r.spectators) == 0 {
		return
	}
	f := &frames{snap: snap}
	for id, c := range r.spectators {
		var (
			b   []byte
			err error
		)
		if c.binary {
			b, err = f.Msgpack()
		} else {
			b, err = f.JSON()
		}
		if err != nil {
			Log.Errorf("encode snapshot: room=%s spectator=%s err=%v", r.ID, id, err)
			continue
		}
		if c.Enqueue(b) {
			r.metrics.IncSnapshotSent()
		} else {
			r.metrics.IncSnapshotDropped()
		}
	}
}

// Step 完整的一帧：处理输入 → 更新世界 → 广播结果
func (r *Room) Step() {
	r.BeginTick()
	r.ProcessInputs()
	r.UpdateWorld()
	r.Broadcast()
}

func (r *Room) removeSpectator(id string) {
	if c, ok := r.spectators[id]; ok {
		c.Close()
		delete(r.spectators, id)
		r.metrics.SetSpectators(len(r.spectators))
		Log.Infof("spectator left: room=%s spectator=%s", r.ID, id)
	}
}

// shutdown 关闭所有观战连接（仅在 Tick 协程退出时调用）
func (r *Room) shutdown() {
	for id := range r.spectators {
		r.removeSpectator(id)
	}
}
