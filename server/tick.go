package server

import "time"

const (
	// DefaultTicksPerSecond 世界推进频率
	DefaultTicksPerSecond = 60
)

func tickInterval(tps int) time.Duration {
	if tps <= 0 {
		tps = DefaultTicksPerSecond
	}
	return time.Second / time.Duration(tps)
}

// StartTicker 启动房间的 Tick 循环（单线程推进世界）
func (r *Room) StartTicker() {
	if r.tickerStarted {
		return
	}
	r.tickerStarted = true
	go func() {
		ticker := time.NewTicker(tickInterval(r.tps))
		defer ticker.Stop()
		defer r.shutdown()
		for {
			select {
			case <-r.stopChan:
				return
			case <-ticker.C:
				start := time.Now()
				r.Step()
				r.metrics.AddTick(time.Since(start).Nanoseconds())
			}
		}
	}()
}

// Stop 停止 Tick 循环，可重复调用
func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}
