package game

import "go.uber.org/zap"

// Tick 推进世界一帧，顺序固定：
// 玩家碰撞 → 投射物移动 → 投射物命中 → 惯性 → 庇护所漂移 → 按住的动作 →
// 撞墙修正 → 食物计时 → 吃食物 → 食物再生 → 发射投射物 → 眩晕计时 → 帧计数
func (g *Game) Tick() {
	g.resolvePlayerCollision()
	g.moveProjectiles()
	g.resolveProjectileCollisions()
	g.applyInertia()
	g.driftShelters()
	g.doActions()
	g.doWallCollisions()
	g.incrementFoodTimers()
	g.makePlayersEatFood()
	g.regenerateFood()
	g.spawnProjectiles()
	g.advanceStuns()
	g.ticks++
}

// resolvePlayerCollision 只处理第一对相撞玩家：胜者变大，败者变小
func (g *Game) resolvePlayerCollision() {
	i, j, ok := g.firstCollision()
	if !ok {
		return
	}
	w, l := j, i
	if IsFirstPlayerWinner(&g.players[i], &g.players[j]) {
		w, l = i, j
	}
	g.players[w].Grow()
	g.players[l].Shrink()
	g.stats.RPSCollisions++
	g.log.Debug("rps collision",
		zap.Int("tick", g.ticks),
		zap.String("winner", g.players[w].id),
		zap.String("loser", g.players[l].id),
		zap.Float64("winner_diameter", g.players[w].diameter),
		zap.Float64("loser_diameter", g.players[l].diameter))
}

func (g *Game) moveProjectiles() {
	for i := range g.projectiles {
		g.projectiles[i].Move()
	}
}

// resolveProjectileCollisions 眩晕火箭击中非发射者的存活玩家：玩家眩晕、火箭消失。
// 普通火箭命中没有效果。离开场地的投射物一并丢弃。移除后保持剩余顺序。
func (g *Game) resolveProjectileCollisions() {
	kept := g.projectiles[:0]
	for i := range g.projectiles {
		pr := g.projectiles[i]
		if pr.kind == StunRocket && g.stunFirstHit(&pr) {
			continue
		}
		if pr.OutsideOf(g.env) {
			g.stats.ProjectilesLost++
			continue
		}
		kept = append(kept, pr)
	}
	// 清掉尾部残留，避免旧值被误读
	for i := len(kept); i < len(g.projectiles); i++ {
		g.projectiles[i] = Projectile{}
	}
	g.projectiles = kept
}

func (g *Game) stunFirstHit(pr *Projectile) bool {
	for j := range g.players {
		pl := &g.players[j]
		if pl.id == pr.ownerID || !pl.IsAlive() || !pr.Hits(pl) {
			continue
		}
		pl.Stun()
		g.stats.Stuns++
		g.log.Debug("player stunned",
			zap.Int("tick", g.ticks),
			zap.String("player", pl.id),
			zap.String("by", pr.ownerID))
		return true
	}
	return false
}

// applyInertia 有速度的玩家先移动，再因摩擦减速一步
func (g *Game) applyInertia() {
	for i := range g.players {
		p := &g.players[i]
		if p.speed != 0 {
			p.Move()
			p.Brake()
		}
	}
}

func (g *Game) driftShelters() {
	for i := range g.shelters {
		g.shelters[i].Drift()
	}
}

// doActions 执行每个玩家按住的动作（升序）
func (g *Game) doActions() {
	for i := range g.players {
		p := &g.players[i]
		if p.actions.Empty() {
			continue
		}
		for _, a := range p.actions.Actions() {
			p.Apply(a)
		}
	}
}

func (g *Game) doWallCollisions() {
	for i := range g.players {
		if ClampToWalls(&g.players[i], g.env) {
			g.stats.WallCollisions++
		}
	}
}

func (g *Game) incrementFoodTimers() {
	for i := range g.food {
		g.food[i].IncrementTimer()
	}
}

func (g *Game) makePlayersEatFood() {
	for i := range g.players {
		p := &g.players[i]
		if !p.IsAlive() {
			continue
		}
		for j := range g.food {
			f := &g.food[j]
			if !f.CanBeEatenBy(p) {
				continue
			}
			if err := f.Eat(); err != nil {
				g.log.Error("eat food", zap.String("player", p.id), zap.Int("food", j), zap.Error(err))
				continue
			}
			p.Grow()
			if g.opts.FoodColorsPlayer {
				p.SetColor(f.color)
			}
			g.stats.FoodEaten++
			g.log.Debug("food eaten",
				zap.Int("tick", g.ticks),
				zap.String("player", p.id),
				zap.Int("food", j),
				zap.Float64("diameter", p.diameter))
		}
	}
}

func (g *Game) regenerateFood() {
	for i := range g.food {
		f := &g.food[i]
		if !f.ReadyToRegenerate() {
			continue
		}
		f.Regenerate(g.rng, g.env)
		g.stats.FoodRegenerated++
		g.log.Debug("food regenerated",
			zap.Int("tick", g.ticks),
			zap.Int("food", i),
			zap.Float64("x", f.pos.X),
			zap.Float64("y", f.pos.Y))
	}
}

// spawnProjectiles 消费射击事件：普通火箭放在机头外 1.1 倍直径处，
// 眩晕火箭放在机头外半个直径处
func (g *Game) spawnProjectiles() {
	for i := range g.players {
		p := &g.players[i]
		rocket, stun := p.TakePendingShots()
		if rocket {
			pos := p.pos.Add(Heading(p.direction, p.diameter*1.1))
			g.projectiles = append(g.projectiles, NewProjectile(pos, p.direction, Rocket, DefaultProjectileRadius, p.id))
			g.stats.ProjectilesShot++
		}
		if stun {
			pos := p.pos.Add(Heading(p.direction, p.diameter*0.5))
			g.projectiles = append(g.projectiles, NewProjectile(pos, p.direction, StunRocket, DefaultProjectileRadius, p.id))
			g.stats.ProjectilesShot++
		}
	}
}

func (g *Game) advanceStuns() {
	if g.opts.StunDuration <= 0 {
		return
	}
	for i := range g.players {
		p := &g.players[i]
		if !p.IsStunned() {
			continue
		}
		p.stunTicks++
		if p.stunTicks >= g.opts.StunDuration {
			p.Unstun()
			g.log.Debug("player recovered", zap.Int("tick", g.ticks), zap.String("player", p.id))
		}
	}
}
