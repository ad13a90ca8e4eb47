package game

func HitsNorthWall(p *Player, e Environment) bool { return p.pos.Y-p.Radius() < e.minY }
func HitsSouthWall(p *Player, e Environment) bool { return p.pos.Y+p.Radius() > e.maxY }
func HitsWestWall(p *Player, e Environment) bool  { return p.pos.X-p.Radius() < e.minX }
func HitsEastWall(p *Player, e Environment) bool  { return p.pos.X+p.Radius() > e.maxX }

// HitsWall 玩家的圆是否越过任意一面墙
func HitsWall(p *Player, e Environment) bool {
	return HitsWestWall(p, e) || HitsEastWall(p, e) || HitsNorthWall(p, e) || HitsSouthWall(p, e)
}

// ClampToWalls 把越墙的玩家推回墙内侧，两个轴独立处理；返回是否发生了修正。
// 先南后北、先东后西：直径超过场地高（宽）时两侧都命中，最终贴北（西）墙；
// 半径再超过高（宽）时圆心 minY+r 落在场地之外。保持这一顺序，不做缩放或居中。
func ClampToWalls(p *Player, e Environment) bool {
	hit := false
	if HitsSouthWall(p, e) {
		p.pos.Y = e.maxY - p.Radius()
		hit = true
	}
	if HitsNorthWall(p, e) {
		p.pos.Y = e.minY + p.Radius()
		hit = true
	}
	if HitsEastWall(p, e) {
		p.pos.X = e.maxX - p.Radius()
		hit = true
	}
	if HitsWestWall(p, e) {
		p.pos.X = e.minX + p.Radius()
		hit = true
	}
	return hit
}

// HasWallCollision 是否有玩家越墙
func (g *Game) HasWallCollision() bool {
	for i := range g.players {
		if HitsWall(&g.players[i], g.env) {
			return true
		}
	}
	return false
}

// firstCollision 按 (i, j) 下标顺序找到第一对相撞的存活玩家
func (g *Game) firstCollision() (int, int, bool) {
	for i := range g.players {
		if !g.players[i].IsAlive() {
			continue
		}
		for j := i + 1; j < len(g.players); j++ {
			if g.players[j].IsAlive() && AreColliding(&g.players[i], &g.players[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// HasCollision 是否存在相撞的存活玩家
func (g *Game) HasCollision() bool {
	_, _, ok := g.firstCollision()
	return ok
}

// CollisionMembers 所有相撞玩家对的下标，按 i, j 成对展开
func (g *Game) CollisionMembers() []int {
	var out []int
	for i := range g.players {
		for j := i + 1; j < len(g.players); j++ {
			if AreColliding(&g.players[i], &g.players[j]) {
				out = append(out, i, j)
			}
		}
	}
	return out
}

// WinningPlayerIndex 第一个玩家按颜色胜出则返回 i1，否则（含平局）返回 i2
func (g *Game) WinningPlayerIndex(i1, i2 int) (int, error) {
	p1, err := g.player(i1)
	if err != nil {
		return 0, err
	}
	p2, err := g.player(i2)
	if err != nil {
		return 0, err
	}
	if IsFirstPlayerWinner(p1, p2) {
		return i1, nil
	}
	return i2, nil
}

// LosingPlayerIndex 与 WinningPlayerIndex 相对
func (g *Game) LosingPlayerIndex(i1, i2 int) (int, error) {
	w, err := g.WinningPlayerIndex(i1, i2)
	if err != nil {
		return 0, err
	}
	if w == i1 {
		return i2, nil
	}
	return i1, nil
}

// HasCollisionWithProjectile 是否有投射物碰到任意玩家（不排除发射者）
func (g *Game) HasCollisionWithProjectile() bool {
	for i := range g.projectiles {
		for j := range g.players {
			if g.projectiles[i].Hits(&g.players[j]) {
				return true
			}
		}
	}
	return false
}

// HasAnyPlayerFoodCollision 是否有玩家碰到未被吃的食物
func (g *Game) HasAnyPlayerFoodCollision() bool {
	for i := range g.players {
		for j := range g.food {
			if g.food[j].CanBeEatenBy(&g.players[i]) {
				return true
			}
		}
	}
	return false
}
