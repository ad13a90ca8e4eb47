package game

// Enemy 敌人占位实体，目前只有位置
type Enemy struct {
	pos Coordinate
}

func NewEnemy(pos Coordinate) Enemy  { return Enemy{pos: pos} }
func (e Enemy) Position() Coordinate { return e.pos }
func (e Enemy) X() float64           { return e.pos.X }
func (e Enemy) Y() float64           { return e.pos.Y }
