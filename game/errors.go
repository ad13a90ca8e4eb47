package game

import "errors"

// 调用方可通过 errors.Is 判断的错误类型
var (
	// ErrIndexOutOfRange 玩家/食物/投射物下标越界（调用方违约）
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidOptions 构造参数非法
	ErrInvalidOptions = errors.New("invalid game options")
	// ErrInvalidColor 颜色通道不在 [0,255]
	ErrInvalidColor = errors.New("color channel out of range [0,255]")
	// ErrInvalidBounds 环境边界非法（min >= max）
	ErrInvalidBounds = errors.New("invalid environment bounds")
	// ErrFoodAlreadyEaten 试图吃掉已被吃掉的食物
	ErrFoodAlreadyEaten = errors.New("cannot eat food that already has been eaten")
)
