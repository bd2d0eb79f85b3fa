package components

import "image/color"

// ObstacleCar 障碍车辆
// 以自身速度同向行驶（0 表示静止），相对玩家的接近速度为两者之差
type ObstacleCar struct {
	ObjectBase
	Lane  Lane
	Speed float64
	Color color.RGBA
}

func (c *ObstacleCar) Type() ObjectType { return ObjectObstacleCar }

func (c *ObstacleCar) Clone() TrafficObject {
	cp := *c
	return &cp
}

func (c *ObstacleCar) sealed() {}
