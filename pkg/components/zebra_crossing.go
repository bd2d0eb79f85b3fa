package components

import (
	"fmt"

	"github.com/Akhipbm/Traffic-runner/pkg/ecs"
)

// Pedestrian 斑马线上的行人
type Pedestrian struct {
	ID           string
	X            float64 // 横向位置（屏幕坐标）
	Speed        float64 // 步行速度（像素/帧）
	Direction    int     // 1 向右，-1 向左
	WalkingPhase float64 // 步态相位，用于腿部动画
}

// PedestrianID 生成斑马线下第 index 个行人的ID
func PedestrianID(crossing ecs.EntityID, index int) string {
	return fmt.Sprintf("%d_p_%d", crossing, index)
}

// ZebraCrossing 斑马线
type ZebraCrossing struct {
	ObjectBase
	Pedestrians []Pedestrian
	// Yielded 玩家是否曾在斑马线前停车礼让
	Yielded bool
}

func (z *ZebraCrossing) Type() ObjectType { return ObjectZebraCrossing }

func (z *ZebraCrossing) Clone() TrafficObject {
	c := *z
	c.Pedestrians = make([]Pedestrian, len(z.Pedestrians))
	copy(c.Pedestrians, z.Pedestrians)
	return &c
}

func (z *ZebraCrossing) sealed() {}
