package components

// SpeedBump 减速带
type SpeedBump struct {
	ObjectBase
	Limit float64 // 通过时允许的最大速度
}

func (b *SpeedBump) Type() ObjectType { return ObjectSpeedBump }

func (b *SpeedBump) Clone() TrafficObject {
	c := *b
	return &c
}

func (b *SpeedBump) sealed() {}
