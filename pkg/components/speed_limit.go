package components

// SpeedLimitSign 限速牌，通过后设置当前区域限速
type SpeedLimitSign struct {
	ObjectBase
	Limit float64
}

func (s *SpeedLimitSign) Type() ObjectType { return ObjectSpeedLimit }

func (s *SpeedLimitSign) Clone() TrafficObject {
	c := *s
	return &c
}

func (s *SpeedLimitSign) sealed() {}
