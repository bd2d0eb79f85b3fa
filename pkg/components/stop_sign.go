package components

// StopSign 停车标志
// 玩家必须在停车区内低速停留 StopTimer 帧
type StopSign struct {
	ObjectBase
	// StopTimer 剩余需要停车的帧数，只在停车时递减，重新起步时暂停而不重置
	StopTimer  int
	HasStopped bool
}

func (s *StopSign) Type() ObjectType { return ObjectStopSign }

func (s *StopSign) Clone() TrafficObject {
	c := *s
	return &c
}

func (s *StopSign) sealed() {}

// SecondsLeft 剩余等待秒数（向上取整），用于倒计时显示
func (s *StopSign) SecondsLeft(ticksPerSecond int) int {
	if s.StopTimer <= 0 || ticksPerSecond <= 0 {
		return 0
	}
	return (s.StopTimer + ticksPerSecond - 1) / ticksPerSecond
}
