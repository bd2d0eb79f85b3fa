package components

// LightState 信号灯颜色
type LightState int

const (
	LightRed LightState = iota
	LightYellow
	LightGreen
)

// String 返回颜色名
func (s LightState) String() string {
	switch s {
	case LightRed:
		return "RED"
	case LightYellow:
		return "YELLOW"
	case LightGreen:
		return "GREEN"
	default:
		return "UNKNOWN"
	}
}

// TrafficLight 红绿灯
// 循环：RED -> YELLOW(->GREEN) -> GREEN -> YELLOW(->RED) -> RED
type TrafficLight struct {
	ObjectBase
	State LightState
	// NextState 黄灯之后的颜色，区分"即将放行"和"即将停车"
	NextState LightState
	// Timer 当前颜色剩余帧数
	Timer int
	// WaitTicks 玩家在停止线前连续静止等待的帧数，离开等待状态即归零
	WaitTicks int
}

func (l *TrafficLight) Type() ObjectType { return ObjectTrafficLight }

func (l *TrafficLight) Clone() TrafficObject {
	c := *l
	return &c
}

func (l *TrafficLight) sealed() {}

// IsEffectivelyRed 红灯或即将转绿的黄灯都视为禁止通行
func (l *TrafficLight) IsEffectivelyRed() bool {
	return l.State == LightRed || (l.State == LightYellow && l.NextState == LightGreen)
}

// IsYellowToRed 即将转红的黄灯
func (l *TrafficLight) IsYellowToRed() bool {
	return l.State == LightYellow && l.NextState == LightRed
}
