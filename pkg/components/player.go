package components

// Lane 车道编号（从左到右）
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight
)

// LaneCount 道路车道数
const LaneCount = 3

// String 返回车道名称
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "LEFT"
	case LaneCenter:
		return "CENTER"
	case LaneRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// PlayerComponent 玩家车辆状态
// 只由每帧模拟修改（运动学积分和规则判定）
type PlayerComponent struct {
	Lane     Lane    // 当前目标车道
	Speed    float64 // 当前速度（像素/帧），范围 [0, MaxSpeed]
	MaxSpeed float64 // 最大速度
	X        float64 // 渲染X坐标（平滑追赶目标车道）
	Y        float64 // 车头Y坐标，固定不变
}
