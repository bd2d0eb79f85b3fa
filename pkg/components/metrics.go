package components

// MessageType 提示消息的类型，决定显示颜色
type MessageType int

const (
	MessageNeutral MessageType = iota
	MessageGood
	MessageBad
)

// String 返回消息类型名
func (t MessageType) String() string {
	switch t {
	case MessageGood:
		return "good"
	case MessageBad:
		return "bad"
	default:
		return "neutral"
	}
}

// FeedbackMessage 屏幕中央的临时提示
type FeedbackMessage struct {
	Text  string
	Type  MessageType
	Timer int // 剩余显示帧数，归零时清空文本
}

// Infractions 违规统计
type Infractions struct {
	RedLights   int
	StopSigns   int
	Speeding    int
	Bumps       int
	Pedestrians int
	Crashes     int
}

// Total 返回违规总数
func (i Infractions) Total() int {
	return i.RedLights + i.StopSigns + i.Speeding + i.Bumps + i.Pedestrians + i.Crashes
}

// GameMetrics 一局游戏的计分数据
type GameMetrics struct {
	Score       float64 // 可以为负，低于下限即失败
	Distance    float64 // 行驶距离（米），单调不减
	Infractions Infractions
	Message     FeedbackMessage
}
