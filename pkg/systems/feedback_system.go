package systems

import "github.com/Akhipbm/Traffic-runner/pkg/components"

// FeedbackSystem 管理屏幕中央的临时提示消息
//
// 消息只影响显示，计分逻辑从不读取消息内容。
type FeedbackSystem struct {
	duration int // 每条消息的显示帧数
}

// NewFeedbackSystem 创建提示消息系统
func NewFeedbackSystem(duration int) *FeedbackSystem {
	return &FeedbackSystem{duration: duration}
}

// Show 显示消息并重置倒计时
func (fs *FeedbackSystem) Show(metrics *components.GameMetrics, text string, msgType components.MessageType) {
	metrics.Message = components.FeedbackMessage{
		Text:  text,
		Type:  msgType,
		Timer: fs.duration,
	}
}

// ShowOnce 仅当当前显示的文本不同时才显示，避免每帧重置同一条提醒
func (fs *FeedbackSystem) ShowOnce(metrics *components.GameMetrics, text string, msgType components.MessageType) {
	if metrics.Message.Text == text {
		return
	}
	fs.Show(metrics, text, msgType)
}

// Update 推进消息倒计时，归零时清空文本
func (fs *FeedbackSystem) Update(metrics *components.GameMetrics) {
	if metrics.Message.Timer <= 0 {
		return
	}
	metrics.Message.Timer--
	if metrics.Message.Timer == 0 {
		metrics.Message.Text = ""
	}
}
