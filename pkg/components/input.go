package components

// InputIntent 一帧的驾驶输入
//
// Left/Right 是边沿触发（按下的那一帧为 true），
// Accelerate/Brake 是电平触发（按住期间每帧为 true）。
type InputIntent struct {
	Left       bool
	Right      bool
	Accelerate bool
	Brake      bool
}
