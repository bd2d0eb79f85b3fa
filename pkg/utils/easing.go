package utils

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutQuad 二次方缓出，开始快结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FadeOut 剩余 remaining 帧时的不透明度，最后 fadeFrames 帧内逐渐消失
func FadeOut(remaining, fadeFrames int) float64 {
	if fadeFrames <= 0 {
		if remaining > 0 {
			return 1
		}
		return 0
	}
	return EaseOutQuad(Clamp01(float64(remaining) / float64(fadeFrames)))
}
