// Package utils 提供 ebiten 输入适配等通用工具函数
package utils

import (
	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 驾驶按键映射，每个动作可以绑定多个键
type KeyBindings struct {
	Left       []ebiten.Key
	Right      []ebiten.Key
	Accelerate []ebiten.Key
	Brake      []ebiten.Key
}

// DefaultKeyBindings 方向键 + WASD
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:       []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:      []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Accelerate: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Brake:      []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
	}
}

// ReadDrivingInput 读取当前帧的驾驶输入（键盘 + 触摸/鼠标）
//
// 换道是边沿触发，加速/刹车是按住生效。
//
// 参数：
//   - b: 按键映射
//   - screenW, screenH: 逻辑屏幕尺寸，用于划分触摸区域
//
// 返回：
//   - components.InputIntent: 本帧的驾驶意图
func ReadDrivingInput(b KeyBindings, screenW, screenH int) components.InputIntent {
	intent := components.InputIntent{
		Left:       anyJustPressed(b.Left),
		Right:      anyJustPressed(b.Right),
		Accelerate: anyPressed(b.Accelerate),
		Brake:      anyPressed(b.Brake),
	}

	pressed, x, y := GetPointerState()
	if pressed {
		justPressed, _, _ := IsPointerJustPressed()
		intent = MergeIntents(intent, TouchIntent(x, y, screenW, screenH, justPressed))
	}
	return intent
}

// TouchIntent 把一次触摸（或鼠标按下）映射为驾驶意图
//
// 屏幕左右各四分之一为换道区，只在按下的那一帧生效；
// 中间区域上半部分加速，下半部分刹车，按住期间持续生效。
func TouchIntent(x, y, screenW, screenH int, justPressed bool) components.InputIntent {
	var intent components.InputIntent
	if screenW <= 0 || screenH <= 0 {
		return intent
	}

	quarter := screenW / 4
	switch {
	case x < quarter:
		intent.Left = justPressed
	case x >= screenW-quarter:
		intent.Right = justPressed
	case y < screenH/2:
		intent.Accelerate = true
	default:
		intent.Brake = true
	}
	return intent
}

// MergeIntents 按位或合并两个输入来源
func MergeIntents(a, b components.InputIntent) components.InputIntent {
	return components.InputIntent{
		Left:       a.Left || b.Left,
		Right:      a.Right || b.Right,
		Accelerate: a.Accelerate || b.Accelerate,
		Brake:      a.Brake || b.Brake,
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
func IsPointerJustPressed() (bool, int, int) {
	return IsJustTouchedOrClicked()
}

// IsAnyKeyJustPressed 任意一个键刚刚按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	return anyJustPressed(keys)
}
