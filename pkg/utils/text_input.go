package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInput 单行文本输入框（登录界面的驾驶员名称）
// 只接受 Accept 允许的字符，长度不超过 MaxLength（按字符计）
type TextInput struct {
	MaxLength int
	Accept    func(r rune) bool

	runes         []rune
	cursorTimer   float64
	cursorVisible bool
}

// NewTextInput 创建文本输入框
func NewTextInput(maxLength int, accept func(r rune) bool) *TextInput {
	return &TextInput{
		MaxLength:     maxLength,
		Accept:        accept,
		cursorVisible: true,
	}
}

// Update 读取本帧的键盘输入并更新光标闪烁
func (t *TextInput) Update(deltaTime float64) {
	t.cursorTimer += deltaTime
	if t.cursorTimer >= cursorBlinkInterval {
		t.cursorTimer = 0
		t.cursorVisible = !t.cursorVisible
	}

	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		t.Insert(string(chars))
	}

	// 第1帧立即响应，按住半秒后每3帧连续删除
	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	if d == 1 || (d >= 30 && d%3 == 0) {
		t.Backspace()
	}
}

// Insert 在末尾追加文本，过滤不允许的字符，超出长度的部分被丢弃
func (t *TextInput) Insert(text string) {
	for _, r := range text {
		if t.Accept != nil && !t.Accept(r) {
			continue
		}
		if t.MaxLength > 0 && len(t.runes) >= t.MaxLength {
			break
		}
		t.runes = append(t.runes, r)
	}
	t.showCursor()
}

// Backspace 删除最后一个字符
func (t *TextInput) Backspace() {
	if len(t.runes) == 0 {
		return
	}
	t.runes = t.runes[:len(t.runes)-1]
	t.showCursor()
}

// Value 当前文本
func (t *TextInput) Value() string {
	return string(t.runes)
}

// Clear 清空文本
func (t *TextInput) Clear() {
	t.runes = t.runes[:0]
	t.showCursor()
}

// Display 带光标的显示文本
func (t *TextInput) Display() string {
	if t.cursorVisible {
		return string(t.runes) + "_"
	}
	return string(t.runes)
}

func (t *TextInput) showCursor() {
	t.cursorTimer = 0
	t.cursorVisible = true
}
