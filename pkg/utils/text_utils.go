package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 按单词把文本折成不超过 maxWidth 的多行
// 参数:
//   - s: 要换行的文本
//   - face: 测量用字体（未缩放）
//   - maxWidth: 最大宽度（像素，与 face 同一尺度）
//
// 返回:
//   - []string: 每个元素为一行；单个单词超宽时按字符强制断开
func WrapText(s string, face text.Face, maxWidth float64) []string {
	if s == "" || face == nil || maxWidth <= 0 {
		return []string{s}
	}
	if measureTextWidth(s, face) <= maxWidth {
		return []string{s}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measureTextWidth(candidate, face) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		// 超宽单词逐字符切分，剩余部分作为新行的开头
		for measureTextWidth(word, face) > maxWidth {
			cut := fitPrefix(word, face, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// fitPrefix 不超过 maxWidth 的最长前缀字节长度，至少包含一个字符
func fitPrefix(word string, face text.Face, maxWidth float64) int {
	_, first := utf8.DecodeRuneInString(word)
	cut := first
	for cut < len(word) {
		_, size := utf8.DecodeRuneInString(word[cut:])
		if measureTextWidth(word[:cut+size], face) > maxWidth {
			break
		}
		cut += size
	}
	return cut
}

// measureTextWidth 测量文本宽度
func measureTextWidth(s string, face text.Face) float64 {
	if s == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(s, face, 0)
	return width
}
