// Package audio 程序生成的提示音
//
// 不依赖任何音频资源文件：每种提示音由若干正弦音符拼接而成，
// 合成为 16 位小端立体声 PCM，可直接交给 Ebitengine 的音频播放器。
package audio

import (
	"encoding/binary"
	"math"
)

// Note 一个音符
type Note struct {
	Freq     float64 // 频率（Hz），0 表示静音
	Duration float64 // 时长（秒）
}

// Tone 由音符序列组成的提示音
type Tone struct {
	Notes  []Note
	Volume float64 // 0..1
}

// fadeSeconds 每个音符首尾的淡入淡出时长，避免爆音
const fadeSeconds = 0.005

// bytesPerFrame 16 位立体声每帧字节数
const bytesPerFrame = 4

// Synthesize 把提示音合成为 16 位小端立体声 PCM
//
// 参数:
//   - sampleRate: 采样率（Hz）
//
// 返回:
//   - []byte: PCM 数据，长度总是 4 的倍数
func (t Tone) Synthesize(sampleRate int) []byte {
	if sampleRate <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, t.Volume))

	total := 0
	for _, n := range t.Notes {
		total += frameCount(n.Duration, sampleRate)
	}
	buf := make([]byte, total*bytesPerFrame)

	offset := 0
	for _, n := range t.Notes {
		frames := frameCount(n.Duration, sampleRate)
		fade := int(fadeSeconds * float64(sampleRate))
		for i := 0; i < frames; i++ {
			var v float64
			if n.Freq > 0 {
				v = math.Sin(2*math.Pi*n.Freq*float64(i)/float64(sampleRate)) * vol * envelope(i, frames, fade)
			}
			s := uint16(int16(v * math.MaxInt16))
			binary.LittleEndian.PutUint16(buf[offset:], s)
			binary.LittleEndian.PutUint16(buf[offset+2:], s)
			offset += bytesPerFrame
		}
	}
	return buf
}

// Duration 提示音总时长（秒）
func (t Tone) Duration() float64 {
	d := 0.0
	for _, n := range t.Notes {
		d += n.Duration
	}
	return d
}

func frameCount(seconds float64, sampleRate int) int {
	if seconds <= 0 {
		return 0
	}
	return int(seconds * float64(sampleRate))
}

// envelope 线性淡入淡出的增益
func envelope(i, frames, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	g := 1.0
	if i < fade {
		g = float64(i) / float64(fade)
	}
	if tail := frames - 1 - i; tail < fade {
		g = math.Min(g, float64(tail)/float64(fade))
	}
	return g
}
