package audio

import (
	"log"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 提示音采样率
const SampleRate = 48000

// 各类提示消息对应的提示音
var (
	// GoodTone 上行双音
	GoodTone = Tone{Volume: 0.35, Notes: []Note{{Freq: 660, Duration: 0.08}, {Freq: 990, Duration: 0.12}}}
	// BadTone 低沉的蜂鸣
	BadTone = Tone{Volume: 0.45, Notes: []Note{{Freq: 180, Duration: 0.12}, {Duration: 0.04}, {Freq: 150, Duration: 0.2}}}
	// NeutralTone 短促提示
	NeutralTone = Tone{Volume: 0.25, Notes: []Note{{Freq: 880, Duration: 0.06}}}
)

// ToneFor 返回消息类型对应的提示音
func ToneFor(t components.MessageType) Tone {
	switch t {
	case components.MessageGood:
		return GoodTone
	case components.MessageBad:
		return BadTone
	default:
		return NeutralTone
	}
}

// CuePlayer 按消息类型播放提示音
// nil 的 CuePlayer 可以安全调用，什么都不做
type CuePlayer struct {
	players map[components.MessageType]*ebaudio.Player
	muted   bool
}

// NewCuePlayer 创建提示音播放器
// 复用已存在的音频上下文，没有时新建一个
func NewCuePlayer() *CuePlayer {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(SampleRate)
	}
	if ctx.SampleRate() != SampleRate {
		log.Printf("[Audio] Warning: context sample rate %d differs from %d", ctx.SampleRate(), SampleRate)
	}

	p := &CuePlayer{players: make(map[components.MessageType]*ebaudio.Player)}
	for _, t := range []components.MessageType{components.MessageNeutral, components.MessageGood, components.MessageBad} {
		p.players[t] = ctx.NewPlayerFromBytes(ToneFor(t).Synthesize(ctx.SampleRate()))
	}
	log.Printf("[Audio] Cue player ready (%d cues)", len(p.players))
	return p
}

// Play 从头播放消息类型对应的提示音
func (p *CuePlayer) Play(t components.MessageType) {
	if p == nil || p.muted {
		return
	}
	player, ok := p.players[t]
	if !ok {
		return
	}
	if err := player.SetPosition(0); err != nil {
		log.Printf("[Audio] Warning: failed to rewind %s cue: %v", t, err)
		return
	}
	player.Play()
}

// SetMuted 静音开关
func (p *CuePlayer) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.muted = muted
}

// Muted 是否静音
func (p *CuePlayer) Muted() bool {
	return p == nil || p.muted
}

// MessageWatcher 检测快照中新出现的提示消息
type MessageWatcher struct {
	text  string
	timer int
}

// Observe 返回 msg 是否是一条新消息
// 文本变化或剩余帧数回升（同一文本再次触发）都算新消息
func (w *MessageWatcher) Observe(msg components.FeedbackMessage) bool {
	fresh := msg.Text != "" && (msg.Text != w.text || msg.Timer > w.timer)
	w.text = msg.Text
	w.timer = msg.Timer
	return fresh
}
