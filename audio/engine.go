package audio

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/milk9111/horde/common"
)

// Engine resolves cues against the listener and feeds the mixer.
type Engine struct {
	bank   *Bank
	mixer  *Mixer
	player *audio.Player
	logger *zap.Logger
}

func NewEngine(bank *Bank, mixer *Mixer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{bank: bank, mixer: mixer, logger: logger}
}

// Attach starts an ebiten player reading from the mixer. Without it the
// engine still mixes, which is how headless runs and tests use it.
func (e *Engine) Attach(ctx *audio.Context) error {
	if ctx == nil {
		return nil
	}
	p, err := ctx.NewPlayer(e.mixer)
	if err != nil {
		return fmt.Errorf("audio: new player: %w", err)
	}
	p.SetBufferSize(60 * time.Millisecond)
	p.Play()
	e.player = p
	return nil
}

// Play mixes one cue heard from listener, whose right-hand side is right.
func (e *Engine) Play(c Cue, listener, right common.Vec3) {
	gain := c.Gain(listener)
	if gain <= 0.001 {
		return
	}
	s, _, err := e.bank.Streamer(c, gain, c.Pan(listener, right))
	if err != nil {
		e.logger.Debug("drop cue", zap.Stringer("kind", c.Kind), zap.Error(err))
		return
	}
	e.mixer.Add(s)
}

// Duration reports the longest variant of kind in seconds.
func (e *Engine) Duration(kind CueKind) float64 {
	return e.bank.Duration(kind)
}

func (e *Engine) Close() error {
	if e.player == nil {
		return nil
	}
	err := e.player.Close()
	e.player = nil
	return err
}
