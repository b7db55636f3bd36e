package audio

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/sync/errgroup"
)

const SampleRate = beep.SampleRate(44100)

var (
	ErrUnknownCue = errors.New("audio: unknown cue")
	ErrNotLoaded  = errors.New("audio: bank not loaded")
)

// Bank holds the synthesised variants of every cue kind and picks one per
// play, never the same variant twice in a row when there is a choice.
type Bank struct {
	rate beep.SampleRate
	seed uint64

	mu       sync.Mutex
	variants map[CueKind][]*beep.Buffer
	last     map[CueKind]int
	rng      *rand.Rand
}

func NewBank(rate beep.SampleRate, seed uint64) *Bank {
	return &Bank{
		rate:     rate,
		seed:     seed,
		variants: make(map[CueKind][]*beep.Buffer),
		last:     make(map[CueKind]int),
		rng:      rand.New(rand.NewPCG(seed, 0x5eed)),
	}
}

// Load synthesises every kind concurrently. Each kind draws from its own
// seeded source, so the result does not depend on scheduling.
func (b *Bank) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range CueKinds() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(b.seed, uint64(kind)+1))
			bufs, err := synthesize(kind, b.rate, rng)
			if err != nil {
				return fmt.Errorf("synthesize %s: %w", kind, err)
			}
			b.mu.Lock()
			b.variants[kind] = bufs
			b.last[kind] = -1
			b.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// Loaded reports how many kinds are ready.
func (b *Bank) Loaded() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.variants)
}

// Variants returns the number of variants for kind.
func (b *Bank) Variants(kind CueKind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.variants[kind])
}

// Duration is the length in seconds of the longest variant of kind.
func (b *Bank) Duration(kind CueKind) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	longest := 0
	for _, buf := range b.variants[kind] {
		longest = max(longest, buf.Len())
	}
	return b.rate.D(longest).Seconds()
}

// pick returns a variant index, avoiding the previous one.
func (b *Bank) pick(kind CueKind) (*beep.Buffer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	bufs := b.variants[kind]
	switch len(bufs) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, kind)
	case 1:
		b.last[kind] = 0
		return bufs[0], nil
	}
	idx := b.rng.IntN(len(bufs) - 1)
	if last := b.last[kind]; last >= 0 && idx >= last {
		idx++
	}
	b.last[kind] = idx
	return bufs[idx], nil
}

// Streamer renders a cue at the given gain and pan, pitch-shifted by the
// cue's ratio.
func (b *Bank) Streamer(c Cue, gain, pan float64) (beep.Streamer, time.Duration, error) {
	buf, err := b.pick(c.Kind)
	if err != nil {
		return nil, 0, err
	}
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	ratio := c.Ratio()
	if ratio != 1 {
		s = beep.ResampleRatio(3, ratio, s)
	}
	s = &effects.Pan{Streamer: s, Pan: pan}
	length := time.Duration(float64(b.rate.D(buf.Len())) / ratio)
	return newVolume(s, gain), length, nil
}
