package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates a raw wave. Glide bends the frequency linearly to
// freq·glide over the duration; vibrato wobbles it by ±vibrato at 6 Hz.
type oscillator struct {
	freq     float64
	glide    float64
	vibrato  float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(l layer, duration time.Duration, rate beep.SampleRate, rng *rand.Rand) *oscillator {
	glide := l.glide
	if glide <= 0 {
		glide = 1
	}
	return &oscillator{
		freq:     l.freq,
		glide:    glide,
		vibrato:  l.vibrato,
		duration: rate.N(duration),
		wave:     l.wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		f := o.freq * (1 + (o.glide-1)*t)
		if o.vibrato > 0 {
			secs := float64(o.position) / float64(o.rate)
			f *= 1 + o.vibrato*math.Sin(2*math.Pi*6*secs)
		}
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type layer struct {
	wave    waveType
	freq    float64
	glide   float64
	vibrato float64
	gain    float64
	delay   time.Duration
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// recipe describes how to synthesise the variants of one cue kind. Jitter
// detunes and stretches each variant so repeats don't sound identical.
type recipe struct {
	variants int
	jitter   float64
	layers   []layer
}

var recipes = map[CueKind]recipe{
	CueIdle: {variants: 4, jitter: 0.15, layers: []layer{
		{wave: waveSaw, freq: 95, glide: 0.8, vibrato: 0.04, gain: 0.5, length: 1100 * time.Millisecond, attack: 150 * time.Millisecond, release: 400 * time.Millisecond},
		{wave: waveNoise, gain: 0.08, length: 1100 * time.Millisecond, attack: 200 * time.Millisecond, release: 500 * time.Millisecond},
	}},
	CueStagger: {variants: 3, jitter: 0.1, layers: []layer{
		{wave: waveSaw, freq: 180, glide: 0.6, gain: 0.5, length: 350 * time.Millisecond, attack: 10 * time.Millisecond, release: 200 * time.Millisecond},
		{wave: waveNoise, gain: 0.2, length: 200 * time.Millisecond, attack: 5 * time.Millisecond, release: 150 * time.Millisecond},
	}},
	CueAttack: {variants: 3, jitter: 0.1, layers: []layer{
		{wave: waveSaw, freq: 140, glide: 1.6, vibrato: 0.08, gain: 0.55, length: 600 * time.Millisecond, attack: 60 * time.Millisecond, release: 250 * time.Millisecond},
		{wave: waveSquare, freq: 70, glide: 1.3, gain: 0.15, length: 600 * time.Millisecond, attack: 60 * time.Millisecond, release: 250 * time.Millisecond},
	}},
	CueShot: {variants: 3, jitter: 0.05, layers: []layer{
		{wave: waveNoise, gain: 0.8, length: 300 * time.Millisecond, attack: 2 * time.Millisecond, release: 280 * time.Millisecond},
		{wave: waveSine, freq: 65, glide: 0.5, gain: 0.7, length: 250 * time.Millisecond, attack: 2 * time.Millisecond, release: 220 * time.Millisecond},
	}},
	CueReload: {variants: 2, jitter: 0.05, layers: []layer{
		{wave: waveSquare, freq: 900, gain: 0.25, length: 30 * time.Millisecond, release: 25 * time.Millisecond},
		{wave: waveSquare, freq: 700, gain: 0.3, delay: 180 * time.Millisecond, length: 40 * time.Millisecond, release: 35 * time.Millisecond},
	}},
	CueImpactFlesh: {variants: 4, jitter: 0.2, layers: []layer{
		{wave: waveNoise, gain: 0.3, length: 90 * time.Millisecond, attack: 3 * time.Millisecond, release: 80 * time.Millisecond},
		{wave: waveSine, freq: 120, glide: 0.7, gain: 0.3, length: 90 * time.Millisecond, release: 80 * time.Millisecond},
	}},
	CueImpactWall: {variants: 4, jitter: 0.2, layers: []layer{
		{wave: waveSquare, freq: 1300, glide: 0.8, gain: 0.12, length: 40 * time.Millisecond, release: 35 * time.Millisecond},
		{wave: waveNoise, gain: 0.2, length: 60 * time.Millisecond, release: 55 * time.Millisecond},
	}},
	CueHurt: {variants: 3, jitter: 0.1, layers: []layer{
		{wave: waveSaw, freq: 240, glide: 0.7, gain: 0.4, length: 300 * time.Millisecond, attack: 10 * time.Millisecond, release: 200 * time.Millisecond},
	}},
	CueExplosion: {variants: 2, jitter: 0.1, layers: []layer{
		{wave: waveNoise, gain: 0.9, length: 1400 * time.Millisecond, attack: 5 * time.Millisecond, release: 1300 * time.Millisecond},
		{wave: waveSine, freq: 45, glide: 0.5, gain: 0.8, length: 1000 * time.Millisecond, attack: 5 * time.Millisecond, release: 900 * time.Millisecond},
	}},
}

// synthesize renders every variant of kind into buffers.
func synthesize(kind CueKind, rate beep.SampleRate, rng *rand.Rand) ([]*beep.Buffer, error) {
	r, ok := recipes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCue, kind)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	out := make([]*beep.Buffer, 0, r.variants)
	for v := 0; v < r.variants; v++ {
		detune := 1 + (rng.Float64()*2-1)*r.jitter
		stretch := 1 + (rng.Float64()*2-1)*r.jitter/2
		parts := make([]beep.Streamer, 0, len(r.layers))
		for _, l := range r.layers {
			l.freq *= detune
			length := time.Duration(float64(l.length) * stretch)
			osc := newOscillator(l, length, rate, rng)
			var s beep.Streamer = newVolume(newEnvelope(osc, length, l.attack, l.release, rate), l.gain)
			if l.delay > 0 {
				s = beep.Seq(beep.Silence(rate.N(l.delay)), s)
			}
			parts = append(parts, s)
		}
		buf := beep.NewBuffer(format)
		buf.Append(beep.Mix(parts...))
		if buf.Len() == 0 {
			return nil, fmt.Errorf("%w: %s variant %d is empty", ErrUnknownCue, kind, v)
		}
		out = append(out, buf)
	}
	return out, nil
}
