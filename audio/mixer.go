package audio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/gopxl/beep"
)

// Mixer sums every playing cue. It implements io.Reader producing 16-bit
// little-endian stereo, the format ebiten's audio players consume.
type Mixer struct {
	mu     sync.Mutex
	mixer  beep.Mixer
	buf    [][2]float64
	master float64
}

func NewMixer(master float64) *Mixer {
	return &Mixer{master: master}
}

func (m *Mixer) Add(s beep.Streamer) {
	if s == nil {
		return
	}
	m.mu.Lock()
	m.mixer.Add(s)
	m.mu.Unlock()
}

// Playing returns the number of cues still streaming.
func (m *Mixer) Playing() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Len()
}

func (m *Mixer) SetMaster(v float64) {
	m.mu.Lock()
	m.master = max(v, 0)
	m.mu.Unlock()
}

func (m *Mixer) Clear() {
	m.mu.Lock()
	m.mixer.Clear()
	m.mu.Unlock()
}

// Read never returns an error; silence fills the gaps.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}
	m.mu.Lock()
	if cap(m.buf) < frames {
		m.buf = make([][2]float64, frames)
	}
	buf := m.buf[:frames]
	n, _ := m.mixer.Stream(buf)
	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}
	master := m.master
	m.mu.Unlock()

	for i, s := range buf {
		binary.LittleEndian.PutUint16(p[i*4:], uint16(toInt16(s[0]*master)))
		binary.LittleEndian.PutUint16(p[i*4+2:], uint16(toInt16(s[1]*master)))
	}
	return frames * 4, nil
}

// toInt16 soft-clips with tanh above unity.
func toInt16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	if v > 1 || v < -1 {
		v = math.Tanh(v)
	}
	return int16(v * math.MaxInt16)
}
