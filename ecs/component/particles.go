package component

import (
	"image/color"

	"github.com/milk9111/horde/common"
)

type Particle struct {
	Position common.Vec3
	Velocity common.Vec3
	Age      float64
	Lifetime float64
	Size     float64
}

// ParticleEmitter owns a burst of particles simulated on the CPU.
type ParticleEmitter struct {
	Particles []Particle
	Color     color.RGBA
	Gravity   float64
	Drag      float64
}

// Alive counts particles that have not outlived their lifetime.
func (p *ParticleEmitter) Alive() int {
	n := 0
	for i := range p.Particles {
		if p.Particles[i].Age < p.Particles[i].Lifetime {
			n++
		}
	}
	return n
}

var ParticleEmitterComponent = NewComponent[ParticleEmitter]()
