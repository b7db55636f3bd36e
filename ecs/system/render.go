package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

var gibColors = [...]color.RGBA{
	component.GibHead:   colornames.Rosybrown,
	component.GibTorso:  colornames.Darkred,
	component.GibArm:    colornames.Indianred,
	component.GibLeg:    colornames.Brown,
	component.GibFoot:   colornames.Maroon,
	component.GibPelvis: colornames.Firebrick,
}

var stateColors = map[component.AIMode]color.RGBA{
	component.AIChase:   colornames.Limegreen,
	component.AIStagger: colornames.Yellow,
	component.AIAttack:  colornames.Red,
}

// View maps the XZ plane onto the screen. X grows right, Z grows down.
type View struct {
	CamX, CamZ float64
	Zoom       float64
	Width      float64
	Height     float64
	ShakeX     float64
	ShakeY     float64
}

func (v View) ToScreen(p common.Vec3) (float32, float32) {
	x := (p.X-v.CamX)*v.Zoom + v.Width/2 + v.ShakeX
	y := (p.Z-v.CamZ)*v.Zoom + v.Height/2 + v.ShakeY
	return float32(x), float32(y)
}

// ToWorld inverts ToScreen, ignoring shake.
func (v View) ToWorld(sx, sy float64) (float64, float64) {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return (sx-v.Width/2)/zoom + v.CamX, (sy-v.Height/2)/zoom + v.CamZ
}

// RenderSystem draws the arena top-down with vector shapes.
type RenderSystem struct {
	ArenaHalf float64
	Debug     bool
}

func NewRenderSystem(arenaHalf float64, debug bool) *RenderSystem {
	return &RenderSystem{ArenaHalf: arenaHalf, Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	if r == nil || w == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	view := View{CamX: camX, CamZ: camY, Zoom: zoom, Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
	if _, shake, ok := ecs.First(w, component.CameraShakeComponent.Kind()); ok {
		view.ShakeX, view.ShakeY = shake.OffsetX, shake.OffsetY
	}

	screen.Fill(colornames.Darkslategray)
	r.drawArena(screen, view)
	r.drawGibs(w, screen, view)
	r.drawSprites(w, screen, view)
	r.drawParticles(w, screen, view)
	r.drawAim(w, screen, view)
	r.drawHUD(w, screen)
}

func (r *RenderSystem) drawArena(screen *ebiten.Image, v View) {
	if r.ArenaHalf <= 0 {
		return
	}
	x, y := v.ToScreen(common.V3(-r.ArenaHalf, 0, -r.ArenaHalf))
	size := float32(2 * r.ArenaHalf * v.Zoom)
	vector.FillRect(screen, x, y, size, size, colornames.Dimgray, false)
	vector.StrokeRect(screen, x, y, size, size, 3, colornames.Lightgrey, false)
}

func (r *RenderSystem) drawGibs(w *ecs.World, screen *ebiten.Image, v View) {
	ecs.ForEach2(w, component.GibComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, g *component.Gib, t *component.Transform) {
		clr := colornames.Darkred
		if int(g.Kind) >= 0 && int(g.Kind) < len(gibColors) {
			clr = gibColors[g.Kind]
		}
		x, y := v.ToScreen(t.Position)
		vector.FillCircle(screen, x, y, float32(0.15*t.Scale*v.Zoom), clr, true)
	})
}

func (r *RenderSystem) drawSprites(w *ecs.World, screen *ebiten.Image, v View) {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		x, y := v.ToScreen(t.Position)
		radius := float32(s.Radius * v.Zoom)

		clr := s.Color
		if st, ok := ecs.Get(w, e, component.AIStateComponent.Kind()); ok && st.Mode == component.AIStagger {
			clr = colornames.White
		}
		vector.FillCircle(screen, x, y, radius, clr, true)

		if ecs.Has(w, e, component.ExplodeOnDeathComponent.Kind()) {
			vector.StrokeCircle(screen, x, y, radius+2, 2, colornames.Orange, true)
		}
		if atk, ok := ecs.Get(w, e, component.AttackingComponent.Kind()); ok && atk.HasDir {
			reach := float32(attackReach(w, e) * v.Zoom)
			vector.StrokeLine(screen, x, y, x+float32(atk.Dir.X)*reach, y+float32(atk.Dir.Z)*reach, 2, colornames.Red, true)
		}
		if !r.Debug {
			continue
		}
		if st, ok := ecs.Get(w, e, component.AIStateComponent.Kind()); ok {
			vector.StrokeCircle(screen, x, y, radius+4, 1, stateColors[st.Mode], true)
		}
		if nav, ok := ecs.Get(w, e, component.NavAgentComponent.Kind()); ok && nav.Reach > 0 {
			vector.StrokeCircle(screen, x, y, float32(nav.Reach*v.Zoom), 1, colornames.Gray, true)
		}
	}
}

func (r *RenderSystem) drawParticles(w *ecs.World, screen *ebiten.Image, v View) {
	ecs.ForEach(w, component.ParticleEmitterComponent.Kind(), func(_ ecs.Entity, em *component.ParticleEmitter) {
		for i := range em.Particles {
			p := &em.Particles[i]
			if p.Age >= p.Lifetime {
				continue
			}
			x, y := v.ToScreen(p.Position)
			fade := 1 - p.Age/p.Lifetime
			clr := em.Color
			clr.A = uint8(float64(clr.A) * fade)
			vector.FillCircle(screen, x, y, max(float32(p.Size*v.Zoom), 1), clr, false)
		}
	})
}

func (r *RenderSystem) drawAim(w *ecs.World, screen *ebiten.Image, v View) {
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		x, y := v.ToScreen(t.Position)
		tx, ty := v.ToScreen(t.Position.Add(p.Aim.Scale(2)))
		vector.StrokeLine(screen, x, y, tx, ty, 2, colornames.Khaki, true)
	})
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	hp, maxHP := 0.0, 0.0
	if e, ok := w.First(component.PlayerTagComponent.Kind(), component.HealthComponent.Kind()); ok {
		h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
		hp, maxHP = h.Current, h.Max
	}
	wave, phase, timer := 0, component.WavePreparing, 0.0
	if _, ws, ok := ecs.First(w, component.WaveStateComponent.Kind()); ok {
		wave, phase, timer = ws.Number, ws.Phase, ws.Timer
	}

	const barW, barH = 200, 12
	vector.FillRect(screen, 10, 30, barW, barH, colornames.Black, false)
	if maxHP > 0 {
		vector.FillRect(screen, 10, 30, float32(barW*hp/maxHP), barH, colornames.Crimson, false)
	}

	msg := fmt.Sprintf("Wave %d  %s  Horde %d  FPS %.0f", wave, phase, AliveNPCs(w), ebiten.ActualFPS())
	if phase == component.WavePreparing && timer > 0 {
		msg += fmt.Sprintf("  next in %.1fs", timer)
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 8)
	if r.Debug {
		counts := map[component.AIMode]int{}
		ecs.ForEach(w, component.AIStateComponent.Kind(), func(_ ecs.Entity, st *component.AIState) {
			counts[st.Mode]++
		})
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("chase %d  stagger %d  attack %d  entities %d",
			counts[component.AIChase], counts[component.AIStagger], counts[component.AIAttack], len(ecs.Entities(w))), 10, 48)
	}
}
