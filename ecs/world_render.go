package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image, camX, camY, zoom float64)
}

// AddRenderer appends a render system. Renderers are kept apart from the
// update order: they run once per frame from Draw, not once per tick.
func (w *World) AddRenderer(r RenderSystem) {
	if w == nil || r == nil {
		return
	}
	w.renderers = append(w.renderers, r)
}

// Draw calls all render systems in the order they were added.
func (w *World) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if w == nil || screen == nil {
		return
	}
	for _, rs := range w.renderers {
		rs.Draw(w, screen, camX, camY, zoom)
	}
}
