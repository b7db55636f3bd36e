package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// ScreenToWorld maps a cursor position to the XZ plane.
type ScreenToWorld func(sx, sy float64) (x, z float64)

// InputSystem samples keyboard, mouse and the first gamepad into every
// Input component.
type InputSystem struct {
	toWorld ScreenToWorld
}

func NewInputSystem(toWorld ScreenToWorld) *InputSystem {
	return &InputSystem{toWorld: toWorld}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	moveX, moveZ := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveZ -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveZ += 1
	}
	fire := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	cx, cy := ebiten.CursorPosition()
	aimX, aimZ := float64(cx), float64(cy)
	if i.toWorld != nil {
		aimX, aimZ = i.toWorld(aimX, aimZ)
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX, moveZ = lx, ly
		}
		fire = fire || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveZ = moveZ
		input.AimX = aimX
		input.AimZ = aimZ
		input.Fire = fire
	})
}
