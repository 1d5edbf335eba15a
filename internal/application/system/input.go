package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stickDeadZone ignores gamepad stick noise.
const stickDeadZone = 0.2

// InputState is one tick of player intent.
type InputState struct {
	// Move is the movement axis, x right and y forward, each in [-1, 1].
	Move mgl64.Vec2
	// Cursor is the pointer position in screen pixels.
	Cursor       mgl64.Vec2
	HasCursor    bool
	ToggleCursed bool
	Pause        bool
}

// InputSystem reads keyboard, mouse and gamepad state from ebiten.
type InputSystem struct {
	screenW, screenH int
	gamepads         []ebiten.GamepadID
}

// NewInputSystem creates an input system for the given logical screen.
func NewInputSystem(screenW, screenH int) *InputSystem {
	return &InputSystem{screenW: screenW, screenH: screenH}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	var move mgl64.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move[1]--
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		move = move.Add(deadZone(mgl64.Vec2{x, -y}))
	}
	move[0] = mgl64.Clamp(move[0], -1, 1)
	move[1] = mgl64.Clamp(move[1], -1, 1)

	cx, cy := ebiten.CursorPosition()
	inside := cx >= 0 && cy >= 0 && cx < s.screenW && cy < s.screenH

	return InputState{
		Move:         move,
		Cursor:       mgl64.Vec2{float64(cx), float64(cy)},
		HasCursor:    inside,
		ToggleCursed: inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Pause:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// deadZone zeroes small stick deflections and rescales the rest.
func deadZone(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l < stickDeadZone {
		return mgl64.Vec2{}
	}
	scaled := math.Min((l-stickDeadZone)/(1-stickDeadZone), 1)
	return v.Mul(scaled / l)
}
