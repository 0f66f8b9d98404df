package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/journey/motion"
	"github.com/milk9111/journey/scene"
)

const stickDeadzone = 0.3

// Frame is the input of one tick.
type Frame struct {
	// Forward and Backward walk along the path. Up/W and Down/S.
	Forward  bool
	Backward bool
	// Interact is held state; the session does its own edge detection.
	Interact bool

	// The rest are just-pressed flags for the game shell.
	Close       bool
	ToggleMusic bool
	TogglePause bool
	ToggleDebug bool

	// PhotoPrev and PhotoNext step an open photo carousel. Left/A, Right/D.
	PhotoPrev bool
	PhotoNext bool
}

// Scene converts the frame into what the state machine reads.
func (f Frame) Scene() scene.Input {
	return scene.Input{
		Intent:   motion.Intent{Forward: f.Forward, Backward: f.Backward},
		Interact: f.Interact,
	}
}

// Source is the device state the mapping reads. Ebiten implements it for
// the game; tests use a fake.
type Source interface {
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	// Stick returns the vertical axis of the first gamepad's left stick and
	// whether a gamepad is connected.
	Stick() (float64, bool)
	ButtonPressed(b ebiten.StandardGamepadButton) bool
	ButtonJustPressed(b ebiten.StandardGamepadButton) bool
}

// Read maps keyboard and the first gamepad to a Frame.
func Read(src Source) Frame {
	f := Frame{
		Forward:     src.KeyPressed(ebiten.KeyArrowUp) || src.KeyPressed(ebiten.KeyW),
		Backward:    src.KeyPressed(ebiten.KeyArrowDown) || src.KeyPressed(ebiten.KeyS),
		Interact:    src.KeyPressed(ebiten.KeyE),
		Close:       src.KeyJustPressed(ebiten.KeyEscape),
		ToggleMusic: src.KeyJustPressed(ebiten.KeyM),
		TogglePause: src.KeyJustPressed(ebiten.KeyP),
		ToggleDebug: src.KeyJustPressed(ebiten.KeyF3),
		PhotoPrev:   src.KeyJustPressed(ebiten.KeyArrowLeft) || src.KeyJustPressed(ebiten.KeyA),
		PhotoNext:   src.KeyJustPressed(ebiten.KeyArrowRight) || src.KeyJustPressed(ebiten.KeyD),
	}

	if y, ok := src.Stick(); ok {
		// stick up is negative
		if y < -stickDeadzone {
			f.Forward = true
		} else if y > stickDeadzone {
			f.Backward = true
		}
		f.Forward = f.Forward || src.ButtonPressed(ebiten.StandardGamepadButtonLeftTop)
		f.Backward = f.Backward || src.ButtonPressed(ebiten.StandardGamepadButtonLeftBottom)
		f.Interact = f.Interact || src.ButtonPressed(ebiten.StandardGamepadButtonRightBottom)
		f.Close = f.Close || src.ButtonJustPressed(ebiten.StandardGamepadButtonRightRight)
		f.TogglePause = f.TogglePause || src.ButtonJustPressed(ebiten.StandardGamepadButtonCenterRight)
		f.ToggleMusic = f.ToggleMusic || src.ButtonJustPressed(ebiten.StandardGamepadButtonCenterLeft)
		f.PhotoPrev = f.PhotoPrev || src.ButtonJustPressed(ebiten.StandardGamepadButtonFrontTopLeft)
		f.PhotoNext = f.PhotoNext || src.ButtonJustPressed(ebiten.StandardGamepadButtonFrontTopRight)
	}
	return f
}

// Ebiten reads the live keyboard and the first connected gamepad.
type Ebiten struct{}

func (Ebiten) KeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (Ebiten) KeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (Ebiten) Stick() (float64, bool) {
	id, ok := firstGamepad()
	if !ok {
		return 0, false
	}
	return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical), true
}

func (Ebiten) ButtonPressed(b ebiten.StandardGamepadButton) bool {
	id, ok := firstGamepad()
	return ok && ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (Ebiten) ButtonJustPressed(b ebiten.StandardGamepadButton) bool {
	id, ok := firstGamepad()
	return ok && inpututil.IsStandardGamepadButtonJustPressed(id, b)
}

func firstGamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// Latch holds the last Frame read so several consumers in one tick see the
// same input.
type Latch struct {
	src  Source
	last Frame
}

func NewLatch(src Source) *Latch {
	return &Latch{src: src}
}

// Update reads the source. Call it once per tick.
func (l *Latch) Update() Frame {
	l.last = Read(l.src)
	return l.last
}

func (l *Latch) Last() Frame { return l.last }

// Poll implements scene.InputSource.
func (l *Latch) Poll() scene.Input { return l.last.Scene() }
