package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"templewatch/pkg/engine/input"
	"templewatch/pkg/engine/world"
	"templewatch/pkg/game/temple"
)

var background = color.NRGBA{R: 24, G: 26, B: 30, A: 255}

// Viewer runs the engine in an Ebiten window, one render pass per drawn frame.
type Viewer struct {
	Engine *temple.Engine
	Host   temple.Host
	R      *EbitenRenderer
	// Objects is what a resweep feeds back into the engine.
	Objects []world.Object
	// OnFrame, when set, sees every composed frame.
	OnFrame func(temple.Frame)
	// MaxFrames stops the viewer after that many frames; zero runs until closed.
	MaxFrames int

	frames   int
	keys     []ebiten.Key
	debounce *input.Debouncer
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	if v.MaxFrames > 0 && v.frames >= v.MaxFrames {
		return ebiten.Termination
	}
	if v.debounce == nil {
		v.debounce = input.NewDebouncer(0)
	}
	v.keys = inpututil.AppendJustPressedKeys(v.keys[:0])
	now := time.Now()
	for _, k := range v.keys {
		ev, ok := v.debounce.Accept(input.RawInput{Device: input.DeviceKeyboard, Code: k.String(), Timestamp: now})
		if !ok {
			continue
		}
		switch a := input.MapToIntent(ev).Action; a {
		case input.ActionQuit:
			return ebiten.Termination
		default:
			v.Engine.Handle(a, v.Objects)
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	v.R.SetTarget(screen)
	f := v.Engine.Render(v.Host)
	v.frames++
	if v.OnFrame != nil {
		v.OnFrame(f)
	}
}

// Layout implements ebiten.Game. The logical screen is the host window.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := v.Host.Window()
	if w.Empty() {
		return outsideWidth, outsideHeight
	}
	return int(w.W), int(w.H)
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run(title string) error {
	w := v.Host.Window()
	if !w.Empty() {
		ebiten.SetWindowSize(int(w.W), int(w.H))
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}
