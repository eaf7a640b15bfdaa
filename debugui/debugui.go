// Package debugui draws Dear ImGui inspection windows over a running blockfall game.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Item holds an ImGui render function that runs every frame.
type Item struct {
	Render func()
}

// InputState tracks whether ImGui is consuming mouse or keyboard input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns the ImGui backend for an ebiten game and the windows drawn through it.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	items   []Item
	input   InputState
}

// NewOverlay creates the ebiten window and the ImGui context bound to it. Call it before
// ebiten.RunGame.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{backend: backend}
}

func (o *Overlay) Add(item Item) {
	o.items = append(o.items, item)
}

// Input reports the capture state sampled by the last Update.
func (o *Overlay) Input() InputState {
	return o.input
}

// Update runs every item inside one ImGui frame. Call it from ebiten.Game.Update.
func (o *Overlay) Update() {
	o.backend.BeginFrame()

	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}

	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
