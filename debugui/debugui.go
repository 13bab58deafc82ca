// Package debugui provides an immediate-mode Dear ImGui overlay for
// inspecting a running game from inside the ebiten driver.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
)

// Panel renders one ImGui window per frame.
type Panel func()

// Overlay owns the ImGui backend and the panels drawn while visible.
// It is hidden by default; the driver toggles it at runtime.
type Overlay struct {
	backend debugui_ebiten.ImguiBackend
	panels  []Panel
	visible bool
}

// NewOverlay creates the ImGui backend and the application window. Call it
// once, before ebiten.RunGame.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // no imgui.ini litter next to the binary

	return &Overlay{
		backend: debugui_ebiten.ImguiBackend{EbitenBackend: backend},
	}
}

// Attach registers a panel. Panels render in attachment order.
func (o *Overlay) Attach(p Panel) {
	o.panels = append(o.panels, p)
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// SetVisible shows or hides the overlay.
func (o *Overlay) SetVisible(v bool) { o.visible = v }

// Visible reports whether the overlay is currently shown.
func (o *Overlay) Visible() bool { return o.visible }

// WantCaptureKeyboard reports whether ImGui is consuming keyboard input.
// The driver skips gameplay keys while a panel has focus.
func (o *Overlay) WantCaptureKeyboard() bool {
	return o.visible && imgui.CurrentIO().WantCaptureKeyboard()
}

// Update runs one ImGui frame. Call from ebiten's Update, before reading
// gameplay input.
func (o *Overlay) Update() {
	if !o.visible {
		return
	}
	o.backend.BeginFrame()
	for _, p := range o.panels {
		p()
	}
	o.backend.EndFrame()
}

// Draw composites the overlay onto screen. Call last in ebiten's Draw.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	o.backend.Draw(screen)
}

// Layout forwards ebiten's layout to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
