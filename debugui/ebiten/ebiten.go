// Package ebiten provides the Dear ImGui backend binding for the Ebiten
// driver. Use it to composite ImGui windows over the game screen.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
