package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: refresh the FPS text every N frames to limit allocations.
	updateInterval = 30
)

var textColor = rl.NewColor(40, 40, 40, 255)

// Overlay draws a status line (active object or layout) and, optionally, the FPS counter
// in the top-left corner. It is drawn after the scene, inside the frame.
type Overlay struct {
	ShowFPS     bool
	status      string
	frameCount  uint32
	lastFpsText string
}

// New returns an overlay with the given status text.
func New(status string, showFPS bool) *Overlay {
	return &Overlay{status: status, ShowFPS: showFPS}
}

// SetStatus replaces the status line.
func (o *Overlay) SetStatus(s string) {
	o.status = s
}

// ObjectStatus is the status line for a selected object, numbered from 1, with the key that advances it.
func ObjectStatus(ordinal int, key string) string {
	return fmt.Sprintf("object %d  [%s: next]", ordinal, key)
}

// Draw renders the overlay. Call between BeginDrawing and EndDrawing.
func (o *Overlay) Draw() {
	o.frameCount++
	y := int32(padding)
	if o.status != "" {
		rl.DrawText(o.status, padding, y, fontSize, textColor)
		y += lineHeight
	}
	if !o.ShowFPS {
		return
	}
	if o.lastFpsText == "" || o.frameCount%updateInterval == 0 {
		o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	rl.DrawText(o.lastFpsText, padding, y, fontSize, textColor)
}
