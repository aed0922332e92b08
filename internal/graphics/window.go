package graphics

import (
	"fmt"
	"image/color"
	"runtime"
	"strings"

	"triangles/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keysByName maps config names to raylib key codes for the advance key.
var keysByName = map[string]int32{
	"space": rl.KeySpace,
	"enter": rl.KeyEnter,
	"tab":   rl.KeyTab,
	"right": rl.KeyRight,
	"n":     rl.KeyN,
}

// Options configures the window.
type Options struct {
	Width, Height int32
	Title         string
	TargetFPS     int32
	Background    scene.RGB
	AdvanceKey    string
}

// Window is the raylib window plus the clock and keyboard the frame loop polls.
// All methods must be called from the goroutine that called Open.
type Window struct {
	key     int32
	bg      color.RGBA
	overlay func()
}

// Open locks the calling goroutine to its OS thread, creates the window and GL context,
// and disables backface culling (the triangles are wound clockwise).
func Open(opts Options) (*Window, error) {
	name := strings.ToLower(strings.TrimSpace(opts.AdvanceKey))
	if name == "" {
		name = "space"
	}
	key, ok := keysByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown advance key %q", opts.AdvanceKey)
	}
	runtime.LockOSThread()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	if !rl.IsWindowReady() {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("open window: %dx%d %q: no window or GL context (is a display available?)", opts.Width, opts.Height, opts.Title)
	}
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}
	rl.DisableBackfaceCulling()

	return &Window{key: key, bg: toColor(opts.Background)}, nil
}

func toColor(c scene.RGB) color.RGBA {
	return rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), 255)
}

func channel(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

// SetOverlay registers a function drawn on top of the scene each frame (e.g. debug text).
func (w *Window) SetOverlay(draw func()) {
	w.overlay = draw
}

// Close destroys the window. GPU resources created after Open must be released first.
func (w *Window) Close() {
	rl.CloseWindow()
	runtime.UnlockOSThread()
}

// Time returns seconds since Open.
func (w *Window) Time() float32 {
	return float32(rl.GetTime())
}

// AdvancePressed reports whether the advance key is currently held.
func (w *Window) AdvancePressed() bool {
	return rl.IsKeyDown(w.key)
}

// ShouldClose reports a close request (window button or ESC).
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// PumpEvents polls window and input events. EndFrame's EndDrawing already polls once, so this is
// a second poll per frame; key-down levels are unaffected, only per-frame "pressed" edges would be.
func (w *Window) PumpEvents() {
	rl.PollInputEvents()
}

// BeginFrame starts drawing and clears to the background color.
func (w *Window) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(w.bg)
}

// EndFrame draws the overlay and presents the frame.
func (w *Window) EndFrame() {
	if w.overlay != nil {
		w.overlay()
	}
	rl.EndDrawing()
}
