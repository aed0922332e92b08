package app

import (
	"triangles/internal/animation"
	"triangles/internal/logger"
	"triangles/internal/scene"
	"triangles/internal/selector"
)

// Host is the windowing side of the loop: clock, input and presentation.
type Host interface {
	// Time returns seconds since the window opened.
	Time() float32
	// AdvancePressed reports the current level of the mode-advance key.
	AdvancePressed() bool
	ShouldClose() bool
	// PumpEvents drains pending window and input events. Called once per iteration.
	PumpEvents()
	BeginFrame()
	EndFrame()
}

// Renderer issues the draw calls for one object.
type Renderer interface {
	Draw(obj scene.Object, f animation.Frame)
}

// Draw pairs an object with its computed frame.
type Draw struct {
	Object scene.Object
	Frame  animation.Frame
}

// Options configures an App.
type Options struct {
	Layout    scene.Layout
	Amplitude float32 // 0 = layout default
	// OnSelect, if set, is called with the 1-based number of the newly shown object.
	OnSelect func(ordinal int)
}

// App owns the object table and, in the single layout, the mode selector.
type App struct {
	layout  scene.Layout
	objects []scene.Object
	sel     *selector.Selector
	log     *logger.Logger
	draws   []Draw // reused every frame
	onSel   func(ordinal int)
}

// New builds the scene for opts.Layout. log may be nil.
func New(opts Options, log *logger.Logger) *App {
	a := &App{
		layout:  opts.Layout,
		objects: scene.New(opts.Layout, opts.Amplitude),
		log:     log,
		onSel:   opts.OnSelect,
	}
	a.draws = make([]Draw, 0, len(a.objects))
	if opts.Layout == scene.Single {
		a.sel = selector.New(len(a.objects), a.announce)
	}
	return a
}

func (a *App) announce(ordinal int) {
	if a.log != nil {
		a.log.Logf("object %d", ordinal)
	}
	if a.onSel != nil {
		a.onSel(ordinal)
	}
}

// Layout returns the layout the app was built with.
func (a *App) Layout() scene.Layout {
	return a.layout
}

// Objects returns a copy of the object table.
func (a *App) Objects() []scene.Object {
	out := make([]scene.Object, len(a.objects))
	copy(out, a.objects)
	return out
}

// Active returns the index of the shown object, or -1 when every object is drawn.
func (a *App) Active() int {
	if a.sel == nil {
		return -1
	}
	return a.sel.Active()
}

// Step advances the selector with the advance-key level and returns what to draw at t seconds,
// in object id order. The returned slice is only valid until the next call.
func (a *App) Step(t float32, advance bool) []Draw {
	a.draws = a.draws[:0]
	if a.sel != nil {
		a.sel.Update(advance)
		obj := a.objects[a.sel.Active()]
		return append(a.draws, Draw{Object: obj, Frame: animation.Compute(obj, t)})
	}
	for _, obj := range a.objects {
		a.draws = append(a.draws, Draw{Object: obj, Frame: animation.Compute(obj, t)})
	}
	return a.draws
}

// Run drives frames until the host asks to close. The first object is announced before the first frame.
func (a *App) Run(h Host, r Renderer) {
	if a.sel != nil {
		a.announce(a.sel.Active() + 1)
	}
	for !h.ShouldClose() {
		draws := a.Step(h.Time(), h.AdvancePressed())
		h.BeginFrame()
		for _, d := range draws {
			r.Draw(d.Object, d.Frame)
		}
		h.EndFrame()
		h.PumpEvents()
	}
}
