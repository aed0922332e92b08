package app

import (
	"testing"

	"triangles/internal/animation"
	"triangles/internal/logger"
	"triangles/internal/mat4"
	"triangles/internal/scene"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeHost replays scripted key levels, one per frame, then asks to close.
type fakeHost struct {
	keys    []bool
	frame   int
	pumped  int
	begun   int
	ended   int
	elapsed float32
}

func (h *fakeHost) Time() float32 { return h.elapsed }

func (h *fakeHost) AdvancePressed() bool { return h.keys[h.frame] }

func (h *fakeHost) ShouldClose() bool { return h.frame >= len(h.keys) }

func (h *fakeHost) PumpEvents() {
	h.pumped++
	h.frame++
	h.elapsed += 0.5
}

func (h *fakeHost) BeginFrame() { h.begun++ }

func (h *fakeHost) EndFrame() { h.ended++ }

type recorder struct {
	ids    [][]int
	open   []int
	frames []animation.Frame
}

func (r *recorder) Draw(obj scene.Object, f animation.Frame) {
	r.open = append(r.open, obj.ID)
	r.frames = append(r.frames, f)
}

func (r *recorder) flush() {
	r.ids = append(r.ids, r.open)
	r.open = nil
}

// flushingHost closes each frame's draw list in the recorder.
type flushingHost struct {
	*fakeHost
	rec *recorder
}

func (h flushingHost) EndFrame() {
	h.fakeHost.EndFrame()
	h.rec.flush()
}

func TestStep(t *testing.T) {
	Convey("Single layout draws only the active object", t, func() {
		a := New(Options{Layout: scene.Single}, nil)
		So(a.Active(), ShouldEqual, 0)

		draws := a.Step(0, false)
		So(draws, ShouldHaveLength, 1)
		So(draws[0].Object.ID, ShouldEqual, 0)

		Convey("and the advance key switches it on the press", func() {
			draws = a.Step(0.1, true)
			So(draws[0].Object.ID, ShouldEqual, 1)
			So(draws[0].Frame.VertexColor, ShouldBeTrue)

			draws = a.Step(0.2, true)
			So(draws[0].Object.ID, ShouldEqual, 1)
		})
	})

	Convey("Stacked layout draws every object in id order", t, func() {
		a := New(Options{Layout: scene.Stacked}, nil)
		So(a.Active(), ShouldEqual, -1)

		draws := a.Step(1, true)
		So(draws, ShouldHaveLength, scene.Count)
		for i, d := range draws {
			So(d.Object.ID, ShouldEqual, i)
			So(d.Frame, ShouldResemble, animation.Compute(d.Object, 1))
		}
		So(draws[4].Frame.Model, ShouldNotResemble, mat4.Translate(0, draws[4].Object.Offset, 0))
	})

	Convey("The configured amplitude reaches the oscillating object", t, func() {
		a := New(Options{Layout: scene.Stacked, Amplitude: 0.3}, nil)
		So(a.Objects()[3].Amplitude, ShouldEqual, float32(0.3))
		So(a.Layout(), ShouldEqual, scene.Stacked)
	})
}

func TestRun(t *testing.T) {
	Convey("Given a scripted host", t, func() {
		log := logger.New("", nil)
		var selected []int
		a := New(Options{Layout: scene.Single, OnSelect: func(n int) { selected = append(selected, n) }}, log)
		rec := &recorder{}
		host := &fakeHost{keys: []bool{false, true, true, false, true, false, true}}

		a.Run(flushingHost{fakeHost: host, rec: rec}, rec)

		Convey("every iteration pumps events and presents once", func() {
			So(host.pumped, ShouldEqual, len(host.keys))
			So(host.begun, ShouldEqual, len(host.keys))
			So(host.ended, ShouldEqual, len(host.keys))
		})

		Convey("each press shows the next object", func() {
			So(rec.ids, ShouldResemble, [][]int{{0}, {1}, {1}, {1}, {2}, {2}, {3}})
			So(a.Active(), ShouldEqual, 3)
		})

		Convey("the first object and every switch are announced", func() {
			So(selected, ShouldResemble, []int{1, 2, 3, 4})
			lines := log.Lines()
			So(lines, ShouldHaveLength, 4)
			So(lines[0], ShouldEndWith, "object 1")
			So(lines[3], ShouldEndWith, "object 4")
		})

		Convey("frames are computed from the host clock", func() {
			So(rec.frames[0], ShouldResemble, animation.Compute(a.Objects()[0], 0))
		})
	})

	Convey("Stacked runs never announce", t, func() {
		log := logger.New("", nil)
		a := New(Options{Layout: scene.Stacked}, log)
		rec := &recorder{}
		host := &fakeHost{keys: []bool{true, false}}
		a.Run(flushingHost{fakeHost: host, rec: rec}, rec)
		So(log.Lines(), ShouldBeEmpty)
		So(rec.ids, ShouldHaveLength, 2)
		So(rec.ids[0], ShouldResemble, []int{0, 1, 2, 3, 4})
	})
}
