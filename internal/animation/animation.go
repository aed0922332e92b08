package animation

import (
	"triangles/internal/mat4"
	"triangles/internal/scene"

	"github.com/chewxy/math32"
)

// Frame is what the renderer needs to draw one object for one frame.
type Frame struct {
	Model mat4.Mat4
	// Color is the uniform color. Ignored when VertexColor is set.
	Color scene.RGB
	// VertexColor means the geometry's own vertex colors are drawn unmodified.
	VertexColor bool
	Intensity   float32
}

// Oscillation angular speed in radians per second.
const oscillationSpeed = 1.2

type animator func(obj scene.Object, t float32) Frame

var animators = map[scene.Kind]animator{
	scene.Static:         static,
	scene.PerVertexColor: perVertexColor,
	scene.PulsingColor:   pulsing,
	scene.Oscillating:    oscillating,
	scene.Rotating:       rotating,
}

// Compute returns the model matrix and shading of obj at t seconds since start.
// It is a pure function of its arguments; unknown kinds are drawn as Static.
func Compute(obj scene.Object, t float32) Frame {
	fn, ok := animators[obj.Kind]
	if !ok {
		fn = static
	}
	return fn(obj, t)
}

func placed(obj scene.Object) mat4.Mat4 {
	return mat4.Translate(0, obj.Offset, 0)
}

func static(obj scene.Object, _ float32) Frame {
	return Frame{Model: placed(obj), Color: obj.Color, Intensity: 1}
}

func perVertexColor(obj scene.Object, _ float32) Frame {
	return Frame{Model: placed(obj), VertexColor: true, Intensity: 1}
}

func pulsing(obj scene.Object, t float32) Frame {
	return Frame{Model: placed(obj), Color: PulseColor(t), Intensity: 1}
}

func oscillating(obj scene.Object, t float32) Frame {
	x := obj.Amplitude * math32.Sin(oscillationSpeed*t)
	return Frame{Model: mat4.Translate(x, obj.Offset, 0), Color: obj.Color, Intensity: 1}
}

func rotating(obj scene.Object, t float32) Frame {
	return Frame{Model: mat4.Multiply(placed(obj), mat4.RotateZ(t)), Color: obj.Color, Intensity: 1}
}

// PulseColor is the time-varying color of PulsingColor objects. Each channel stays within [0,1].
func PulseColor(t float32) scene.RGB {
	return scene.RGB{
		0.5 + 0.5*math32.Sin(2*t),
		0.5 + 0.5*math32.Sin(2.3*t+1),
		0.5 + 0.5*math32.Sin(2.7*t+2),
	}
}
