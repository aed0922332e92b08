package scene

import (
	"fmt"
	"strings"
)

// RGB is a linear color with channels in [0,1].
type RGB [3]float32

// Vertex is a 2D position with its own color. Per-vertex colors are only shown for the Rainbow geometry.
type Vertex struct {
	X, Y  float32
	Color RGB
}

// Geometry is the three vertices of one triangle, wound apex, bottom-right, bottom-left.
type Geometry [3]Vertex

// GeometryID selects one of the fixed triangle geometries.
type GeometryID int

const (
	White GeometryID = iota
	Rainbow
	Base
)

var (
	white = RGB{1, 1, 1}

	geometries = [...]Geometry{
		White: {
			{X: 0, Y: 0.25, Color: white},
			{X: 0.25, Y: -0.25, Color: white},
			{X: -0.25, Y: -0.25, Color: white},
		},
		Rainbow: {
			{X: 0, Y: 0.25, Color: RGB{1, 0, 0}},
			{X: 0.25, Y: -0.25, Color: RGB{0, 1, 0}},
			{X: -0.25, Y: -0.25, Color: RGB{0, 0, 1}},
		},
		Base: {
			{X: 0, Y: 0.25, Color: white},
			{X: 0.25, Y: -0.25, Color: white},
			{X: -0.25, Y: -0.25, Color: white},
		},
	}
)

// GeometryOf returns the vertices for id. Out-of-range ids get Base.
func GeometryOf(id GeometryID) Geometry {
	if id < 0 || int(id) >= len(geometries) {
		return geometries[Base]
	}
	return geometries[id]
}

func (g GeometryID) String() string {
	switch g {
	case White:
		return "white"
	case Rainbow:
		return "rainbow"
	case Base:
		return "base"
	}
	return fmt.Sprintf("geometry(%d)", int(g))
}

// Kind tags the time-driven formula used for an object.
type Kind int

const (
	Static Kind = iota
	PerVertexColor
	PulsingColor
	Oscillating
	Rotating
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case PerVertexColor:
		return "per-vertex color"
	case PulsingColor:
		return "pulsing color"
	case Oscillating:
		return "oscillating"
	case Rotating:
		return "rotating"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Object is one drawable triangle. Objects are built once by New and only read afterwards.
type Object struct {
	ID       int
	Geometry GeometryID
	Offset   float32 // vertical translation
	Kind     Kind
	Color    RGB // used by Static, Oscillating and Rotating
	// Amplitude is the horizontal swing of an Oscillating object.
	Amplitude float32
}

// Layout chooses between showing one switchable object and all objects at once.
type Layout int

const (
	// Single draws only the active object, centered; the advance key cycles through them.
	Single Layout = iota
	// Stacked draws every object each frame, spread vertically.
	Stacked
)

// ParseLayout accepts "single" or "stacked" (case-insensitive).
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "":
		return Single, nil
	case "stacked":
		return Stacked, nil
	}
	return Single, fmt.Errorf("unknown layout %q (want single or stacked)", s)
}

func (l Layout) String() string {
	if l == Stacked {
		return "stacked"
	}
	return "single"
}

// DefaultAmplitude is the oscillation amplitude used when none is configured.
// Centered objects have room to swing the full unit; stacked ones keep to half.
func (l Layout) DefaultAmplitude() float32 {
	if l == Stacked {
		return 0.5
	}
	return 1.0
}

// Count is the number of objects in every layout.
const Count = 5

// stackedOffsets spread the objects top (id 0) to bottom (id 4) so that the outer tips
// touch y = ±1 and every triangle stays inside clip space at rest.
var stackedOffsets = [Count]float32{0.75, 0.375, 0, -0.375, -0.75}

// New builds the fixed object table for layout. amplitude <= 0 selects the layout default.
func New(layout Layout, amplitude float32) []Object {
	if amplitude <= 0 {
		amplitude = layout.DefaultAmplitude()
	}
	objs := []Object{
		{ID: 0, Geometry: White, Kind: Static, Color: RGB{1, 1, 1}},
		{ID: 1, Geometry: Rainbow, Kind: PerVertexColor},
		{ID: 2, Geometry: Base, Kind: PulsingColor},
		{ID: 3, Geometry: Base, Kind: Oscillating, Color: RGB{1, 0.5, 0}},
		{ID: 4, Geometry: Base, Kind: Rotating, Color: RGB{0.2, 0.8, 0.2}},
	}
	for i := range objs {
		objs[i].Amplitude = amplitude
		if layout == Stacked {
			objs[i].Offset = stackedOffsets[i]
		}
	}
	return objs
}
