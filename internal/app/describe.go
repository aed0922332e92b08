package app

import (
	"fmt"
	"io"

	"triangles/internal/mat4"
	"triangles/internal/scene"
)

// Describe writes a plain-text dump of d: the model matrix by rows, the shading and the
// transformed vertices. Used by the headless frame command.
func Describe(w io.Writer, d Draw) error {
	obj, f := d.Object, d.Frame
	if _, err := fmt.Fprintf(w, "object %d (%s, %s geometry, offset %g)\n", obj.ID+1, obj.Kind, obj.Geometry, obj.Offset); err != nil {
		return err
	}
	fmt.Fprintln(w, "model:")
	for row := 0; row < 4; row++ {
		fmt.Fprintf(w, "  % .5f % .5f % .5f % .5f\n", f.Model[row], f.Model[4+row], f.Model[8+row], f.Model[12+row])
	}
	if f.VertexColor {
		fmt.Fprintln(w, "color: per-vertex")
	} else {
		fmt.Fprintf(w, "color: %.5f %.5f %.5f\n", f.Color[0], f.Color[1], f.Color[2])
	}
	fmt.Fprintf(w, "intensity: %g\n", f.Intensity)
	fmt.Fprintln(w, "vertices:")
	for _, v := range scene.GeometryOf(obj.Geometry) {
		p := f.Model.Apply(mat4.Point(v.X, v.Y, 0))
		if _, err := fmt.Fprintf(w, "  % .5f % .5f\n", p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}
