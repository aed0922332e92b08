package app

import (
	"bytes"
	"testing"

	"triangles/internal/animation"
	"triangles/internal/scene"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDescribe(t *testing.T) {
	Convey("Describe prints matrix rows, shading and placed vertices", t, func() {
		obj := scene.New(scene.Stacked, 0)[0]
		var buf bytes.Buffer
		So(Describe(&buf, Draw{Object: obj, Frame: animation.Compute(obj, 0)}), ShouldBeNil)

		out := buf.String()
		So(out, ShouldStartWith, "object 1 (static, white geometry, offset 0.75)\n")
		So(out, ShouldContainSubstring, "   0.00000  1.00000  0.00000  0.75000\n")
		So(out, ShouldContainSubstring, "color: 1.00000 1.00000 1.00000\n")
		So(out, ShouldContainSubstring, "intensity: 1\n")
		So(out, ShouldContainSubstring, "   0.00000  1.00000\n")
	})

	Convey("Vertex-colored objects say so", t, func() {
		obj := scene.New(scene.Single, 0)[1]
		var buf bytes.Buffer
		So(Describe(&buf, Draw{Object: obj, Frame: animation.Compute(obj, 2)}), ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "color: per-vertex\n")
	})
}
