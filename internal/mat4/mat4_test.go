package mat4

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

const tolerance = 1e-5

func shouldMatchMatrix(actual any, expected ...any) string {
	a := actual.(Mat4)
	e := expected[0].(Mat4)
	for i := range a {
		if msg := ShouldAlmostEqual(a[i], e[i], tolerance); msg != "" {
			return msg
		}
	}
	return ""
}

var samples = []Mat4{
	Translate(0.3, -0.7, 2),
	RotateZ(1.1),
	Multiply(Translate(0, 0.4, 0), RotateZ(-2.5)),
	{0.5, -0.25, 0, 0, 0.125, 1, 0.75, 0, 0, -0.5, 1, 0, 0.3, 0.2, -0.1, 1},
}

func TestConstructors(t *testing.T) {
	Convey("Identity has ones on the diagonal only", t, func() {
		m := Identity()
		for i := range m {
			if i%5 == 0 {
				So(m[i], ShouldEqual, float32(1))
			} else {
				So(m[i], ShouldEqual, float32(0))
			}
		}
	})

	Convey("Translate stores the offset in the last column", t, func() {
		m := Translate(0.25, -0.5, 3)
		So(m.Col(3), ShouldResemble, Vec4{0.25, -0.5, 3, 1})
		So(m.Apply(Point(0, 0, 0)), ShouldResemble, Vec4{0.25, -0.5, 3, 1})
		So(m.Apply(Point(1, 2, 3)), ShouldResemble, Vec4{1.25, 1.5, 6, 1})
	})

	Convey("RotateZ uses the column-major layout", t, func() {
		m := RotateZ(0.5)
		c, s := float32(math.Cos(0.5)), float32(math.Sin(0.5))
		So(m[0], ShouldAlmostEqual, c, tolerance)
		So(m[1], ShouldAlmostEqual, s, tolerance)
		So(m[4], ShouldAlmostEqual, -s, tolerance)
		So(m[5], ShouldAlmostEqual, c, tolerance)
		So(m[10], ShouldEqual, float32(1))
		So(m[15], ShouldEqual, float32(1))

		Convey("and turns counter-clockwise", func() {
			p := RotateZ(math.Pi / 2).Apply(Point(1, 0, 0))
			So(p[0], ShouldAlmostEqual, 0, tolerance)
			So(p[1], ShouldAlmostEqual, 1, tolerance)
		})

		Convey("with unit determinant", func() {
			for _, a := range []float32{-3, -0.2, 0, 0.7, 2, 9} {
				r := RotateZ(a)
				So(r[0]*r[5]-r[4]*r[1], ShouldAlmostEqual, 1, tolerance)
			}
		})

		Convey("matching mathgl", func() {
			for _, a := range []float32{-1.3, 0.4, 3} {
				So(RotateZ(a), shouldMatchMatrix, Mat4(mgl32.HomogRotate3DZ(a)))
			}
		})
	})

	Convey("RotateZ(0) is exactly the identity", t, func() {
		So(RotateZ(0), ShouldResemble, Identity())
	})
}

func TestMultiply(t *testing.T) {
	Convey("Identity is neutral on both sides", t, func() {
		for _, m := range samples {
			So(Multiply(Identity(), m), ShouldResemble, m)
			So(Multiply(m, Identity()), ShouldResemble, m)
		}
	})

	Convey("Opposite rotations cancel", t, func() {
		for _, a := range []float32{-7, -1, 0.001, 0.5, 3.14159, 12} {
			So(Multiply(RotateZ(a), RotateZ(-a)), shouldMatchMatrix, Identity())
			So(Multiply(RotateZ(-a), RotateZ(a)), shouldMatchMatrix, Identity())
		}
	})

	Convey("The product applies the right operand first", t, func() {
		m := Multiply(Translate(1, 0, 0), RotateZ(math.Pi/2))
		p := m.Apply(Point(1, 0, 0))
		So(p[0], ShouldAlmostEqual, 1, tolerance)
		So(p[1], ShouldAlmostEqual, 1, tolerance)

		q := Multiply(RotateZ(math.Pi/2), Translate(1, 0, 0)).Apply(Point(1, 0, 0))
		So(q[0], ShouldAlmostEqual, 0, tolerance)
		So(q[1], ShouldAlmostEqual, 2, tolerance)
	})

	Convey("Products agree with mathgl", t, func() {
		for _, a := range samples {
			for _, b := range samples {
				want := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))
				So(Multiply(a, b), shouldMatchMatrix, Mat4(want))
			}
		}
	})

	Convey("Operands are left untouched", t, func() {
		a, b := Translate(1, 2, 3), RotateZ(1)
		ac, bc := a, b
		_ = Multiply(a, b)
		So(a, ShouldResemble, ac)
		So(b, ShouldResemble, bc)
	})
}
