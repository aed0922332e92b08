package render

import (
	"triangles/internal/animation"
	"triangles/internal/logger"
	"triangles/internal/mat4"
	"triangles/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// program is a loaded shader and the uniform locations it exposes (-1 when absent).
type program struct {
	shader    rl.Shader
	world     int32
	color     int32
	intensity int32
}

func loadProgram(name, vs, fs string, log *logger.Logger) program {
	sh := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(sh) && log != nil {
		// Not fatal: drawing continues with whatever raylib returned.
		log.Logf("shader %s: compile or link failed", name)
	}
	return program{
		shader:    sh,
		world:     rl.GetShaderLocation(sh, "u_world"),
		color:     rl.GetShaderLocation(sh, "u_color"),
		intensity: rl.GetShaderLocation(sh, "u_intensity"),
	}
}

// Pipeline owns the two shader programs and draws objects through rlgl's immediate mode.
// Create it after the window is open and Close it before the window closes.
type Pipeline struct {
	flat   program
	vertex program
}

// New compiles the uniform-color and vertex-color programs. Failures are logged to log (may be nil).
func New(log *logger.Logger) *Pipeline {
	return &Pipeline{
		flat:   loadProgram("uniform color", flatVS, flatFS, log),
		vertex: loadProgram("vertex color", vertexColorVS, vertexColorFS, log),
	}
}

// Close releases both programs.
func (p *Pipeline) Close() {
	rl.UnloadShader(p.flat.shader)
	rl.UnloadShader(p.vertex.shader)
}

// Draw renders obj with the model matrix and shading in f. Each object is flushed on its own,
// since its uniforms differ from the next one's.
func (p *Pipeline) Draw(obj scene.Object, f animation.Frame) {
	prog := p.flat
	if f.VertexColor {
		prog = p.vertex
	}
	rl.BeginShaderMode(prog.shader)
	if prog.world >= 0 {
		rl.SetShaderValueMatrix(prog.shader, prog.world, toMatrix(f.Model))
	}
	if !f.VertexColor {
		if prog.color >= 0 {
			rl.SetShaderValue(prog.shader, prog.color, []float32{f.Color[0], f.Color[1], f.Color[2]}, rl.ShaderUniformVec3)
		}
		if prog.intensity >= 0 {
			rl.SetShaderValue(prog.shader, prog.intensity, []float32{f.Intensity}, rl.ShaderUniformFloat)
		}
	}

	rl.Begin(rl.Triangles)
	for _, v := range scene.GeometryOf(obj.Geometry) {
		rl.Color4ub(channel(v.Color[0]), channel(v.Color[1]), channel(v.Color[2]), 255)
		rl.Vertex2f(v.X, v.Y)
	}
	rl.End()
	rl.DrawRenderBatchActive()
	rl.EndShaderMode()
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// toMatrix copies a column-major Mat4 into raylib's layout. raylib names elements so that
// M12..M14 hold the translation, matching index order one to one.
func toMatrix(m mat4.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
