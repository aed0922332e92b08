package render

// Both programs place vertices with u_world only; rlgl's mvp is ignored so positions stay in clip space.
const (
	flatVS = `#version 330
in vec3 vertexPosition;
uniform mat4 u_world;
void main() {
  gl_Position = u_world * vec4(vertexPosition, 1.0);
}
`
	flatFS = `#version 330
out vec4 finalColor;
uniform vec3 u_color;
uniform float u_intensity;
void main() {
  finalColor = vec4(u_color * u_intensity, 1.0);
}
`
	vertexColorVS = `#version 330
in vec3 vertexPosition;
in vec4 vertexColor;
uniform mat4 u_world;
out vec3 color;
void main() {
  gl_Position = u_world * vec4(vertexPosition, 1.0);
  color = vertexColor.rgb;
}
`
	vertexColorFS = `#version 330
in vec3 color;
out vec4 finalColor;
void main() {
  finalColor = vec4(color, 1.0);
}
`
)
