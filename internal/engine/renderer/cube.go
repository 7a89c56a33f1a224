package renderer

// cubeVertices is a unit cube centered on the origin: position + normal,
// counter-clockwise winding seen from outside.
var cubeVertices = []float32{
	// +X
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	// -X
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	// +Y
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	// -Y
	-0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	-0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	// +Z
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	// -Z
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
}

const boxVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vNormal = normalize(mat3(uModel) * aNormal);
	vWorldPos = (uModel * vec4(aPos, 1.0)).xyz;
}
`

const boxFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uColor;
uniform vec3 uLightDir;
uniform float uHighlight;

uniform vec3 uPointPos[8];
uniform vec3 uPointColor[8];
uniform float uPointRange[8];
uniform int uPointCount;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diffuse = max(dot(n, uLightDir), 0.0);
	vec3 light = vec3(0.3 + 0.5 * diffuse);

	for (int i = 0; i < uPointCount; i++) {
		vec3 toLight = uPointPos[i] - vWorldPos;
		float dist = length(toLight);
		float atten = clamp(1.0 - dist / uPointRange[i], 0.0, 1.0);
		light += uPointColor[i] * max(dot(n, toLight / dist), 0.0) * atten * atten;
	}

	vec3 lit = uColor * light;
	lit = mix(lit, vec3(1.0, 0.85, 0.55), 0.35 * uHighlight);
	FragColor = vec4(lit, 1.0);
}
`
