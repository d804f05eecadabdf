package glcore

// Attribute locations are fixed so that vertex arrays can be described before
// the program is linked.
const (
	AttribPos    = 0
	AttribColour = 1
)

const vertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColour;

out vec4 vColour;

void main()
{
	// [0,1]² with Y down to clip space; larger depth is closer.
	gl_Position = vec4(aPos.x*2.0 - 1.0, 1.0 - aPos.y*2.0, -aPos.z, 1.0);
	vColour = aColour;
}
`

const fragmentShader = `#version 330 core
in vec4 vColour;
out vec4 fragColour;

void main()
{
	fragColour = vColour;
}
`
