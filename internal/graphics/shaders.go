package graphics

// GLSL sources are embedded so the binary runs without an asset directory.

const sceneVertexSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;

out vec3 Normal;

void main() {
    gl_Position = proj * view * model * vec4(aPos, 1.0);
    Normal = mat3(model) * aNormal;
}
`

const sceneFragmentSource = `#version 410 core
in vec3 Normal;

uniform vec3 lightDir;
uniform vec4 objectColor;

out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(Normal), normalize(lightDir)), 0.0);
    float light = 0.45 + 0.55 * diffuse;
    FragColor = vec4(objectColor.rgb * light, objectColor.a);
}
`

const uiVertexSource = `#version 410 core
layout (location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const uiFragmentSource = `#version 410 core
uniform vec4 uColor;

out vec4 FragColor;

void main() {
    FragColor = uColor;
}
`

const fontVertexSource = `#version 410 core
layout (location = 0) in vec4 vertex; // xy = position, zw = texcoord

uniform mat4 projection;

out vec2 TexCoords;

void main() {
    gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
    TexCoords = vertex.zw;
}
`

const fontFragmentSource = `#version 410 core
in vec2 TexCoords;

uniform sampler2D text;
uniform vec3 textColor;

out vec4 FragColor;

void main() {
    float alpha = texture(text, TexCoords).r;
    FragColor = vec4(textColor, alpha);
}
`

const crosshairVertexSource = `#version 410 core
layout (location = 0) in vec2 aPos;

uniform float aspectRatio;

void main() {
    gl_Position = vec4(aPos.x / aspectRatio, aPos.y, 0.0, 1.0);
}
`

const crosshairFragmentSource = `#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 1.0, 1.0, 0.9);
}
`
