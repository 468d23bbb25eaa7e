// Package renderer draws the garden scene graph and particle fields with
// OpenGL. Mesh geometry is uploaded once and cached; only the stream
// surfaces re-upload their positions each frame.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/oliviahylam/zen-garden/internal/engine/camera"
	"github.com/oliviahylam/zen-garden/internal/engine/lighting"
	"github.com/oliviahylam/zen-garden/internal/engine/shader"
	"github.com/oliviahylam/zen-garden/internal/garden/mesh"
	"github.com/oliviahylam/zen-garden/internal/garden/scenegraph"
	"github.com/oliviahylam/zen-garden/internal/garden/tableau"
	"github.com/oliviahylam/zen-garden/internal/logger"
	mathx "github.com/oliviahylam/zen-garden/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// gpuMesh is uploaded geometry for one mesh. Positions and normals live
// in separate buffers so dynamic surfaces can rewrite positions alone.
type gpuMesh struct {
	vao        uint32
	posVBO     uint32
	normVBO    uint32
	ebo        uint32
	indexCount int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	meshProgram  uint32
	pointProgram uint32

	// Mesh program uniforms.
	uProj    int32
	uView    int32
	uModel   int32
	uColor   int32
	uOpacity int32
	uLightA  int32
	uEye     int32

	// Point program uniforms.
	pProj  int32
	pView  int32
	pColor int32
	pSize  int32

	meshes map[*mesh.Mesh]*gpuMesh

	pointVAO uint32
	pointVBO uint32
	pointCap int
	scratch  []float32
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*mesh.Mesh]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	// Dusk sky.
	gl.ClearColor(0.10, 0.12, 0.20, 1.0)

	var err error
	r.meshProgram, err = shader.CompileProgram(meshVertexSrc, meshFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	r.uProj = shader.MustGetUniform(r.meshProgram, "uProj")
	r.uView = shader.MustGetUniform(r.meshProgram, "uView")
	r.uModel = shader.MustGetUniform(r.meshProgram, "uModel")
	r.uColor = shader.MustGetUniform(r.meshProgram, "uColor")
	r.uOpacity = shader.MustGetUniform(r.meshProgram, "uOpacity")
	r.uLightA = shader.MustGetUniform(r.meshProgram, "uLightDir")
	r.uEye = shader.MustGetUniform(r.meshProgram, "uEye")

	r.pointProgram, err = shader.CompileProgram(pointVertexSrc, pointFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("point program: %w", err)
	}
	r.pProj = shader.MustGetUniform(r.pointProgram, "uProj")
	r.pView = shader.MustGetUniform(r.pointProgram, "uView")
	r.pColor = shader.MustGetUniform(r.pointProgram, "uColor")
	r.pSize = shader.MustGetUniform(r.pointProgram, "uPointSize")

	gl.GenVertexArrays(1, &r.pointVAO)
	gl.GenBuffers(1, &r.pointVBO)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return r, nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, gm := range r.meshes {
		gl.DeleteBuffers(1, &gm.posVBO)
		gl.DeleteBuffers(1, &gm.normVBO)
		gl.DeleteBuffers(1, &gm.ebo)
		gl.DeleteVertexArrays(1, &gm.vao)
	}
	if r.pointVBO != 0 {
		gl.DeleteBuffers(1, &r.pointVBO)
	}
	if r.pointVAO != 0 {
		gl.DeleteVertexArrays(1, &r.pointVAO)
	}
	if r.meshProgram != 0 {
		gl.DeleteProgram(r.meshProgram)
	}
	if r.pointProgram != 0 {
		gl.DeleteProgram(r.pointProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene renders the garden for the given camera at the given elapsed
// time: stream surfaces re-upload, the node tree is walked with composed
// transforms, then the particle fields draw as points.
func (r *Renderer) DrawScene(scene *tableau.Scene, cam *camera.OrbitCamera, elapsed float64) {
	aspect := float32(r.config.Width) / float32(r.config.Height)
	proj := mathx.Perspective(0.9, aspect, 0.5, 600)
	view := cam.ViewMatrix()
	eye := cam.Position()

	for _, surface := range scene.Streams {
		r.refreshDynamic(surface.Node.Mesh)
	}

	gl.UseProgram(r.meshProgram)
	gl.UniformMatrix4fv(r.uProj, 1, false, proj.Ptr())
	gl.UniformMatrix4fv(r.uView, 1, false, view.Ptr())
	moon := lighting.MoonDirection(elapsed)
	gl.Uniform3f(r.uLightA, -moon[0], -moon[1], -moon[2])
	gl.Uniform3f(r.uEye, eye.X, eye.Y, eye.Z)

	scene.Root.Walk(elapsed, func(n *scenegraph.Node, world mathx.Mat4, vis scenegraph.Visual) {
		if n.Mesh == nil {
			return
		}
		gm := r.upload(n.Mesh, false)

		gl.UniformMatrix4fv(r.uModel, 1, false, world.Ptr())
		gl.Uniform3f(r.uColor, vis.Color[0], vis.Color[1], vis.Color[2])
		gl.Uniform1f(r.uOpacity, vis.Opacity)

		gl.BindVertexArray(gm.vao)
		gl.DrawElements(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, nil)
	})
	gl.BindVertexArray(0)

	r.drawFields(scene.Fields, proj, view)
}

func (r *Renderer) drawFields(fields []*tableau.PlacedField, proj, view mathx.Mat4) {
	if len(fields) == 0 {
		return
	}

	gl.UseProgram(r.pointProgram)
	gl.UniformMatrix4fv(r.pProj, 1, false, proj.Ptr())
	gl.UniformMatrix4fv(r.pView, 1, false, view.Ptr())
	// Particles are soft sprites; do not write depth so they layer.
	gl.DepthMask(false)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)

	for _, pf := range fields {
		particles := pf.Field.Particles
		if len(particles) == 0 {
			continue
		}

		r.scratch = r.scratch[:0]
		for i := range particles {
			p := particles[i].Pos
			r.scratch = append(r.scratch,
				p.X+pf.Center.X, p.Y+pf.Center.Y, p.Z+pf.Center.Z)
		}

		if len(r.scratch) > r.pointCap {
			gl.BufferData(gl.ARRAY_BUFFER, len(r.scratch)*4, unsafe.Pointer(&r.scratch[0]), gl.STREAM_DRAW)
			r.pointCap = len(r.scratch)
		} else {
			gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.scratch)*4, unsafe.Pointer(&r.scratch[0]))
		}

		gl.Uniform3f(r.pColor, pf.Color[0], pf.Color[1], pf.Color[2])
		gl.Uniform1f(r.pSize, pf.Size)
		gl.DrawArrays(gl.POINTS, 0, int32(len(particles)))
	}

	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// ReadPixels returns the current framebuffer as RGBA bytes, bottom-up.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	buf := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&buf[0]))
	return buf, w, h
}

// upload returns the cached GPU copy of m, creating it on first use.
func (r *Renderer) upload(m *mesh.Mesh, dynamic bool) *gpuMesh {
	if gm, ok := r.meshes[m]; ok {
		return gm
	}

	gm := &gpuMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	usage := uint32(gl.STATIC_DRAW)
	if dynamic {
		usage = gl.DYNAMIC_DRAW
	}

	gl.GenBuffers(1, &gm.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*3*4, unsafe.Pointer(&m.Positions[0][0]), usage)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &gm.normVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.normVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*3*4, unsafe.Pointer(&m.Normals[0][0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.meshes[m] = gm
	return gm
}

// refreshDynamic re-uploads the position buffer of a per-frame rewritten
// mesh.
func (r *Renderer) refreshDynamic(m *mesh.Mesh) {
	gm, ok := r.meshes[m]
	if !ok {
		r.upload(m, true)
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.posVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.Positions)*3*4, unsafe.Pointer(&m.Positions[0][0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

const meshVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uProj;
uniform mat4 uView;
uniform mat4 uModel;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uProj * uView * world;
}
`

const meshFragmentSrc = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uColor;
uniform float uOpacity;
uniform vec3 uLightDir;
uniform vec3 uEye;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diffuse = max(dot(n, normalize(-uLightDir)), 0.0);
	vec3 lit = uColor * (0.35 + 0.65 * diffuse);

	// Distance haze toward the sky color.
	float dist = length(vWorldPos - uEye);
	float haze = clamp((dist - 80.0) / 300.0, 0.0, 0.85);
	vec3 sky = vec3(0.10, 0.12, 0.20);

	FragColor = vec4(mix(lit, sky, haze), uOpacity);
}
`

const pointVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uProj;
uniform mat4 uView;
uniform float uPointSize;

void main() {
	vec4 viewPos = uView * vec4(aPos, 1.0);
	gl_Position = uProj * viewPos;
	// Shrink with distance for a rough perspective scale.
	gl_PointSize = uPointSize * clamp(60.0 / max(-viewPos.z, 1.0), 0.4, 4.0);
}
`

const pointFragmentSrc = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	vec2 d = gl_PointCoord - vec2(0.5);
	float r2 = dot(d, d);
	if (r2 > 0.25) {
		discard;
	}
	float fade = 1.0 - smoothstep(0.05, 0.25, r2);
	FragColor = vec4(uColor, fade * 0.8);
}
`
