package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
	"boxpush/internal/level"
	"boxpush/internal/profiling"
)

// Box colors keyed by interaction status. OnTarget gold must be clearly
// distinct from pushable green at a glance.
var (
	colorBoxNormal   = mgl32.Vec4{0.55, 0.35, 0.2, 1}
	colorBoxPushable = mgl32.Vec4{0.2, 0.7, 0.3, 1}
	colorBoxBlocked  = mgl32.Vec4{0.8, 0.2, 0.2, 1}
	colorBoxOnTarget = mgl32.Vec4{0.95, 0.8, 0.2, 1}

	colorWall     = mgl32.Vec4{0.5, 0.5, 0.52, 1}
	colorGround   = mgl32.Vec4{0.32, 0.38, 0.32, 1}
	colorTarget   = mgl32.Vec4{0.9, 0.75, 0.1, 1}
	colorParticle = mgl32.Vec4{1.0, 0.9, 0.4, 1}
)

var crosshairVertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

// Renderer draws the 3D scene from an immutable level snapshot. It never
// touches live level state.
type Renderer struct {
	sceneShader     *Shader
	crosshairShader *Shader

	cube *Mesh
	quad *Mesh

	crosshairVAO uint32
	crosshairVBO uint32

	projection  mgl32.Mat4
	aspectRatio float32
}

// NewRenderer initializes GL state and compiles the scene shaders. gl.Init
// must have been called.
func NewRenderer() (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	sceneShader, err := NewShader(sceneVertexSource, sceneFragmentSource)
	if err != nil {
		return nil, err
	}
	crosshairShader, err := NewShader(crosshairVertexSource, crosshairFragmentSource)
	if err != nil {
		return nil, err
	}

	aspect := float32(config.WindowWidth) / float32(config.WindowHeight)
	r := &Renderer{
		sceneShader:     sceneShader,
		crosshairShader: crosshairShader,
		cube:            newMesh(cubeVertices),
		quad:            newMesh(quadVertices),
		aspectRatio:     aspect,
		projection:      mgl32.Perspective(mgl32.DegToRad(config.FOV), aspect, config.NearPlane, config.FarPlane),
	}

	gl.GenVertexArrays(1, &r.crosshairVAO)
	gl.BindVertexArray(r.crosshairVAO)
	gl.GenBuffers(1, &r.crosshairVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.crosshairVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(crosshairVertices)*4, gl.Ptr(crosshairVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	return r, nil
}

// Clear wipes the frame to the sky color.
func (r *Renderer) Clear() {
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// RenderScene draws the level from the given view matrix. walls and targets
// come from the immutable level geometry, everything mutable from the
// snapshot.
func (r *Renderer) RenderScene(view mgl32.Mat4, walls, targets []mgl32.Vec3, snap level.Snapshot, now float64) {
	defer profiling.Track("renderer.RenderScene")()

	r.sceneShader.Use()
	r.sceneShader.SetMatrix4("proj", &r.projection[0])
	r.sceneShader.SetMatrix4("view", &view[0])

	light := mgl32.Vec3{0.3, 1.0, 0.3}.Normalize()
	r.sceneShader.SetVector3("lightDir", light.X(), light.Y(), light.Z())

	// Ground plane spanning the playfield.
	groundSize := float32(config.WorldBoundaryLimit) * 2
	ground := mgl32.Translate3D(0, -config.WallHalfExtent, 0).
		Mul4(mgl32.Scale3D(groundSize, 1, groundSize))
	r.drawMesh(r.quad, ground, colorGround)

	// Flat target markers sit just above the floor so they never z-fight.
	for _, t := range targets {
		model := mgl32.Translate3D(t.X(), -config.WallHalfExtent+0.01, t.Z()).
			Mul4(mgl32.Scale3D(0.8, 1, 0.8))
		r.drawMesh(r.quad, model, colorTarget)
	}

	for _, w := range walls {
		model := mgl32.Translate3D(w.X(), w.Y(), w.Z())
		r.drawMesh(r.cube, model, colorWall)
	}

	for _, b := range snap.Boxes {
		model := mgl32.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z())
		r.drawMesh(r.cube, model, boxColor(b.Status))
	}

	r.renderParticles(snap.Particles, now)
}

func boxColor(s level.BoxStatus) mgl32.Vec4 {
	switch s {
	case level.BoxPushable:
		return colorBoxPushable
	case level.BoxBlocked:
		return colorBoxBlocked
	case level.BoxOnTarget:
		return colorBoxOnTarget
	default:
		return colorBoxNormal
	}
}

// renderParticles draws landing bursts as small cubes that rise and shrink
// over their lifetime.
func (r *Renderer) renderParticles(particles []level.Particle, now float64) {
	for _, p := range particles {
		age := float32(now-p.Start) / float32(config.ParticleLifetime)
		if age < 0 || age >= 1 {
			continue
		}
		size := 0.15 * (1 - age)
		rise := age * 1.2
		model := mgl32.Translate3D(p.Position.X(), p.Position.Y()+config.BoxHalfExtent+rise, p.Position.Z()).
			Mul4(mgl32.Scale3D(size, size, size))
		r.drawMesh(r.cube, model, colorParticle)
	}
}

func (r *Renderer) drawMesh(m *Mesh, model mgl32.Mat4, color mgl32.Vec4) {
	r.sceneShader.SetMatrix4("model", &model[0])
	r.sceneShader.SetVector4("objectColor", color.X(), color.Y(), color.Z(), color.W())
	m.Draw()
}

// RenderCrosshair draws the center marker. Skipped while a menu is open.
func (r *Renderer) RenderCrosshair() {
	r.crosshairShader.Use()
	r.crosshairShader.SetFloat("aspectRatio", r.aspectRatio)

	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(r.crosshairVAO)
	gl.LineWidth(2.0)
	gl.DrawArrays(gl.LINES, 0, 4)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose releases GL resources.
func (r *Renderer) Dispose() {
	r.cube.Dispose()
	r.quad.Dispose()
	if r.crosshairVAO != 0 {
		gl.DeleteVertexArrays(1, &r.crosshairVAO)
	}
	if r.crosshairVBO != 0 {
		gl.DeleteBuffers(1, &r.crosshairVBO)
	}
}
