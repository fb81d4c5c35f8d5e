package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"robot-scene/internal/geometry"
	"robot-scene/internal/scene"
	"robot-scene/internal/skeleton"
	"robot-scene/internal/texture"
)

// ClearColor is the background left wherever nothing is drawn.
var ClearColor = color.NRGBA{51, 51, 51, 255}

// Options control a single render.
type Options struct {
	Width, Height int
	Supersample   int  // render at Width*Supersample; the caller downsamples
	Lit           bool // flat lighting instead of the plain texture colour
	FaceColors    bool // paint the robot with vertex colours instead of textures
}

// Stats counts what a render did.
type Stats struct {
	Triangles int // submitted
	Culled    int // back faces
	Clipped   int // entirely outside the near/far planes
	Pixels    int // written
}

// wrapper is implemented by resolvers that know each texture's wrap mode.
type wrapper interface {
	Repeats(texName string) bool
}

var (
	skyboxMesh = geometry.Skybox()
	floorMesh  = geometry.Floor()
	robotRig   = skeleton.Robot()
)

// RenderFrame draws a scene snapshot: skybox (no depth writes), floor, robot.
func RenderFrame(f scene.Frame, res texture.Resolver, opts Options) *image.NRGBA {
	img, _ := Render(f, res, opts)
	return img
}

// Render is RenderFrame with statistics.
func Render(f scene.Frame, res texture.Resolver, opts Options) (*image.NRGBA, Stats) {
	r := newRenderer(f, res, opts)

	identity := mgl64.Ident4()
	r.drawMesh(skyboxMesh, identity, texture.Skybox, false)
	r.drawMesh(floorMesh, identity, texture.Floor, true)
	for _, inst := range robotRig.Assemble(f.State) {
		name := inst.Texture
		if opts.FaceColors {
			name = ""
		}
		r.drawMesh(inst.Mesh, inst.World, name, true)
	}
	return r.fb.Image(), r.stats
}

func newRenderer(f scene.Frame, res texture.Resolver, opts Options) *renderer {
	if opts.Width <= 0 || opts.Height <= 0 {
		panic(fmt.Sprintf("raster: invalid size %dx%d", opts.Width, opts.Height))
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	return &renderer{
		fb:   NewFrameBuffer(opts.Width*ss, opts.Height*ss, ClearColor),
		res:  res,
		lc:   DefaultLightConfig(),
		opts: opts,
		viewProj: f.Camera.ProjectionMatrix(float64(opts.Width) / float64(opts.Height)).
			Mul4(f.Camera.ViewMatrix()),
	}
}

type renderer struct {
	fb       *FrameBuffer
	res      texture.Resolver
	lc       LightConfig
	opts     Options
	viewProj mgl64.Mat4
	stats    Stats

	poly, buf [8]vertex
}

// drawMesh transforms, clips, culls and rasterises every triangle of m.
// An empty texture name paints vertex colours.
func (r *renderer) drawMesh(m *geometry.Mesh, model mgl64.Mat4, texName string, depthWrite bool) {
	s := surface{depthWrite: depthWrite}
	if texName != "" && r.res != nil {
		s.tex = r.res.Resolve(texName)
		s.repeat = texture.IsPowerOfTwo(s.tex)
		if w, ok := r.res.(wrapper); ok {
			s.repeat = w.Repeats(texName)
		}
	}

	mvp := r.viewProj.Mul4(model)
	n := len(m.Verts)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		r.stats.Triangles++
		var tri [3]vertex
		var world [3]mgl64.Vec3
		for k := 0; k < 3; k++ {
			idx := int(m.Indices[i+k])
			if idx >= n {
				panic(fmt.Sprintf("raster: index %d out of range (%d verts)", idx, n))
			}
			p := m.Verts[idx]
			world[k] = mgl64.TransformCoordinate(p, model)
			tri[k] = vertex{clip: mvp.Mul4x1(p.Vec4(1)), uv: m.UVs[idx], color: m.Colors[idx]}
		}

		if r.opts.Lit {
			normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
			if l := normal.Len(); l > 1e-12 {
				s.shade = r.lc.ComputeShade(normal.Mul(1 / l))
			}
		}
		r.drawTriangle(tri, &s)
	}
}

func (r *renderer) drawTriangle(tri [3]vertex, s *surface) {
	poly := append(r.poly[:0], tri[:]...)
	poly = clipPolygon(poly, r.buf[:0])
	if len(poly) < 3 {
		r.stats.Clipped++
		return
	}

	var sv [8]screenVertex
	for i, v := range poly {
		sv[i] = toScreen(v, r.fb.Width, r.fb.Height)
	}
	if !frontFacing(sv[0], sv[1], sv[2]) {
		r.stats.Culled++
		return
	}
	for i := 1; i+1 < len(poly); i++ {
		r.stats.Pixels += rasterizeTriangle(r.fb, sv[0], sv[i], sv[i+1], s, &r.lc)
	}
}
