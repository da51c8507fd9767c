package mesh

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/gocad/brep/geom"
)

// Render draws an orthographic preview of the mesh into an RGBA
// image: an isometric-style view direction, painter's-algorithm depth
// sort, flat shading from the triangle normal, and the region color.
// It stands in for an interactive viewer when inspecting exports.
func Render(m *Mesh, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255 // white background
	}
	if m.TriangleCount() == 0 || width <= 0 || height <= 0 {
		return img
	}

	view := geom.V3(1, 1, 1).Normalize()
	right := geom.V3(1, -1, 0).Normalize()
	up := view.Cross(right).Normalize()

	project := func(v geom.Vec3) (geom.Vec2, float64) {
		return geom.V2(v.Dot(right), -v.Dot(up)), v.Dot(view)
	}

	// Fit the projected bounding box into the viewport with a margin.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range m.Vertices {
		p, _ := project(v)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 && spanY == 0 {
		return img
	}
	margin := 0.05
	scale := math.Min(
		float64(width)*(1-2*margin)/math.Max(spanX, 1e-12),
		float64(height)*(1-2*margin)/math.Max(spanY, 1e-12),
	)
	offsetX := (float64(width) - spanX*scale) / 2
	offsetY := (float64(height) - spanY*scale) / 2

	toScreen := func(p geom.Vec2) (float32, float32) {
		return float32((p.X-minX)*scale + offsetX),
			float32((p.Y-minY)*scale + offsetY)
	}

	// Painter's algorithm: draw back-to-front.
	order := make([]int, m.TriangleCount())
	depth := make([]float64, m.TriangleCount())
	for i := range order {
		order[i] = i
		t := m.Triangle(i)
		_, d0 := project(t[0])
		_, d1 := project(t[1])
		_, d2 := project(t[2])
		depth[i] = (d0 + d1 + d2) / 3
	}
	sort.Slice(order, func(a, b int) bool {
		return depth[order[a]] < depth[order[b]]
	})

	light := geom.V3(0.5, 0.25, 1).Normalize()
	z := vector.NewRasterizer(width, height)

	for _, i := range order {
		t := m.Triangle(i)
		base := m.Colors[i]

		shade := math.Abs(m.Normal(i).Dot(light))
		shade = 0.35 + 0.65*shade
		c := color.RGBA{
			R: uint8(float64(base.R) * shade),
			G: uint8(float64(base.G) * shade),
			B: uint8(float64(base.B) * shade),
			A: 255,
		}

		z.Reset(width, height)
		p0, _ := project(t[0])
		p1, _ := project(t[1])
		p2, _ := project(t[2])
		x0, y0 := toScreen(p0)
		x1, y1 := toScreen(p1)
		x2, y2 := toScreen(p2)
		z.MoveTo(x0, y0)
		z.LineTo(x1, y1)
		z.LineTo(x2, y2)
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}

	return img
}

// WritePNG renders the mesh and encodes the preview as PNG.
func WritePNG(w io.Writer, m *Mesh, width, height int) error {
	if err := png.Encode(w, Render(m, width, height)); err != nil {
		return fmt.Errorf("encoding preview PNG: %w", err)
	}
	return nil
}
