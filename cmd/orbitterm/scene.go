package main

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// segment is one wireframe edge in world space.
type segment struct {
	a, b mgl32.Vec3
}

// canvas is the part of tcell.Screen the renderer draws on.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// wireCube returns the twelve edges of an axis-aligned cube.
func wireCube(center mgl32.Vec3, half float32) []segment {
	var corners [8]mgl32.Vec3
	for i := range corners {
		sx, sy, sz := float32(-1), float32(-1), float32(-1)
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		corners[i] = center.Add(mgl32.Vec3{sx, sy, sz}.Mul(half))
	}

	var edges []segment
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				edges = append(edges, segment{corners[i], corners[j]})
			}
		}
	}
	return edges
}

// groundGrid returns a square grid on the plane y = height, split into unit-length segments
// so that frustum culling works per cell.
func groundGrid(halfSize int, height float32) []segment {
	var edges []segment
	for i := -halfSize; i <= halfSize; i++ {
		for j := -halfSize; j < halfSize; j++ {
			fi, fj := float32(i), float32(j)
			edges = append(edges,
				segment{mgl32.Vec3{fi, height, fj}, mgl32.Vec3{fi, height, fj + 1}},
				segment{mgl32.Vec3{fj, height, fi}, mgl32.Vec3{fj + 1, height, fi}},
			)
		}
	}
	return edges
}

func defaultScene() []segment {
	scene := wireCube(mgl32.Vec3{}, 1)
	scene = append(scene, wireCube(mgl32.Vec3{2.5, -0.5, -1.5}, 0.5)...)
	return append(scene, groundGrid(5, -1)...)
}

// projector maps world points to terminal cells through a camera's view-projection.
type projector struct {
	viewProj   mgl32.Mat4
	frustum    common.Frustum
	cols, rows int
}

func newProjector(cam camera.Camera, cols, rows int) projector {
	viewProj := cam.ViewProjectionMatrix()
	return projector{
		viewProj: viewProj,
		frustum:  common.ExtractFrustum(viewProj),
		cols:     cols,
		rows:     rows,
	}
}

// cell returns the terminal cell p lands on. ok is false behind the camera.
func (p projector) cell(point mgl32.Vec3) (x, y int, ok bool) {
	clip := p.viewProj.Mul4x1(point.Vec4(1))
	w := clip.W()
	if w <= 1e-6 {
		return 0, 0, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	x = int(math.Floor(float64((ndcX + 1) / 2 * float32(p.cols))))
	y = int(math.Floor(float64((1 - ndcY) / 2 * float32(p.rows))))
	return x, y, true
}

func (p projector) inBounds(x, y int) bool {
	return x >= 0 && x < p.cols && y >= 0 && y < p.rows
}

// drawScene draws every visible segment and returns how many were drawn.
func drawScene(c canvas, cam camera.Camera, segments []segment, style tcell.Style) int {
	cols, rows := c.Size()
	p := newProjector(cam, cols, rows)

	drawn := 0
	for _, s := range segments {
		if !p.frustum.ContainsPoint(s.a) && !p.frustum.ContainsPoint(s.b) {
			continue
		}
		x0, y0, ok0 := p.cell(s.a)
		x1, y1, ok1 := p.cell(s.b)
		if !ok0 || !ok1 {
			continue
		}
		if drawLine(c, p, x0, y0, x1, y1, style) {
			drawn++
		}
	}

	if x, y, ok := p.cell(cam.Target()); ok && p.inBounds(x, y) {
		c.SetContent(x, y, '+', nil, style.Foreground(tcell.ColorYellow))
	}
	return drawn
}

// lineRune picks a character that follows the slope of a line in cell space.
func lineRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady*2 < adx:
		return '-'
	case adx*2 < ady:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// drawLine rasterizes with Bresenham, clipping per cell. Lines much longer than the screen are
// skipped; they only occur for points grazing the near plane.
func drawLine(c canvas, p projector, x0, y0, x1, y1 int, style tcell.Style) bool {
	dx, dy := x1-x0, y1-y0
	if max(abs(dx), abs(dy)) > 4*(p.cols+p.rows) {
		return false
	}
	ch := lineRune(dx, dy)

	sx, sy := sign(dx), sign(dy)
	adx, ady := abs(dx), -abs(dy)
	err := adx + ady
	x, y := x0, y0
	for {
		if p.inBounds(x, y) {
			c.SetContent(x, y, ch, nil, style)
		}
		if x == x1 && y == y1 {
			return true
		}
		e2 := 2 * err
		if e2 >= ady {
			err += ady
			x += sx
		}
		if e2 <= adx {
			err += adx
			y += sy
		}
	}
}

func drawText(c canvas, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
