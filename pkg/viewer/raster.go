package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/gotriangle/pkg/geometry"
)

// fillTriangle fills a triangle on an image using a scanline algorithm,
// blending the color over what is already there. Pixels are filled when
// their center lies inside.
func fillTriangle(img *image.RGBA, a, b, c geometry.Point, col color.Color) {
	vertices := [3]geometry.Point{a, b, c}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0].Y > vertices[1].Y {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1].Y > vertices[2].Y {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0].Y > vertices[1].Y {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	top, mid, bottom := vertices[0], vertices[1], vertices[2]

	bounds := img.Bounds()
	src := image.NewUniform(col)

	// Sample each row at its center
	yStart := int(math.Max(float64(bounds.Min.Y), math.Ceil(top.Y-0.5)))
	yEnd := int(math.Min(float64(bounds.Max.Y-1), math.Floor(bottom.Y-0.5)))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y) + 0.5

		intersections := make([]float64, 0, 3)
		for _, edge := range [3][2]geometry.Point{{top, mid}, {mid, bottom}, {top, bottom}} {
			p, q := edge[0], edge[1]
			if p.Y == q.Y || fy < p.Y || fy > q.Y {
				continue
			}
			t := (fy - p.Y) / (q.Y - p.Y)
			intersections = append(intersections, p.X+t*(q.X-p.X))
		}
		if len(intersections) < 2 {
			continue
		}

		xStart, xEnd := intersections[0], intersections[0]
		for _, x := range intersections[1:] {
			xStart = math.Min(xStart, x)
			xEnd = math.Max(xEnd, x)
		}

		// Clamp to image bounds
		x0 := int(math.Max(float64(bounds.Min.X), math.Ceil(xStart-0.5)))
		x1 := int(math.Min(float64(bounds.Max.X-1), math.Floor(xEnd-0.5)))
		if x0 > x1 {
			continue
		}
		draw.Draw(img, image.Rect(x0, y, x1+1, y+1), src, image.Point{}, draw.Over)
	}
}
