package render

import (
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/philipparndt/gotriangle/pkg/viewport"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	labelFont     *opentype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

// labelFace returns the label font at the given size. Labels are skipped
// when the embedded font cannot be parsed.
func labelFace(size float64) font.Face {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
	})
	if labelFontErr != nil {
		return nil
	}

	face, err := opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}

// Raster draws the scene onto an image. The region is fitted into the image
// the same way the SVG viewBox is.
func Raster(sc scene.Scene, size Size, style Style) image.Image {
	size = size.orRegion(sc)
	width := int(size.Width + 0.5)
	height := int(size.Height + 0.5)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	setColor(dc, style.Background)
	dc.Clear()

	mapping := viewport.FitMapping(sc.Region, float64(width), float64(height))
	face := labelFace(style.FontSize)

	for _, p := range sc.Primitives {
		drawRaster(dc, mapping, face, p, style)
	}
	return dc.Image()
}

// WritePNG draws the scene and encodes it as PNG
func WritePNG(w io.Writer, sc scene.Scene, size Size, style Style) error {
	img := Raster(sc, size, style)
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return errors.Wrap(err, "failed to encode png")
	}
	return nil
}

// SavePNG draws the scene into a PNG file
func SavePNG(path string, sc scene.Scene, size Size, style Style) error {
	dc := gg.NewContextForImage(Raster(sc, size, style))
	if err := dc.SavePNG(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}

func setColor(dc *gg.Context, c color.RGBA) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

func setStroke(dc *gg.Context, stroke Stroke) {
	setColor(dc, stroke.Color)
	dc.SetLineWidth(stroke.Width)
	if len(stroke.Dash) > 0 {
		dc.SetDash(stroke.Dash...)
	} else {
		dc.SetDash()
	}
}

func path(dc *gg.Context, mapping viewport.ScreenMapping, points []geometry.Point) {
	for i, pt := range points {
		s := mapping.LocalToScreen(pt)
		if i == 0 {
			dc.MoveTo(s.X, s.Y)
		} else {
			dc.LineTo(s.X, s.Y)
		}
	}
}

func drawRaster(dc *gg.Context, mapping viewport.ScreenMapping, face font.Face, p scene.Primitive, style Style) {
	stroke := style.Stroke(p.Layer)

	switch p.Kind {
	case scene.KindGridLine, scene.KindSegment, scene.KindRightAngle:
		setStroke(dc, stroke)
		path(dc, mapping, p.Points)
		dc.Stroke()

	case scene.KindCircle:
		c := mapping.LocalToScreen(p.Points[0])
		setStroke(dc, stroke)
		dc.DrawCircle(c.X, c.Y, mapping.ScreenDistance(p.Radius))
		dc.Stroke()

	case scene.KindPolygon:
		path(dc, mapping, p.Points)
		dc.ClosePath()
		setColor(dc, style.TriangleFill)
		dc.FillPreserve()
		setStroke(dc, stroke)
		dc.Stroke()

	case scene.KindHalo:
		c := mapping.LocalToScreen(p.Points[0])
		setColor(dc, style.HaloFill)
		dc.DrawCircle(c.X, c.Y, mapping.ScreenDistance(p.Radius))
		dc.Fill()

	case scene.KindMarker:
		c := mapping.LocalToScreen(p.Points[0])
		setColor(dc, stroke.Color)
		dc.DrawCircle(c.X, c.Y, mapping.ScreenDistance(p.Radius))
		dc.Fill()

	case scene.KindHandle:
		c := mapping.LocalToScreen(p.Points[0])
		dc.DrawCircle(c.X, c.Y, mapping.ScreenDistance(p.Radius))
		setColor(dc, style.HandleFill)
		dc.FillPreserve()
		setStroke(dc, stroke)
		dc.Stroke()

	case scene.KindLabel:
		if face == nil {
			return
		}
		c := mapping.LocalToScreen(p.Points[0])
		dc.SetFontFace(face)
		setColor(dc, style.LabelColor)
		dc.DrawStringAnchored(p.Text, c.X, c.Y, 0.5, 0.5)
	}
}
