package chart

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"
)

// Surface is the drawing sink the renderer submits finished geometry
// to. The renderer never touches pixels; host frameworks adapt their
// own rasterizer or canvas behind this interface. ImageSurface is a
// ready-made software implementation.
type Surface interface {
	// StrokePath strokes the outline of a path.
	StrokePath(path *Path, paint Paint, width float64)

	// FillPath fills the region enclosed by a path.
	FillPath(path *Path, paint Paint)
}

// ImageSurface is a software Surface rasterizing into an in-memory
// image via golang.org/x/image/vector. Paths are rendered to an
// anti-aliased coverage mask and composited with the paint, so
// gradient fills sample their color per pixel.
type ImageSurface struct {
	img *image.NRGBA
	w   int
	h   int
}

// NewImageSurface creates a surface of the given pixel dimensions.
// The image starts fully transparent.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
		w:   width,
		h:   height,
	}
}

// Image returns the underlying image.
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}

// Clear fills the whole surface with a background color.
func (s *ImageSurface) Clear(c RGBA) {
	col := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			s.img.SetNRGBA(x, y, col)
		}
	}
}

// FillPath implements Surface.
func (s *ImageSurface) FillPath(path *Path, paint Paint) {
	if path.IsEmpty() {
		return
	}
	mask := s.rasterize(path)
	s.composite(mask, paint)
}

// StrokePath implements Surface. The polyline is expanded into one
// quad per segment and the quads are filled together, which gives
// bevel-like joins; good enough for chart line widths.
func (s *ImageSurface) StrokePath(path *Path, paint Paint, width float64) {
	if path.IsEmpty() {
		return
	}
	if width <= 0 {
		width = 1
	}
	outline := strokeOutline(path, width)
	if outline.IsEmpty() {
		return
	}
	mask := s.rasterize(outline)
	s.composite(mask, paint)
}

// rasterize renders the path into an anti-aliased coverage mask.
func (s *ImageSurface) rasterize(path *Path) *image.Alpha {
	r := vector.NewRasterizer(s.w, s.h)
	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case LineTo:
			r.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case Close:
			if open {
				r.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, s.w, s.h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// composite blends the paint onto the image wherever the mask has
// coverage, sampling the paint color per pixel (source-over).
func (s *ImageSurface) composite(mask *image.Alpha, paint Paint) {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			cov := mask.AlphaAt(x, y).A
			if cov == 0 {
				continue
			}
			c := paint.ColorAt(float64(x)+0.5, float64(y)+0.5)
			alpha := c.A * float64(cov) / 255
			if alpha <= 0 {
				continue
			}
			// Read the destination straight from the NRGBA storage:
			// going through color.Color.RGBA would premultiply and the
			// blend below multiplies by dst.A itself.
			n := s.img.NRGBAAt(x, y)
			dst := RGBA{
				R: float64(n.R) / 255,
				G: float64(n.G) / 255,
				B: float64(n.B) / 255,
				A: float64(n.A) / 255,
			}
			outA := alpha + dst.A*(1-alpha)
			if outA <= 0 {
				continue
			}
			out := RGBA{
				R: (c.R*alpha + dst.R*dst.A*(1-alpha)) / outA,
				G: (c.G*alpha + dst.G*dst.A*(1-alpha)) / outA,
				B: (c.B*alpha + dst.B*dst.A*(1-alpha)) / outA,
				A: outA,
			}
			s.img.SetNRGBA(x, y, color.NRGBAModel.Convert(out.Color()).(color.NRGBA))
		}
	}
}

// strokeOutline expands a polyline path into filled quads, one per
// segment.
func strokeOutline(path *Path, width float64) *Path {
	half := width / 2
	outline := NewPath()
	var prev Point
	hasPrev := false

	segment := func(a, b Point) {
		d := b.Sub(a)
		if d.Length() == 0 {
			return
		}
		n := d.Normalize().Perp().Mul(half)
		outline.MoveTo(a.X+n.X, a.Y+n.Y)
		outline.LineTo(b.X+n.X, b.Y+n.Y)
		outline.LineTo(b.X-n.X, b.Y-n.Y)
		outline.LineTo(a.X-n.X, a.Y-n.Y)
		outline.Close()
	}

	var start Point
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			prev = e.Point
			start = e.Point
			hasPrev = true
		case LineTo:
			if hasPrev {
				segment(prev, e.Point)
			}
			prev = e.Point
			hasPrev = true
		case Close:
			if hasPrev {
				segment(prev, start)
				prev = start
			}
		}
	}
	return outline
}

// WritePNG encodes the surface as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, s.img)
}
