// Package chart provides an XY series renderer that connects data
// points with natural cubic splines and optionally fills the area
// between the curve and a baseline.
//
// # Overview
//
// chart is a Pure Go charting geometry library designed to integrate
// with the GoGPU ecosystem. The centerpiece is SplineRenderer, which
// accumulates mapped data points one at a time across a render pass,
// fits a natural cubic spline through them, approximates the curve as
// a fine polyline at a configurable precision, and hands the finished
// geometry to a drawing surface for stroking and filling.
//
// # Quick Start
//
//	import "github.com/gogpu/chart"
//
//	data := chart.NewXYSeriesData()
//	data.Append(0, 0)
//	data.Append(1, 2)
//	data.Append(2, 1)
//	data.Append(3, 3)
//
//	r, _ := chart.New(chart.WithFillType(chart.FillToZero))
//	surface := chart.NewImageSurface(640, 480)
//	plot := chart.NewPlot(chart.Rect{W: 640, H: 480},
//	    chart.NewLinearAxis(0, 3), chart.NewLinearAxis(0, 4))
//	r.DrawAll(surface, plot, data)
//	surface.SavePNG("spline.png")
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Point, Rect, Path, NaturalSpline, SolveTridiagonal
//   - Styling: Paint, SolidPaint, LinearGradientPaint, GradientTransformer
//   - Plot model: ValueAxis, LinearAxis, XYDataset, Plot
//   - Rendering: SplineRenderer, SplineState, Surface, ImageSurface
//
// The renderer never touches pixels itself; it only assembles outline
// and fill paths and submits them to a Surface. ImageSurface is a
// software Surface backed by golang.org/x/image/vector. Host
// frameworks with their own rasterizers supply their own Surface.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Axis mapping (LinearAxis) accounts for the flipped screen y axis, so
// larger data values plot higher on screen as expected.
package chart

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
