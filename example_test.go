package chart_test

import (
	"fmt"

	"github.com/gogpu/chart"
)

// Render a filled spline chart into an in-memory image.
func Example() {
	data := chart.NewXYSeriesData()
	data.Append(0, 0)
	data.Append(1, 2)
	data.Append(2, 1)
	data.Append(3, 3)

	r, err := chart.New(
		chart.WithPrecision(8),
		chart.WithFillType(chart.FillToZero),
	)
	if err != nil {
		panic(err)
	}
	r.SetSeriesPaint(0, chart.Solid(chart.Blue))

	surface := chart.NewImageSurface(320, 240)
	surface.Clear(chart.White)

	plot := chart.NewPlot(chart.NewRect(0, 0, 320, 240),
		chart.NewLinearAxis(0, 3), chart.NewLinearAxis(0, 4))
	r.DrawAll(surface, plot, data)

	fmt.Println(surface.Image().Bounds())
	// Output: (0,0)-(320,240)
}

// Sample a natural cubic spline directly, without a renderer.
func ExampleFitNatural() {
	spline, err := chart.FitNatural([]chart.Point{
		chart.Pt(0, 0), chart.Pt(1, 1), chart.Pt(2, 0), chart.Pt(3, 1),
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f %.2f %.2f\n",
		spline.Eval(0.5), spline.Eval(1.5), spline.Eval(2.5))
	// Output: 0.75 0.50 0.25
}
