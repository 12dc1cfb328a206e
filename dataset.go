package chart

// XYDataset supplies the raw (x, y) data values for one or more
// series. Implementations deliver items in index order; the renderer
// consumes them one at a time.
type XYDataset interface {
	// SeriesCount returns the number of series in the dataset.
	SeriesCount() int

	// ItemCount returns the number of items in a series.
	ItemCount(series int) int

	// X returns the x value of an item.
	X(series, item int) float64

	// Y returns the y value of an item.
	Y(series, item int) float64
}

// XYSeriesData is an in-memory XYDataset. The zero value is empty and
// ready to use; Append adds items to a series.
type XYSeriesData struct {
	series [][]Point
}

// NewXYSeriesData creates an empty dataset with a single empty series.
func NewXYSeriesData() *XYSeriesData {
	return &XYSeriesData{series: make([][]Point, 1)}
}

// Append adds an (x, y) item to series 0.
func (d *XYSeriesData) Append(x, y float64) {
	d.AppendToSeries(0, x, y)
}

// AppendToSeries adds an (x, y) item to the given series, growing the
// series list as needed.
func (d *XYSeriesData) AppendToSeries(series int, x, y float64) {
	for len(d.series) <= series {
		d.series = append(d.series, nil)
	}
	d.series[series] = append(d.series[series], Pt(x, y))
}

// SeriesCount implements XYDataset.
func (d *XYSeriesData) SeriesCount() int {
	return len(d.series)
}

// ItemCount implements XYDataset.
func (d *XYSeriesData) ItemCount(series int) int {
	if series < 0 || series >= len(d.series) {
		return 0
	}
	return len(d.series[series])
}

// X implements XYDataset.
func (d *XYSeriesData) X(series, item int) float64 {
	return d.series[series][item].X
}

// Y implements XYDataset.
func (d *XYSeriesData) Y(series, item int) float64 {
	return d.series[series][item].Y
}
