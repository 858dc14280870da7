package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/medalreport/internal/utils"
)

// Options controls the chart canvas and labels.
type Options struct {
	Title  string
	YLabel string
	// Canvas size in CSS pixels.
	Width, Height int
	// Slots is the x-axis width in bars; 0 means one slot per bar.
	Slots int
	Color color.Color
}

// RenderError indicates the chart could not be drawn or written.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("render chart %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("render chart: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

var barBlue = color.RGBA{B: 255, A: 255}

// pixels converts CSS pixels (96 per inch) to vg lengths, which are points.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

// Render draws bars and returns the SVG document.
func Render(bars []Bar, opt Options) ([]byte, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, &RenderError{Err: fmt.Errorf("invalid canvas %dx%d", opt.Width, opt.Height)}
	}
	clr := opt.Color
	if clr == nil {
		clr = barBlue
	}

	p := plot.New()
	p.Title.Text = opt.Title
	p.Y.Label.Text = opt.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid, &barPlotter{bars: bars, color: clr})

	slots := opt.Slots
	if slots < len(bars) {
		slots = len(bars)
	}
	if slots == 0 {
		slots = 1
	}
	// Axis ranges are fixed after Add so data ranges cannot widen them.
	p.X.Min, p.X.Max = 0, float64(slots)
	p.Y.Min, p.Y.Max = 0, YMax(bars)

	p.X.Tick.Marker = slotTicks(bars)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(7)

	wt, err := p.WriterTo(pixels(opt.Width), pixels(opt.Height), "svg")
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// Save renders bars to path, replacing any existing file.
func Save(path string, bars []Bar, opt Options) error {
	svg, err := Render(bars, opt)
	if err != nil {
		var re *RenderError
		if errors.As(err, &re) {
			re.Path = path
		}
		return err
	}
	if err := utils.SafeWriteFile(path, svg); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	return nil
}

// slotTicks labels each bar at the center of its slot.
func slotTicks(bars []Bar) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(bars))
	for i, b := range bars {
		ticks[i] = plot.Tick{Value: (b.X0 + b.X1) / 2, Label: b.Label}
	}
	return ticks
}

// barPlotter fills each Bar as a rectangle in data coordinates.
type barPlotter struct {
	bars  []Bar
	color color.Color
}

func (b *barPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, bar := range b.bars {
		pts := []vg.Point{
			{X: trX(bar.X0), Y: trY(bar.Y0)},
			{X: trX(bar.X1), Y: trY(bar.Y0)},
			{X: trX(bar.X1), Y: trY(bar.Y1)},
			{X: trX(bar.X0), Y: trY(bar.Y1)},
		}
		c.FillPolygon(b.color, c.ClipPolygonXY(pts))
	}
}

func (b *barPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(b.bars) == 0 {
		return 0, 1, 0, 1
	}
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, bar := range b.bars {
		xmin = math.Min(xmin, bar.X0)
		xmax = math.Max(xmax, bar.X1)
		ymin = math.Min(ymin, bar.Y0)
		ymax = math.Max(ymax, bar.Y1)
	}
	return xmin, xmax, ymin, ymax
}
