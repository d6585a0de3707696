// Package render turns point series into figures. Files are drawn with
// gonum/plot; Show hands the same series to gnuplot through glot.
package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Mode selects how a series is drawn.
type Mode int

const (
	Lines Mode = iota
	Points
	LinesPoints
)

type Series struct {
	Name string
	XYs  plotter.XYs
	Mode Mode
}

// Style holds figure settings. Width and Height are in inches.
type Style struct {
	Title   string
	XLabel  string
	YLabel  string
	Width   float64
	Height  float64
	Slide   bool
	Formats []string
}

func DefaultStyle() Style {
	return Style{
		Width:   15,
		Height:  15,
		Formats: []string{"png"},
	}
}

func New(
	style Style,
	series ...Series,
) (
	*plot.Plot, error,
) {

	p := prepPlot(style)

	for i, s := range series {
		if len(s.XYs) == 0 {
			continue
		}

		if s.Mode == Lines || s.Mode == LinesPoints {
			line, err := plotter.NewLine(s.XYs)
			if err != nil {
				return nil, fmt.Errorf("render: line for %q: %w", s.Name, err)
			}
			line.LineStyle.Color = Color(i)
			line.LineStyle.Width = vg.Points(3)
			p.Add(line)
			if s.Name != "" {
				p.Legend.Add(s.Name, line)
			}
		}

		if s.Mode == Points || s.Mode == LinesPoints {
			scatter, err := plotter.NewScatter(s.XYs)
			if err != nil {
				return nil, fmt.Errorf("render: scatter for %q: %w", s.Name, err)
			}
			scatter.GlyphStyle.Color = Color(i)
			scatter.GlyphStyle.Radius = vg.Points(5)
			scatter.Shape = draw.CircleGlyph{}
			p.Add(scatter)
			if s.Name != "" && s.Mode == Points {
				p.Legend.Add(s.Name, scatter)
			}
		}
	}

	return p, nil
}

func prepPlot(
	style Style,
) (
	*plot.Plot,
) {

	p := plot.New()
	p.BackgroundColor = color.White
	p.Title.Text = style.Title
	p.Title.TextStyle.Font.Variant = "Sans"

	p.X.Label.Text = style.XLabel
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.Label.Font.Variant = "Sans"

	p.Y.Label.Text = style.YLabel
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.Label.Font.Variant = "Sans"

	p.Add(plotter.NewGrid())

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(10)
	p.Legend.ThumbnailWidth = vg.Points(50)

	if style.Slide {
		p.Title.TextStyle.Font.Size = 80
		p.Title.Padding = font.Length(80)

		p.X.Label.TextStyle.Font.Size = 56
		p.X.Label.Padding = font.Length(40)
		p.X.Tick.Label.Font.Size = 56

		p.Y.Label.TextStyle.Font.Size = 56
		p.Y.Label.Padding = font.Length(40)
		p.Y.Tick.Label.Font.Size = 56

		p.Legend.TextStyle.Font.Size = 56
	} else {
		p.Title.TextStyle.Font.Size = 50
		p.Title.Padding = font.Length(50)

		p.X.Label.TextStyle.Font.Size = 36
		p.X.Label.Padding = font.Length(20)
		p.X.Tick.Label.Font.Size = 36

		p.Y.Label.TextStyle.Font.Size = 36
		p.Y.Label.Padding = font.Length(20)
		p.Y.Tick.Label.Font.Size = 36

		p.Legend.TextStyle.Font.Size = 28
	}

	return p
}

// Write encodes p in the given format ("png", "svg", "pdf", ...) into w.
func Write(p *plot.Plot, style Style, w io.Writer, format string) error {
	wt, err := p.WriterTo(size(style.Width), size(style.Height), format)
	if err != nil {
		return fmt.Errorf("render: %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}
	return nil
}

// Save writes one file per style format to dir/name.<format>, creating dir
// if needed, and returns the paths written.
func Save(
	p *plot.Plot,
	style Style,
	dir, name string,
) (
	[]string, error,
) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	formats := style.Formats
	if len(formats) == 0 {
		formats = DefaultStyle().Formats
	}

	var paths []string
	for _, format := range formats {
		path := filepath.Join(dir, name+"."+format)
		if err := p.Save(size(style.Width), size(style.Height), path); err != nil {
			return paths, fmt.Errorf("render: save %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func size(inches float64) vg.Length {
	if inches <= 0 {
		inches = 15
	}
	return vg.Length(inches) * vg.Inch
}
