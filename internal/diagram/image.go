package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gocable/internal/cable"
)

// ExportProfileDiagram exports the cable shape to an image file. When the
// result carries a self-weight catenary, both the initial and the loaded
// shape are drawn.
func ExportProfileDiagram(res *cable.Result, filename string) error {
	p := plot.New()
	p.Title.Text = "Cable Profile"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	// Chord between the supports.
	span := res.X[len(res.X)-1]
	chord, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: span, Y: 0}})
	if err != nil {
		return err
	}
	chord.LineStyle.Width = vg.Points(1)
	chord.LineStyle.Color = color.Gray{Y: 128}
	chord.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(chord)

	if res.Initial != nil {
		initial, err := plotter.NewLine(xys(res.X, res.Initial.Y))
		if err != nil {
			return err
		}
		initial.LineStyle.Width = vg.Points(1)
		initial.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
		initial.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(initial)
		p.Legend.Add("initial catenary", initial)
	}

	shape, err := plotter.NewLine(xys(res.X, res.Y))
	if err != nil {
		return err
	}
	shape.LineStyle.Width = vg.Points(2)
	shape.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(shape)
	p.Legend.Add("loaded shape", shape)

	// Mark the supports and the sag point.
	supports, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: 0}, {X: span, Y: 0}})
	if err != nil {
		return err
	}
	supports.GlyphStyle.Color = color.Black
	supports.GlyphStyle.Radius = vg.Points(4)
	supports.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(supports)

	sagPt, err := plotter.NewScatter(plotter.XYs{{X: res.SagPosition, Y: -res.Sag}})
	if err != nil {
		return err
	}
	sagPt.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	sagPt.GlyphStyle.Radius = vg.Points(3)
	p.Add(sagPt)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: res.SagPosition, Y: -res.Sag}},
		Labels: []string{fmt.Sprintf("f = %.4f m", res.Sag)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	return save(p, filename, 8*vg.Inch, 4*vg.Inch)
}

// ExportTensionDiagram exports the tension distribution T(x).
func ExportTensionDiagram(res *cable.Result, filename string) error {
	p := plot.New()
	p.Title.Text = "Cable Tension"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "T (kN)"

	line, err := plotter.NewLine(xys(res.X, res.Tension))
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(line)

	hLine, err := plotter.NewLine(plotter.XYs{
		{X: res.X[0], Y: res.H},
		{X: res.X[len(res.X)-1], Y: res.H},
	})
	if err != nil {
		return err
	}
	hLine.LineStyle.Width = vg.Points(1)
	hLine.LineStyle.Color = color.Gray{Y: 128}
	hLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(hLine)
	p.Legend.Add("T(x)", line)
	p.Legend.Add("H", hLine)

	return save(p, filename, 8*vg.Inch, 4*vg.Inch)
}

// ExportConvergenceDiagram exports the fixed-point history of H over the
// iterations. Results without a history are an error.
func ExportConvergenceDiagram(res *cable.Result, filename string) error {
	if len(res.History) == 0 {
		return fmt.Errorf("result has no iteration history (method %q)", res.Method)
	}
	p := plot.New()
	p.Title.Text = "Fixed-Point Convergence"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "H (kN)"

	pts := make(plotter.XYs, len(res.History))
	for i, it := range res.History {
		pts[i] = plotter.XY{X: float64(i + 1), Y: it.H}
	}
	line, _, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return save(p, filename, 6*vg.Inch, 4*vg.Inch)
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}

func save(p *plot.Plot, filename string, w, h vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(w, h, filename)
	default:
		return p.Save(w, h, filename+".png")
	}
}
