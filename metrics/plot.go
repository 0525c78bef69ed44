package metrics

import (
	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series は1本の学習曲線（エポックごとの誤分類数）
type Series struct {
	Name   string
	Values []int
}

// ConvergencePlot は学習曲線の描画設定
type ConvergencePlot struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultConvergencePlot は既定の描画設定を返す
func DefaultConvergencePlot() ConvergencePlot {
	return ConvergencePlot{
		Title:  "Training misclassifications per epoch",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Save はシリーズを描画してファイルに保存する
// 形式はファイル拡張子（.png, .svg, .pdf など）で決まる
func (c ConvergencePlot) Save(path string, series ...Series) error {
	if len(series) == 0 {
		return errors.NewValueError("ConvergencePlot.Save", "no series to plot")
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "misclassified samples"
	p.Add(plotter.NewGrid())

	for i, s := range series {
		if len(s.Values) == 0 {
			return errors.NewValueError("ConvergencePlot.Save", "series "+s.Name+" is empty")
		}
		pts := make(plotter.XYs, len(s.Values))
		for e, v := range s.Values {
			pts[e].X = float64(e + 1)
			pts[e].Y = float64(v)
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return errors.Wrapf(err, "ConvergencePlot.Save: series %s", s.Name)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)

		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	if err := p.Save(c.Width, c.Height, path); err != nil {
		return errors.Wrapf(err, "ConvergencePlot.Save: write %s", path)
	}
	return nil
}

// SaveConvergencePlot は既定の設定で学習曲線を保存する
func SaveConvergencePlot(path string, series ...Series) error {
	return DefaultConvergencePlot().Save(path, series...)
}
