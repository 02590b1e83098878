// Package chart draws the interest and principal components of an
// amortization schedule as a line chart saved to an image file.
package chart

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"loan-schedule/domain"
)

var ErrEmptySchedule = errors.New("schedule has no rows to plot")

// Renderer saves schedule charts to a single file. The image format follows
// the file extension (.png, .svg, .pdf, .jpg).
type Renderer struct {
	path   string
	width  vg.Length
	height vg.Length
	log    *logrus.Logger
}

// NewRenderer creates a Renderer writing to path; width and height are in inches.
func NewRenderer(path string, width, height float64, log *logrus.Logger) *Renderer {
	return &Renderer{
		path:   path,
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
		log:    log,
	}
}

func (r *Renderer) Render(schedule domain.AmortizationSchedule) error {
	if len(schedule.Rows) == 0 {
		return ErrEmptySchedule
	}

	interest := make(plotter.XYs, len(schedule.Rows))
	principal := make(plotter.XYs, len(schedule.Rows))
	for i, row := range schedule.Rows {
		interest[i].X = float64(row.Month)
		interest[i].Y = row.Interest.InexactFloat64()
		principal[i].X = float64(row.Month)
		principal[i].Y = row.Principal.InexactFloat64()
	}

	p := plot.New()
	p.Title.Text = "Interest and principal per payment"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Amount"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLinePoints(p,
		"Interest", interest,
		"Principal", principal,
	); err != nil {
		return fmt.Errorf("add series: %w", err)
	}

	if err := p.Save(r.width, r.height, r.path); err != nil {
		return fmt.Errorf("save chart to %s: %w", r.path, err)
	}

	r.log.Infof("Chart saved to %s", r.path)
	return nil
}
